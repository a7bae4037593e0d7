// Package value defines the interpreter's runtime value and environment
// model and the heap that owns them: two arenas (one per object kind)
// addressed by alloc.ValueHandle/alloc.EnvHandle, plus the mark-and-sweep
// tracing rules that make those handles collectible.
//
// This mirrors the teacher's internal/interp/runtime package, which also
// groups the value types, the environment, and pooling/lifetime concerns
// together rather than splitting them by concern.
package value

import "github.com/golisp-lang/golisp/internal/lisp/alloc"

// Kind tags a Value's variant, the way runtime.Value.Type() tags DWScript
// values, except cheaper to switch on (no string comparisons in hot code).
type Kind int

const (
	KindInteger Kind = iota
	KindBool
	KindSymbol
	KindNil
	KindCons
	KindFunction
	KindNativeFunction
	KindContinuation
)

// Value is the tagged sum of every runtime value variant the evaluator can
// produce or consume. Exactly the fields relevant to Kind are meaningful;
// callers switch on Kind before reading payload fields, the same
// discipline the teacher applies to its *Value interface implementations
// (one concrete struct per Type()), collapsed here into one struct because
// the evaluator's step machinery (§4.3) needs to copy/compare values by
// handle far more often than it needs per-variant methods.
type Value struct {
	Kind Kind

	Int  int64  // KindInteger
	Bool bool   // KindBool
	Sym  string // KindSymbol

	Head, Tail alloc.ValueHandle // KindCons

	Params    []string          // KindFunction: parameter names, in order
	Closure   alloc.EnvHandle   // KindFunction: environment captured at lambda site
	Body      alloc.ValueHandle // KindFunction: handle to the body expression

	Native NativeFunc // KindNativeFunction

	Cont *Continuation // KindContinuation
}

// NativeFunc is the contract a built-in primitive implements: given the
// interpreter state, the caller's environment, and the already-evaluated
// argument handles, it must push exactly one result handle onto the
// evaluator's results stack or set an error — never both. call/cc pushes
// no result itself: it hands its argument to Interp.CallCC, and the
// application that schedules produces the result.
// The concrete Interp type lives in package eval; it is threaded through
// as an opaque interface here to avoid a value<->eval import cycle.
type NativeFunc func(interp Interp, callerEnv alloc.EnvHandle, args []alloc.ValueHandle)

// Interp is the subset of the evaluator's state a native function needs.
// Defined here (not in eval) so builtins can depend on value without
// creating an eval<->value<->builtins cycle; package eval's *Interp
// satisfies it.
type Interp interface {
	Heap() *Heap
	Push(h alloc.ValueHandle)
	Pop() (alloc.ValueHandle, bool)
	SetError(err error)
	Error() error
	CallCC(callerEnv alloc.EnvHandle, fn alloc.ValueHandle)
	Apply(callerEnv alloc.EnvHandle, fn alloc.ValueHandle, args []alloc.ValueHandle)
	GC(rootEnv alloc.EnvHandle)
	Print(s string)
}

// Continuation is a snapshot of the evaluator's control state at the moment
// call/cc captured it: the pending step stack, the in-progress results
// stack, and the stack of saved results stacks for enclosing expressions.
// Re-invoking it (see eval.Interp.Apply) replaces the evaluator's live
// state wholesale with deep copies of these three, per spec.md §4.3.
type Continuation struct {
	Steps        []Step
	Results      []alloc.ValueHandle
	SavedResults [][]alloc.ValueHandle
}

// Step is one deferred unit of evaluator work. Steps are data, not host
// closures over arbitrary captured state, precisely so a Continuation can
// duplicate the pending step list without needing a generic closure-clone
// capability (spec.md §9 "Step cloning"). Package eval defines the concrete
// step kinds and their Run/Clone behavior; Value only needs to store them
// opaquely inside a Continuation and know they are deep-copyable.
type Step interface {
	Clone() Step
}
