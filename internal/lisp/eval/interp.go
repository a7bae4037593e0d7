// Package eval implements spec.md §4.3: a defunctionalized, stepwise
// evaluator driven by a LIFO step stack, paired with the results/
// saved-results bookkeeping that makes function application (and
// call/cc's continuation capture) possible without recursing on the host
// call stack.
//
// Grounded on the teacher's internal/interp/evaluator package: evaluator.go
// and core_evaluator.go drive a tree-walking Eval(node, env), generalized
// here into explicit step objects so the step list itself can be
// snapshotted (the teacher's tree-walker has no analogue to call/cc and
// never needs to).
package eval

import (
	"errors"

	"github.com/golisp-lang/golisp/internal/lisp/alloc"
	"github.com/golisp-lang/golisp/internal/lisp/lisperr"
	"github.com/golisp-lang/golisp/internal/lisp/value"
)

var errInternalEmptyResults = errors.New("internal error: results stack empty where a value was expected")

// SpecialForms names the symbols the evaluator handles inline rather than
// treating as ordinary function applications (spec.md §4.3).
var SpecialForms = map[string]bool{
	"if":     true,
	"lambda": true,
	"quote":  true,
	"define": true,
}

// Interp holds the evaluator's execution state: the heap it allocates
// values and environments from, the LIFO step stack, the in-progress
// results accumulator, the stack of saved accumulators for enclosing
// expressions, and any pending error (spec.md §4.3's quintuple, minus the
// allocator which is exposed via Heap()).
type Interp struct {
	heap    *value.Heap
	singles value.Singletons

	steps        []value.Step
	results      []alloc.ValueHandle
	savedResults [][]alloc.ValueHandle

	err error

	rootEnv alloc.EnvHandle
	out     func(string)
}

// New creates an interpreter with a fresh heap, the built-in environment
// installed by install, and stdout writer out used by gc-profile.
func New(install func(in *Interp) alloc.EnvHandle, out func(string)) *Interp {
	heap := value.NewHeap()
	in := &Interp{heap: heap, singles: heap.InternSingletons(), out: out}
	in.rootEnv = install(in)
	return in
}

// Heap returns the owning heap, satisfying value.Interp for native
// functions.
func (in *Interp) Heap() *value.Heap { return in.heap }

// RootEnv returns the interpreter's top-level (built-in) environment, the
// environment define mutates and the REPL persists across lines.
func (in *Interp) RootEnv() alloc.EnvHandle { return in.rootEnv }

// Print writes s to the interpreter's configured output sink (gc-profile's
// host collaborator; wired to os.Stdout by cmd/golisp, to a buffer in
// tests).
func (in *Interp) Print(s string) {
	if in.out != nil {
		in.out(s)
	}
}

// Push appends a result handle onto the in-progress results accumulator.
func (in *Interp) Push(h alloc.ValueHandle) { in.pushResult(h) }

// Pop removes and returns the top of the in-progress results accumulator.
func (in *Interp) Pop() (alloc.ValueHandle, bool) { return in.popResult() }

// SetError records err as the interpreter's pending error. The driver
// halts after the step currently running sees this.
func (in *Interp) SetError(err error) { in.err = err }

// Error returns the interpreter's pending error, if any.
func (in *Interp) Error() error { return in.err }

func (in *Interp) pushResult(h alloc.ValueHandle) {
	in.results = append(in.results, h)
}

func (in *Interp) popResult() (alloc.ValueHandle, bool) {
	n := len(in.results)
	if n == 0 {
		return alloc.Invalid, false
	}
	h := in.results[n-1]
	in.results = in.results[:n-1]
	return h, true
}

func (in *Interp) pushSavedResults() {
	in.savedResults = append(in.savedResults, in.results)
	in.results = nil
}

func (in *Interp) popSavedResults() []alloc.ValueHandle {
	n := len(in.savedResults)
	if n == 0 {
		return nil
	}
	r := in.savedResults[n-1]
	in.savedResults = in.savedResults[:n-1]
	return r
}

// isFalse reports whether hv is the literal Bool(false); every other value
// (including Nil, 0, and the empty list) is truthy per spec.md's `if`
// semantics.
func (in *Interp) isFalse(hv alloc.ValueHandle) bool {
	v := in.heap.Value(hv)
	return v.Kind == value.KindBool && !v.Bool
}

// Eval evaluates a single top-level form that has already been lowered onto
// the heap (hv) and runs the driver to completion, returning the one answer
// handle or the error that aborted evaluation (spec.md §4.3 "Top-level
// execution").
func (in *Interp) Eval(hv alloc.ValueHandle) (alloc.ValueHandle, error) {
	in.steps = append(in.steps, &evalStep{Env: in.rootEnv, Node: hv})
	return in.run()
}

// run is the driver loop: pop a step, invoke it, stop when steps is empty
// or an error has been set. On success exactly one handle remains on
// results. On error (or success) all transient state is cleared so the
// interpreter is reusable for the next top-level form (spec.md's
// Terminal-OK / Terminal-ERR states).
func (in *Interp) run() (alloc.ValueHandle, error) {
	for len(in.steps) > 0 {
		if in.err != nil {
			break
		}
		n := len(in.steps)
		s := in.steps[n-1]
		in.steps = in.steps[:n-1]
		s.(runner).Run(in)
	}

	err := in.err
	if err != nil {
		in.steps = nil
		in.results = nil
		in.savedResults = nil
		in.err = nil
		return alloc.Invalid, err
	}

	if len(in.results) != 1 {
		in.steps = nil
		in.results = nil
		in.savedResults = nil
		return alloc.Invalid, errInternalEmptyResults
	}
	result := in.results[0]
	in.results = nil
	return result, nil
}

// Apply dispatches a call to fnHandle with the given already-evaluated
// args, the shared logic behind both applyStep (ordinary function
// application) and call/cc's re-invocation of its argument function
// (spec.md §4.3 "Apply step").
func (in *Interp) Apply(callerEnv alloc.EnvHandle, fnHandle alloc.ValueHandle, args []alloc.ValueHandle) {
	fn := in.heap.Value(fnHandle)
	switch fn.Kind {
	case value.KindFunction:
		if len(fn.Params) != len(args) {
			in.SetError(lisperr.NewWrongArgCountError(len(fn.Params), len(args)))
			return
		}
		child := value.NewChildEnvironment(fn.Closure)
		for i, p := range fn.Params {
			child.Bindings[p] = args[i]
		}
		childHandle := in.heap.AllocEnv(child)
		in.steps = append(in.steps, &evalStep{Env: childHandle, Node: fn.Body})

	case value.KindNativeFunction:
		fn.Native(in, callerEnv, args)

	case value.KindContinuation:
		if len(args) != 1 {
			in.SetError(lisperr.NewBadContinuationCallError())
			return
		}
		in.restoreContinuation(fn.Cont, args[0])

	default:
		in.SetError(lisperr.NewNonFunctionCallError(in.heap.Print(fnHandle)))
	}
}

// CallCC reifies the interpreter's current steps/results/saved-results as
// a Continuation value, then applies fn to it as a single argument
// (spec.md §4.4 "call/cc details").
func (in *Interp) CallCC(callerEnv alloc.EnvHandle, fn alloc.ValueHandle) {
	cont := &value.Continuation{
		Steps:        cloneSteps(in.steps),
		Results:      cloneHandles(in.results),
		SavedResults: cloneSavedResults(in.savedResults),
	}
	contHandle := in.heap.AllocValue(value.Value{Kind: value.KindContinuation, Cont: cont})
	in.Apply(callerEnv, fn, []alloc.ValueHandle{contHandle})
}

// restoreContinuation replaces the evaluator's live state wholesale with
// deep copies of c's snapshot, then pushes arg onto the restored results —
// the re-invocation primitive that makes continuations first-class
// (spec.md §4.3).
func (in *Interp) restoreContinuation(c *value.Continuation, arg alloc.ValueHandle) {
	in.steps = cloneSteps(c.Steps)
	in.results = append(cloneHandles(c.Results), arg)
	in.savedResults = cloneSavedResults(c.SavedResults)
}

func cloneSteps(steps []value.Step) []value.Step {
	out := make([]value.Step, len(steps))
	for i, s := range steps {
		out[i] = s.Clone()
	}
	return out
}

func cloneHandles(hs []alloc.ValueHandle) []alloc.ValueHandle {
	if hs == nil {
		return nil
	}
	out := make([]alloc.ValueHandle, len(hs))
	copy(out, hs)
	return out
}

func cloneSavedResults(saved [][]alloc.ValueHandle) [][]alloc.ValueHandle {
	if saved == nil {
		return nil
	}
	out := make([][]alloc.ValueHandle, len(saved))
	for i, frame := range saved {
		out[i] = cloneHandles(frame)
	}
	return out
}

// GC runs one mark-and-sweep cycle rooted at the given environment (the
// caller's environment, per gc-run's contract) plus any result handles the
// interpreter is holding outside that environment at the moment it runs.
// Pending steps may reference an environment unreachable from rootEnv (e.g.
// a lambda body step with its own child environment), so those are marked
// directly, before Heap.GC sweeps, the same way markContinuation marks a
// captured continuation's step environments.
func (in *Interp) GC(rootEnv alloc.EnvHandle) {
	for _, e := range in.liveStepEnvs() {
		in.heap.MarkEnv(e)
	}
	roots := append(cloneHandles(in.results), in.liveContinuationHandles()...)
	in.heap.GC(rootEnv, roots...)
}

// liveContinuationHandles returns the result/saved-result handles embedded
// in steps and saved-results frames still pending, so a GC mid-evaluation
// (e.g. triggered from a builtin) never reclaims state a later step will
// dereference.
func (in *Interp) liveContinuationHandles() []alloc.ValueHandle {
	var out []alloc.ValueHandle
	for _, frame := range in.savedResults {
		out = append(out, frame...)
	}
	for _, s := range in.steps {
		if hs, ok := s.(value.HandleSource); ok {
			out = append(out, hs.Handles()...)
		}
	}
	return out
}

// liveStepEnvs returns the environment handles embedded in still-pending
// steps, the same handles markContinuation marks when tracing a captured
// Continuation's step list (heap.go's markContinuation).
func (in *Interp) liveStepEnvs() []alloc.EnvHandle {
	var out []alloc.EnvHandle
	for _, s := range in.steps {
		if hs, ok := s.(value.HandleSource); ok {
			if e, ok := hs.EnvHandle(); ok {
				out = append(out, e)
			}
		}
	}
	return out
}

// Singletons exposes the interned Nil/True/False handles for builtins that
// need them (e.g. `nil`, i= results).
func (in *Interp) Singletons() value.Singletons { return in.singles }
