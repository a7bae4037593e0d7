package builtins

import (
	"github.com/golisp-lang/golisp/internal/lisp/alloc"
	"github.com/golisp-lang/golisp/internal/lisp/lisperr"
	"github.com/golisp-lang/golisp/internal/lisp/value"
)

// gcEntries implements gc-profile and gc-run (spec.md §4.4). Both are
// zero-arity and return Nil; gc-profile is observational, gc-run is the
// only way GC ever runs (spec.md §5 "Collection discipline": never
// implicitly).
func gcEntries() []entry {
	return []entry{
		{"gc-profile", gcProfileFn},
		{"gc-run", gcRunFn},
	}
}

func gcProfileFn(in value.Interp, callerEnv alloc.EnvHandle, args []alloc.ValueHandle) {
	if len(args) != 0 {
		in.SetError(lisperr.NewNativeWrongArgCountError("gc-profile", "0", len(args)))
		return
	}
	in.Print(in.Heap().Profile().String())
	pushNil(in, callerEnv)
}

func gcRunFn(in value.Interp, callerEnv alloc.EnvHandle, args []alloc.ValueHandle) {
	if len(args) != 0 {
		in.SetError(lisperr.NewNativeWrongArgCountError("gc-run", "0", len(args)))
		return
	}
	in.GC(callerEnv)
	pushNil(in, callerEnv)
}

// pushNil resolves `nil`'s binding through callerEnv's scope chain (it is
// always bound in the root environment, the chain's end) and pushes it,
// spec.md's required return value for both GC builtins.
func pushNil(in value.Interp, callerEnv alloc.EnvHandle) {
	nilHandle, ok := in.Heap().Lookup(callerEnv, "nil")
	if !ok {
		in.SetError(lisperr.NewUnboundSymbolError("nil"))
		return
	}
	in.Push(nilHandle)
}
