package builtins

import (
	"github.com/golisp-lang/golisp/internal/lisp/alloc"
	"github.com/golisp-lang/golisp/internal/lisp/lisperr"
	"github.com/golisp-lang/golisp/internal/lisp/value"
)

// controlEntries implements call/cc (spec.md §4.4). The reification and
// re-invocation machinery itself lives on eval.Interp (value.Interp's
// CallCC method) since it needs to manipulate the live step/results/
// saved-results state; this file only validates arity and delegates.
func controlEntries() []entry {
	return []entry{
		{"call/cc", callCCFn},
	}
}

func callCCFn(in value.Interp, callerEnv alloc.EnvHandle, args []alloc.ValueHandle) {
	if len(args) != 1 {
		in.SetError(lisperr.NewNativeWrongArgCountError("call/cc", "1", len(args)))
		return
	}
	in.CallCC(callerEnv, args[0])
}
