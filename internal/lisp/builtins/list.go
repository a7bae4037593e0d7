package builtins

import (
	"github.com/golisp-lang/golisp/internal/lisp/alloc"
	"github.com/golisp-lang/golisp/internal/lisp/lisperr"
	"github.com/golisp-lang/golisp/internal/lisp/value"
)

// listEntries implements cons (spec.md §4.4). `nil` is bound separately in
// Install since it is a value binding, not a function.
func listEntries() []entry {
	return []entry{
		{"cons", consFn},
	}
}

func consFn(in value.Interp, _ alloc.EnvHandle, args []alloc.ValueHandle) {
	if len(args) != 2 {
		in.SetError(lisperr.NewNativeWrongArgCountError("cons", "2", len(args)))
		return
	}
	in.Push(in.Heap().AllocValue(value.Value{Kind: value.KindCons, Head: args[0], Tail: args[1]}))
}
