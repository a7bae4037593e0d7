package builtins

import (
	"github.com/golisp-lang/golisp/internal/lisp/alloc"
	"github.com/golisp-lang/golisp/internal/lisp/lisperr"
	"github.com/golisp-lang/golisp/internal/lisp/value"
)

// arithmeticEntries implements +, *, -, i=, and last (spec.md §4.4).
func arithmeticEntries(singles value.Singletons) []entry {
	return []entry{
		{"+", addFn},
		{"*", mulFn},
		{"-", subFn},
		{"i=", intEqFn(singles)},
		{"last", lastFn},
	}
}

// asInt reports the integer payload of hv, or ok=false if hv is not an
// Integer.
func asInt(h *value.Heap, hv alloc.ValueHandle) (int64, bool) {
	v := h.Value(hv)
	if v.Kind != value.KindInteger {
		return 0, false
	}
	return v.Int, true
}

func addFn(in value.Interp, _ alloc.EnvHandle, args []alloc.ValueHandle) {
	h := in.Heap()
	var sum int64
	for _, a := range args {
		n, ok := asInt(h, a)
		if !ok {
			in.SetError(lisperr.NewNativeTypeMismatchError("+", "integer", h.Print(a)))
			return
		}
		sum += n
	}
	in.Push(h.AllocValue(value.Value{Kind: value.KindInteger, Int: sum}))
}

func mulFn(in value.Interp, _ alloc.EnvHandle, args []alloc.ValueHandle) {
	h := in.Heap()
	var product int64 = 1
	for _, a := range args {
		n, ok := asInt(h, a)
		if !ok {
			in.SetError(lisperr.NewNativeTypeMismatchError("*", "integer", h.Print(a)))
			return
		}
		product *= n
	}
	in.Push(h.AllocValue(value.Value{Kind: value.KindInteger, Int: product}))
}

func subFn(in value.Interp, _ alloc.EnvHandle, args []alloc.ValueHandle) {
	h := in.Heap()
	if len(args) != 2 {
		in.SetError(lisperr.NewNativeWrongArgCountError("-", "2", len(args)))
		return
	}
	a, ok := asInt(h, args[0])
	if !ok {
		in.SetError(lisperr.NewNativeTypeMismatchError("-", "integer", h.Print(args[0])))
		return
	}
	b, ok := asInt(h, args[1])
	if !ok {
		in.SetError(lisperr.NewNativeTypeMismatchError("-", "integer", h.Print(args[1])))
		return
	}
	in.Push(h.AllocValue(value.Value{Kind: value.KindInteger, Int: a - b}))
}

func intEqFn(singles value.Singletons) value.NativeFunc {
	return func(in value.Interp, _ alloc.EnvHandle, args []alloc.ValueHandle) {
		h := in.Heap()
		if len(args) != 2 {
			in.SetError(lisperr.NewNativeWrongArgCountError("i=", "2", len(args)))
			return
		}
		a, ok := asInt(h, args[0])
		if !ok {
			in.SetError(lisperr.NewNativeTypeMismatchError("i=", "integer", h.Print(args[0])))
			return
		}
		b, ok := asInt(h, args[1])
		if !ok {
			in.SetError(lisperr.NewNativeTypeMismatchError("i=", "integer", h.Print(args[1])))
			return
		}
		if a == b {
			in.Push(singles.True)
		} else {
			in.Push(singles.False)
		}
	}
}

func lastFn(in value.Interp, _ alloc.EnvHandle, args []alloc.ValueHandle) {
	if len(args) < 1 {
		in.SetError(lisperr.NewNativeWrongArgCountError("last", "at least 1", len(args)))
		return
	}
	in.Push(args[len(args)-1])
}
