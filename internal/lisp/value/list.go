package value

import (
	"errors"

	"github.com/golisp-lang/golisp/internal/lisp/alloc"
)

// ErrMalformedList is returned by ConsToVector when a list's spine does not
// terminate in Nil (spec.md §4.2, §7 "malformed list").
var ErrMalformedList = errors.New("malformed list")

// ConsToVector walks a cons spine starting at head, collecting each car in
// order, and succeeds only if the spine terminates in Nil. It is the
// inverse of lowering a syntax list to a right-nested cons chain, and is
// how the evaluator destructures every list-shaped expression (function
// application, special-form argument lists) before dispatching on it.
func (h *Heap) ConsToVector(head alloc.ValueHandle) ([]alloc.ValueHandle, error) {
	var out []alloc.ValueHandle
	cur := head
	for {
		v := h.Value(cur)
		switch v.Kind {
		case KindNil:
			return out, nil
		case KindCons:
			out = append(out, v.Head)
			cur = v.Tail
		default:
			return nil, ErrMalformedList
		}
	}
}

// VectorToCons builds a right-nested cons chain terminated by nilHandle from
// elems, the forward direction of spec.md §4.2's lowering rule: a syntax
// list [e1 .. en] becomes Cons(v1, Cons(v2, .. Cons(vn, Nil))).
func (h *Heap) VectorToCons(elems []alloc.ValueHandle, nilHandle alloc.ValueHandle) alloc.ValueHandle {
	tail := nilHandle
	for i := len(elems) - 1; i >= 0; i-- {
		tail = h.AllocValue(Value{Kind: KindCons, Head: elems[i], Tail: tail})
	}
	return tail
}
