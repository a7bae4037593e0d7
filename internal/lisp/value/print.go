package value

import (
	"strconv"

	"github.com/golisp-lang/golisp/internal/lisp/alloc"
)

// Print renders the value at hv the way spec.md §6 requires: decimal
// integers, #t/#f booleans, bare symbol names, () for Nil, dotted-pair
// notation for Cons (no list sugar), and a fixed placeholder string for
// each callable kind. Grounded on the teacher's per-type String() methods
// (runtime/primitives.go), collapsed into one switch because Value here is
// one struct, not one type per variant.
func (h *Heap) Print(hv alloc.ValueHandle) string {
	v := h.Value(hv)
	switch v.Kind {
	case KindInteger:
		return strconv.FormatInt(v.Int, 10)
	case KindBool:
		if v.Bool {
			return "#t"
		}
		return "#f"
	case KindSymbol:
		return v.Sym
	case KindNil:
		return "()"
	case KindCons:
		return "(" + h.Print(v.Head) + " . " + h.Print(v.Tail) + ")"
	case KindFunction:
		return "<lisp function>"
	case KindNativeFunction:
		return "<native function>"
	case KindContinuation:
		return "<continuation>"
	default:
		return "<unknown>"
	}
}
