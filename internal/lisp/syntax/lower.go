package syntax

import (
	"github.com/golisp-lang/golisp/internal/lisp/alloc"
	"github.com/golisp-lang/golisp/internal/lisp/value"
)

// Lower allocates one value handle per top-level form in p, in source
// order, implementing spec.md §4.2's lowering rule: integers/booleans/
// symbols map 1:1, and a syntax list becomes a right-nested cons chain
// terminated by the interned Nil.
func Lower(h *value.Heap, singles value.Singletons, p *Program) []alloc.ValueHandle {
	out := make([]alloc.ValueHandle, len(p.Forms))
	for i, f := range p.Forms {
		out[i] = LowerExpr(h, singles, f)
	}
	return out
}

// LowerExpr lowers a single syntax node to a value handle.
func LowerExpr(h *value.Heap, singles value.Singletons, e *Expr) alloc.ValueHandle {
	switch {
	case e.IntLit != nil:
		return h.AllocValue(value.Value{Kind: value.KindInteger, Int: *e.IntLit})
	case e.BoolLit != nil:
		if *e.BoolLit == "#t" {
			return singles.True
		}
		return singles.False
	case e.Sym != nil:
		return h.AllocValue(value.Value{Kind: value.KindSymbol, Sym: *e.Sym})
	case e.List != nil:
		elems := make([]alloc.ValueHandle, len(e.List.Elems))
		for i, sub := range e.List.Elems {
			elems[i] = LowerExpr(h, singles, sub)
		}
		return h.VectorToCons(elems, singles.Nil)
	default:
		return singles.Nil
	}
}
