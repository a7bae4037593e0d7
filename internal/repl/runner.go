package repl

import (
	"github.com/golisp-lang/golisp/internal/lisp/eval"
	"github.com/golisp-lang/golisp/internal/lisp/syntax"
)

// RunFile evaluates every top-level form in src in order under interp's
// environment and returns the printed form of the last one — spec.md §4.3
// "Top-level execution": "the program's final value is the last top-level
// expression's value, or Nil if empty." An error aborts evaluation of the
// remaining forms and is returned directly, matching §7 "Propagation".
func RunFile(interp *eval.Interp, filename, src string) (string, error) {
	program, err := syntax.Parse(filename, src)
	if err != nil {
		return "", err
	}

	singles := interp.Singletons()
	heap := interp.Heap()
	forms := syntax.Lower(heap, singles, program)

	if len(forms) == 0 {
		return heap.Print(singles.Nil), nil
	}

	var last string
	for _, form := range forms {
		result, err := interp.Eval(form)
		if err != nil {
			return "", err
		}
		last = heap.Print(result)
	}
	return last, nil
}
