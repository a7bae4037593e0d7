// Package repl implements the interactive read-eval-print loop spec.md §6
// requires: prompt "> ", read one line, tokenize, parse, evaluate each
// top-level form, print "<value>" or "Error: <message>" to stderr, and
// keep going on the same environment after an error. Grounded on
// original_source's src/eval/repl.rs and src/interpreter/repl.rs (binds
// the root environment once, loops over stdin lines) and, for CLI
// wiring, the teacher's cmd/dwscript/cmd/run.go.
package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/golisp-lang/golisp/internal/lisp/alloc"
	"github.com/golisp-lang/golisp/internal/lisp/builtins"
	"github.com/golisp-lang/golisp/internal/lisp/eval"
	"github.com/golisp-lang/golisp/internal/lisp/syntax"
)

const prompt = "> "

// errorColor renders "Error: ..." lines the way
// kanso-lang-kanso/grammar/parser.go's reportParseError highlights a
// failure: bold red, only when the stream is a terminal (color.NoColor is
// set automatically by fatih/color based on the output's terminal-ness).
var errorColor = color.New(color.FgRed, color.Bold)

// New constructs an interpreter with the required built-ins installed.
func New(out func(string)) *eval.Interp {
	return eval.New(func(in *eval.Interp) alloc.EnvHandle {
		return builtins.Install(in.Heap(), in.Singletons())
	}, out)
}

// Run reads lines from in, printing a prompt to prompts and evaluation
// results/errors to out/errOut, until EOF or a read error. The same
// interpreter (and therefore the same top-level environment) is reused
// across every line, so `define` persists the way spec.md §6 requires.
func Run(interp *eval.Interp, in io.Reader, out, errOut io.Writer, prompts io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		if prompts != nil {
			fmt.Fprint(prompts, prompt)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		EvalSource(interp, "<repl>", line, out, errOut)
	}
}

// EvalSource parses src and evaluates every top-level form in order under
// interp's current environment, printing each result (or the first error,
// which aborts the remaining forms in this source chunk but leaves interp
// reusable for the next one — spec.md §7 "Propagation").
func EvalSource(interp *eval.Interp, filename, src string, out, errOut io.Writer) {
	program, err := syntax.Parse(filename, src)
	if err != nil {
		reportError(errOut, err)
		return
	}

	singles := interp.Singletons()
	heap := interp.Heap()
	forms := syntax.Lower(heap, singles, program)

	for _, form := range forms {
		result, err := interp.Eval(form)
		if err != nil {
			reportError(errOut, err)
			return
		}
		fmt.Fprintln(out, heap.Print(result))
	}
}

// reportError prints err the way spec.md §6 requires ("Error: <message>"
// on stderr), colorized per kanso-lang-kanso's parser error reporting, and
// with a caret pointer when err carries source position information.
func reportError(errOut io.Writer, err error) {
	if pe, ok := err.(*syntax.ParseError); ok {
		errorColor.Fprintln(errOut, "Error: "+pe.Error())
		fmt.Fprintln(errOut, pe.Caret())
		return
	}
	errorColor.Fprintf(errOut, "Error: %s\n", err)
}
