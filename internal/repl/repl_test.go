package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

func TestEvalSourcePrintsResult(t *testing.T) {
	var out, errOut bytes.Buffer
	interp := New(func(string) {})

	EvalSource(interp, "<test>", "(+ 1 2)", &out, &errOut)

	if got := out.String(); got != "3\n" {
		t.Errorf("out = %q, want %q", got, "3\n")
	}
	if errOut.Len() != 0 {
		t.Errorf("errOut = %q, want empty", errOut.String())
	}
}

func TestEvalSourcePersistsDefineAcrossCalls(t *testing.T) {
	var out, errOut bytes.Buffer
	interp := New(func(string) {})

	EvalSource(interp, "<test>", "(define x 5)", &out, &errOut)
	out.Reset()
	EvalSource(interp, "<test>", "(+ x 1)", &out, &errOut)

	if got := out.String(); got != "6\n" {
		t.Errorf("out = %q, want %q", got, "6\n")
	}
}

func TestEvalSourceReportsEvalError(t *testing.T) {
	var out, errOut bytes.Buffer
	interp := New(func(string) {})

	EvalSource(interp, "<test>", "missing", &out, &errOut)

	if !strings.Contains(errOut.String(), "unbound symbol: missing") {
		t.Errorf("errOut = %q, want it to mention the unbound symbol", errOut.String())
	}
}

func TestEvalSourceReportsParseErrorWithCaret(t *testing.T) {
	var out, errOut bytes.Buffer
	interp := New(func(string) {})

	EvalSource(interp, "<test>", "(+ 1 2", &out, &errOut)

	if errOut.Len() == 0 {
		t.Fatal("expected a parse error to be reported")
	}
	if !strings.Contains(errOut.String(), "^") {
		t.Errorf("errOut = %q, want a caret line", errOut.String())
	}
}

func TestEvalSourceSnapshot(t *testing.T) {
	var out, errOut bytes.Buffer
	interp := New(func(string) {})

	EvalSource(interp, "<test>", "(define square (lambda (n) (* n n)))", &out, &errOut)
	out.Reset()
	EvalSource(interp, "<test>", "(square 7)", &out, &errOut)

	snaps.MatchSnapshot(t, "square_output", out.String())
}
