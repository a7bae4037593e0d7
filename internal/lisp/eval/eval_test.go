package eval_test

import (
	"testing"

	"github.com/golisp-lang/golisp/internal/lisp/alloc"
	"github.com/golisp-lang/golisp/internal/lisp/builtins"
	"github.com/golisp-lang/golisp/internal/lisp/eval"
	"github.com/golisp-lang/golisp/internal/lisp/syntax"
)

// newInterp builds an interpreter with every required built-in installed,
// the same wiring internal/repl.New performs for the CLI.
func newInterp(t *testing.T) *eval.Interp {
	t.Helper()
	return eval.New(func(in *eval.Interp) alloc.EnvHandle {
		return builtins.Install(in.Heap(), in.Singletons())
	}, nil)
}

// evalOne parses, lowers, and evaluates a single top-level form, returning
// its printed result.
func evalOne(t *testing.T, in *eval.Interp, src string) string {
	t.Helper()
	p, err := syntax.Parse("<test>", src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	forms := syntax.Lower(in.Heap(), in.Singletons(), p)
	if len(forms) != 1 {
		t.Fatalf("expected exactly one form in %q, got %d", src, len(forms))
	}
	result, err := in.Eval(forms[0])
	if err != nil {
		t.Fatalf("Eval(%q): %v", src, err)
	}
	return in.Heap().Print(result)
}

// evalErr parses, lowers, and evaluates src, expecting an error, and
// returns its message.
func evalErr(t *testing.T, in *eval.Interp, src string) string {
	t.Helper()
	p, err := syntax.Parse("<test>", src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	forms := syntax.Lower(in.Heap(), in.Singletons(), p)
	var lastErr error
	for _, f := range forms {
		_, lastErr = in.Eval(f)
		if lastErr != nil {
			return lastErr.Error()
		}
	}
	t.Fatalf("expected an error evaluating %q, got none", src)
	return ""
}

func TestArithmeticLaws(t *testing.T) {
	in := newInterp(t)
	tests := []struct{ src, want string }{
		{"(+ 1 2 3)", "6"},
		{"(+ )", "0"},
		{"(* 2 3 4)", "24"},
		{"(* )", "1"},
		{"(- 5 3)", "2"},
		{"(i= 3 3)", "#t"},
		{"(i= 3 4)", "#f"},
		{"(last 1 2 3)", "3"},
	}
	for _, tt := range tests {
		if got := evalOne(t, in, tt.src); got != tt.want {
			t.Errorf("eval(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestIfShortCircuits(t *testing.T) {
	in := newInterp(t)
	if got := evalOne(t, in, "(if #t 1 2)"); got != "1" {
		t.Errorf("(if #t 1 2) = %q, want 1", got)
	}
	if got := evalOne(t, in, "(if #f 1 2)"); got != "2" {
		t.Errorf("(if #f 1 2) = %q, want 2", got)
	}
	// The branch not taken is never evaluated, so an unbound symbol there
	// raises no error.
	if got := evalOne(t, in, "(if #t 1 not-bound)"); got != "1" {
		t.Errorf("(if #t 1 not-bound) = %q, want 1 (else branch must not be evaluated)", got)
	}
	// Every value other than Bool(false) is truthy, including 0 and ().
	if got := evalOne(t, in, "(if 0 1 2)"); got != "1" {
		t.Errorf("(if 0 1 2) = %q, want 1 (0 is truthy)", got)
	}
}

func TestDefineAndLexicalScope(t *testing.T) {
	in := newInterp(t)
	evalOne(t, in, "(define x 10)")
	if got := evalOne(t, in, "x"); got != "10" {
		t.Errorf("x = %q, want 10", got)
	}

	evalOne(t, in, "(define add (lambda (a b) (+ a b)))")
	if got := evalOne(t, in, "(add 3 4)"); got != "7" {
		t.Errorf("(add 3 4) = %q, want 7", got)
	}
}

func TestClosuresCaptureDefiningEnvironment(t *testing.T) {
	in := newInterp(t)
	evalOne(t, in, "(define make-adder (lambda (n) (lambda (x) (+ x n))))")
	evalOne(t, in, "(define add5 (make-adder 5))")
	if got := evalOne(t, in, "(add5 10)"); got != "15" {
		t.Errorf("(add5 10) = %q, want 15", got)
	}
	// A second closure from the same maker must not share n's binding.
	evalOne(t, in, "(define add100 (make-adder 100))")
	if got := evalOne(t, in, "(add5 1)"); got != "6" {
		t.Errorf("(add5 1) after creating add100 = %q, want 6 (closures must not alias)", got)
	}
	if got := evalOne(t, in, "(add100 1)"); got != "101" {
		t.Errorf("(add100 1) = %q, want 101", got)
	}
}

func TestQuoteSuppressesEvaluation(t *testing.T) {
	in := newInterp(t)
	if got := evalOne(t, in, "(quote (a b c))"); got != "(a . (b . (c . ())))" {
		t.Errorf("(quote (a b c)) = %q, want (a . (b . (c . ())))", got)
	}
}

func TestCallCCIdentity(t *testing.T) {
	in := newInterp(t)
	// A function that never invokes k returns normally, so call/cc yields
	// the function's own result.
	if got := evalOne(t, in, "(call/cc (lambda (k) 42))"); got != "42" {
		t.Errorf("(call/cc (lambda (k) 42)) = %q, want 42", got)
	}
}

func TestCallCCEscapes(t *testing.T) {
	in := newInterp(t)
	// Invoking k abandons the rest of the (+ 2 ...) computation and returns
	// straight out of call/cc with the continuation's argument, which the
	// pending (+ 1 ...) then consumes.
	got := evalOne(t, in, "(+ 1 (call/cc (lambda (k) (+ 2 (k 10)))))")
	if got != "11" {
		t.Errorf("escaping call/cc result = %q, want 11", got)
	}
}

func TestCallCCReinvocationFromLaterContext(t *testing.T) {
	in := newInterp(t)
	// The classic "call/cc returns twice" idiom: the lambda body is the
	// parameter itself, so the very first pass through binds saved to the
	// reified continuation. Re-invoking it later resumes the captured
	// define step with a new value instead of the original one.
	if got := evalOne(t, in, "(define saved (call/cc (lambda (k) k)))"); got != "()" {
		t.Errorf("initial define result = %q, want ()", got)
	}
	if got := evalOne(t, in, "(saved 10)"); got != "()" {
		t.Errorf("(saved 10) = %q, want () (re-invoking a define continuation always yields nil)", got)
	}
	if got := evalOne(t, in, "saved"); got != "10" {
		t.Errorf("saved = %q, want 10 after resuming the captured define with a new value", got)
	}
}

func TestUnboundSymbolError(t *testing.T) {
	in := newInterp(t)
	msg := evalErr(t, in, "does-not-exist")
	if msg != "unbound symbol: does-not-exist" {
		t.Errorf("err = %q", msg)
	}
}

func TestEmptyListEvalError(t *testing.T) {
	in := newInterp(t)
	if msg := evalErr(t, in, "()"); msg != "cannot evaluate empty list" {
		t.Errorf("err = %q", msg)
	}
}

func TestWrongArityError(t *testing.T) {
	in := newInterp(t)
	evalOne(t, in, "(define f (lambda (a b) a))")
	msg := evalErr(t, in, "(f 1)")
	if msg != "wrong number of arguments: expected 2, received 1" {
		t.Errorf("err = %q", msg)
	}
}

func TestMalformedLambdaParamsError(t *testing.T) {
	in := newInterp(t)
	msg := evalErr(t, in, "(lambda (1 2) 1)")
	if msg != "invalid lambda: parameter list must be a proper list of symbols" {
		t.Errorf("err = %q", msg)
	}
}

func TestNonFunctionCallError(t *testing.T) {
	in := newInterp(t)
	msg := evalErr(t, in, "(5 1 2)")
	if msg != "attempt to call a non-function value: 5" {
		t.Errorf("err = %q", msg)
	}
}

func TestGCProfileFreeCountIncreasesAfterRun(t *testing.T) {
	in := newInterp(t)
	evalOne(t, in, "(define junk (cons 1 (cons 2 nil)))")
	evalOne(t, in, "(define junk 0)") // the old cons cells are now garbage

	before := in.Heap().Profile()
	evalOne(t, in, "(gc-run)")
	after := in.Heap().Profile()

	if after.ValuesFree <= before.ValuesFree {
		t.Errorf("ValuesFree did not increase after gc-run: before=%d after=%d",
			before.ValuesFree, after.ValuesFree)
	}
}
