package lisperr

import "testing"

func TestConstructorsFormatMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"unbound", NewUnboundSymbolError("x"), "unbound symbol: x"},
		{"empty-list", NewEmptyListEvalError(), "cannot evaluate empty list"},
		{"malformed-list", NewMalformedListError(), "malformed list"},
		{"invalid-if", NewInvalidIfError(2), "invalid if: expected 3 arguments (condition, then, else), got 2"},
		{"invalid-lambda-arity", NewInvalidLambdaArityError(3), "invalid lambda: expected 2 arguments (params, body), got 3"},
		{"invalid-lambda-params", NewInvalidLambdaParamsError(), "invalid lambda: parameter list must be a proper list of symbols"},
		{"invalid-define-arity", NewInvalidDefineArityError(1), "invalid define: expected 2 arguments (name, value), got 1"},
		{"invalid-define-name", NewInvalidDefineNameError(), "invalid define: name must be a symbol"},
		{"invalid-quote", NewInvalidQuoteError(0), "invalid quote: expected 1 argument, got 0"},
		{"wrong-arg-count", NewWrongArgCountError(2, 1), "wrong number of arguments: expected 2, received 1"},
		{"non-function-call", NewNonFunctionCallError("5"), "attempt to call a non-function value: 5"},
		{"bad-continuation-call", NewBadContinuationCallError(), "continuation must be called with 1 argument"},
		{"native-wrong-arg-count", NewNativeWrongArgCountError("cons", "2", 1), "wrong number of arguments to cons: expected 2, received 1"},
		{"native-type-mismatch", NewNativeTypeMismatchError("+", "integer", "#t"), "+: expected integer, got #t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("%s = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
