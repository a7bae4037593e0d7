// Package lisperr is the interpreter's error message catalog: one exported
// format constant and constructor per error kind named in spec.md §7, so
// every layer (evaluator, builtins, REPL) raises the same wording for the
// same mistake. Grounded on the teacher's internal/interp/errors/catalog.go,
// which keeps the same shape (ErrMsg* constants + New*Error constructors)
// for the same reason: one place to audit every user-facing error string.
package lisperr

import (
	"errors"
	"fmt"
)

// ============================================================================
// Error message format constants
// ============================================================================

const (
	ErrMsgUnboundSymbol        = "unbound symbol: %s"
	ErrMsgEmptyListEval        = "cannot evaluate empty list"
	ErrMsgMalformedList        = "malformed list"
	ErrMsgInvalidIf            = "invalid if: expected 3 arguments (condition, then, else), got %d"
	ErrMsgInvalidLambdaArity   = "invalid lambda: expected 2 arguments (params, body), got %d"
	ErrMsgInvalidLambdaParams  = "invalid lambda: parameter list must be a proper list of symbols"
	ErrMsgInvalidDefineArity   = "invalid define: expected 2 arguments (name, value), got %d"
	ErrMsgInvalidDefineName    = "invalid define: name must be a symbol"
	ErrMsgInvalidQuote         = "invalid quote: expected 1 argument, got %d"
	ErrMsgWrongArgCount        = "wrong number of arguments: expected %d, received %d"
	ErrMsgNonFunctionCall      = "attempt to call a non-function value: %s"
	ErrMsgBadContinuationCall  = "continuation must be called with 1 argument"
	ErrMsgNativeWrongArgCount  = "wrong number of arguments to %s: expected %s, received %d"
	ErrMsgNativeTypeMismatch   = "%s: expected %s, got %s"
)

// ============================================================================
// Constructors
// ============================================================================

// NewUnboundSymbolError reports a symbol lookup that missed the full
// environment chain.
func NewUnboundSymbolError(name string) error {
	return fmt.Errorf(ErrMsgUnboundSymbol, name)
}

// NewEmptyListEvalError reports evaluation of Nil/() as an expression.
func NewEmptyListEvalError() error {
	return errors.New(ErrMsgEmptyListEval)
}

// NewMalformedListError reports a cons spine that does not terminate in Nil.
func NewMalformedListError() error {
	return errors.New(ErrMsgMalformedList)
}

// NewInvalidIfError reports an if form with an element count other than 3
// (the condition plus both branches; the leading `if` symbol is not
// counted).
func NewInvalidIfError(gotArgs int) error {
	return fmt.Errorf(ErrMsgInvalidIf, gotArgs)
}

// NewInvalidLambdaArityError reports a lambda form with an element count
// other than 2 (params list plus body; the leading `lambda` symbol is not
// counted).
func NewInvalidLambdaArityError(gotArgs int) error {
	return fmt.Errorf(ErrMsgInvalidLambdaArity, gotArgs)
}

// NewInvalidLambdaParamsError reports a lambda parameter list that is not a
// proper list of symbols.
func NewInvalidLambdaParamsError() error {
	return errors.New(ErrMsgInvalidLambdaParams)
}

// NewInvalidDefineArityError reports a define form with an element count
// other than 2 (name plus expression; the leading `define` symbol is not
// counted).
func NewInvalidDefineArityError(gotArgs int) error {
	return fmt.Errorf(ErrMsgInvalidDefineArity, gotArgs)
}

// NewInvalidDefineNameError reports a define whose first argument is not a
// symbol.
func NewInvalidDefineNameError() error {
	return errors.New(ErrMsgInvalidDefineName)
}

// NewInvalidQuoteError reports a quote form with an argument count other
// than 1.
func NewInvalidQuoteError(gotArgs int) error {
	return fmt.Errorf(ErrMsgInvalidQuote, gotArgs)
}

// NewWrongArgCountError reports a closure call whose argument count does
// not match its parameter count.
func NewWrongArgCountError(expected, received int) error {
	return fmt.Errorf(ErrMsgWrongArgCount, expected, received)
}

// NewNonFunctionCallError reports an application whose head evaluated to a
// value that is not callable, including its printed form.
func NewNonFunctionCallError(printed string) error {
	return fmt.Errorf(ErrMsgNonFunctionCall, printed)
}

// NewBadContinuationCallError reports a continuation invoked with an
// argument count other than 1.
func NewBadContinuationCallError() error {
	return errors.New(ErrMsgBadContinuationCall)
}

// NewNativeWrongArgCountError reports a built-in primitive called with the
// wrong number of arguments; wantDescr is a human description of the
// accepted arity (e.g. "2", "at least 1").
func NewNativeWrongArgCountError(name, wantDescr string, got int) error {
	return fmt.Errorf(ErrMsgNativeWrongArgCount, name, wantDescr, got)
}

// NewNativeTypeMismatchError reports a built-in primitive rejecting an
// argument of the wrong kind.
func NewNativeTypeMismatchError(context, expected, got string) error {
	return fmt.Errorf(ErrMsgNativeTypeMismatch, context, expected, got)
}
