package eval

import (
	"github.com/golisp-lang/golisp/internal/lisp/alloc"
	"github.com/golisp-lang/golisp/internal/lisp/lisperr"
	"github.com/golisp-lang/golisp/internal/lisp/value"
)

// evalNode implements spec.md §4.3 "Evaluating a node": self-evaluating
// literals push themselves, symbols resolve against env, Nil is an error,
// and Cons is destructured and dispatched on its head.
func (in *Interp) evalNode(env alloc.EnvHandle, node alloc.ValueHandle) {
	v := in.heap.Value(node)
	switch v.Kind {
	case value.KindInteger, value.KindBool, value.KindNativeFunction,
		value.KindFunction, value.KindContinuation:
		in.pushResult(node)

	case value.KindSymbol:
		if bound, ok := in.heap.Lookup(env, v.Sym); ok {
			in.pushResult(bound)
		} else {
			in.SetError(lisperr.NewUnboundSymbolError(v.Sym))
		}

	case value.KindNil:
		in.SetError(lisperr.NewEmptyListEvalError())

	case value.KindCons:
		in.evalList(env, node)

	default:
		in.SetError(lisperr.NewEmptyListEvalError())
	}
}

// evalList destructures a Cons-headed expression and dispatches on its
// head: a special-form symbol is handled inline, anything else is a
// function application.
func (in *Interp) evalList(env alloc.EnvHandle, node alloc.ValueHandle) {
	elems, err := in.heap.ConsToVector(node)
	if err != nil {
		in.SetError(lisperr.NewMalformedListError())
		return
	}
	if len(elems) == 0 {
		in.SetError(lisperr.NewEmptyListEvalError())
		return
	}

	head := in.heap.Value(elems[0])
	if head.Kind == value.KindSymbol && SpecialForms[head.Sym] {
		in.evalSpecialForm(env, head.Sym, elems)
		return
	}

	in.evalApplication(env, elems)
}

// evalSpecialForm handles if/lambda/quote/define inline, per the table in
// spec.md §4.3. elems includes the leading form symbol at index 0.
func (in *Interp) evalSpecialForm(env alloc.EnvHandle, form string, elems []alloc.ValueHandle) {
	switch form {
	case "if":
		if len(elems) != 4 {
			in.SetError(lisperr.NewInvalidIfError(len(elems) - 1))
			return
		}
		in.steps = append(in.steps, &ifBranchStep{Env: env, Then: elems[2], Else: elems[3]})
		in.steps = append(in.steps, &evalStep{Env: env, Node: elems[1]})

	case "lambda":
		if len(elems) != 3 {
			in.SetError(lisperr.NewInvalidLambdaArityError(len(elems) - 1))
			return
		}
		params, ok := in.parseParamList(elems[1])
		if !ok {
			in.SetError(lisperr.NewInvalidLambdaParamsError())
			return
		}
		fn := in.heap.AllocValue(value.Value{
			Kind:    value.KindFunction,
			Params:  params,
			Closure: env,
			Body:    elems[2],
		})
		in.pushResult(fn)

	case "quote":
		if len(elems) != 2 {
			in.SetError(lisperr.NewInvalidQuoteError(len(elems) - 1))
			return
		}
		in.pushResult(elems[1])

	case "define":
		if len(elems) != 3 {
			in.SetError(lisperr.NewInvalidDefineArityError(len(elems) - 1))
			return
		}
		nameVal := in.heap.Value(elems[1])
		if nameVal.Kind != value.KindSymbol {
			in.SetError(lisperr.NewInvalidDefineNameError())
			return
		}
		in.steps = append(in.steps, &defineBindStep{Env: env, Name: nameVal.Sym})
		in.steps = append(in.steps, &evalStep{Env: env, Node: elems[2]})
	}
}

// parseParamList validates that paramsNode is a proper list of symbols and
// returns their names in order.
func (in *Interp) parseParamList(paramsNode alloc.ValueHandle) ([]string, bool) {
	elems, err := in.heap.ConsToVector(paramsNode)
	if err != nil {
		return nil, false
	}
	names := make([]string, len(elems))
	for i, e := range elems {
		v := in.heap.Value(e)
		if v.Kind != value.KindSymbol {
			return nil, false
		}
		names[i] = v.Sym
	}
	return names, true
}

// evalApplication implements spec.md §4.3's general function-application
// setup: isolate this call's operand evaluations into a fresh results
// accumulator, schedule the apply step, then schedule callee-then-arguments
// evaluation left to right.
func (in *Interp) evalApplication(env alloc.EnvHandle, elems []alloc.ValueHandle) {
	in.pushSavedResults()
	in.steps = append(in.steps, &applyStep{Env: env})
	for i := len(elems) - 1; i >= 0; i-- {
		in.steps = append(in.steps, &evalStep{Env: env, Node: elems[i]})
	}
}
