package eval

import (
	"github.com/golisp-lang/golisp/internal/lisp/alloc"
	"github.com/golisp-lang/golisp/internal/lisp/value"
)

// runner is satisfied by every concrete step kind: Run performs the step's
// unit of work against live evaluator state, Clone produces a deep copy
// usable inside a different (snapshotted) evaluator state. Steps are data,
// not closures over arbitrary host state, precisely so Clone can be exact
// (spec.md §9 "Step cloning") and so MarkValue/MarkEnv can trace a step's
// embedded handles via the HandleSource hook below.
type runner interface {
	value.Step
	Run(in *Interp)
}

// evalStep evaluates Node under Env, the single "evaluate this expression"
// unit of work every special form and application ultimately bottoms out
// in (spec.md §4.3 "Evaluating a node").
type evalStep struct {
	Env  alloc.EnvHandle
	Node alloc.ValueHandle
}

func (s *evalStep) Clone() value.Step { c := *s; return &c }

func (s *evalStep) Handles() []alloc.ValueHandle    { return []alloc.ValueHandle{s.Node} }
func (s *evalStep) EnvHandle() (alloc.EnvHandle, bool) { return s.Env, true }

func (s *evalStep) Run(in *Interp) {
	in.evalNode(s.Env, s.Node)
}

// ifBranchStep runs after the condition of an `if` has been evaluated and
// left on top of results: it picks Then or Else per spec.md's truthiness
// rule (anything other than Bool(false) takes the then-branch) and
// schedules it for evaluation under Env.
type ifBranchStep struct {
	Env        alloc.EnvHandle
	Then, Else alloc.ValueHandle
}

func (s *ifBranchStep) Clone() value.Step { c := *s; return &c }

func (s *ifBranchStep) Handles() []alloc.ValueHandle {
	return []alloc.ValueHandle{s.Then, s.Else}
}
func (s *ifBranchStep) EnvHandle() (alloc.EnvHandle, bool) { return s.Env, true }

func (s *ifBranchStep) Run(in *Interp) {
	cond, ok := in.popResult()
	if !ok {
		in.SetError(errInternalEmptyResults)
		return
	}
	branch := s.Then
	if in.isFalse(cond) {
		branch = s.Else
	}
	in.steps = append(in.steps, &evalStep{Env: s.Env, Node: branch})
}

// defineBindStep runs after a define's right-hand side has been evaluated
// and left on top of results: it binds Name to that value in Env (the
// environment the define form is evaluated in, never a parent) and replaces
// the result with Nil, define's own value.
type defineBindStep struct {
	Env  alloc.EnvHandle
	Name string
}

func (s *defineBindStep) Clone() value.Step { c := *s; return &c }

func (s *defineBindStep) Handles() []alloc.ValueHandle         { return nil }
func (s *defineBindStep) EnvHandle() (alloc.EnvHandle, bool) { return s.Env, true }

func (s *defineBindStep) Run(in *Interp) {
	v, ok := in.popResult()
	if !ok {
		in.SetError(errInternalEmptyResults)
		return
	}
	in.heap.Define(s.Env, s.Name, v)
	in.pushResult(in.singles.Nil)
}

// applyStep runs after every operand of a function application (callee
// first, then arguments left to right) has been evaluated and accumulated
// on results: it moves that accumulated slice aside, restores results to
// the enclosing expression's accumulator, and dispatches on the callee's
// kind (spec.md §4.3 "Apply step").
type applyStep struct {
	Env alloc.EnvHandle
}

func (s *applyStep) Clone() value.Step { c := *s; return &c }

func (s *applyStep) Handles() []alloc.ValueHandle         { return nil }
func (s *applyStep) EnvHandle() (alloc.EnvHandle, bool) { return s.Env, true }

func (s *applyStep) Run(in *Interp) {
	vals := in.results
	in.results = in.popSavedResults()

	if len(vals) == 0 {
		in.SetError(errInternalEmptyResults)
		return
	}
	fnHandle := vals[0]
	args := vals[1:]
	in.Apply(s.Env, fnHandle, args)
}
