package builtins

import (
	"testing"

	"github.com/golisp-lang/golisp/internal/lisp/alloc"
	"github.com/golisp-lang/golisp/internal/lisp/value"
)

// fakeInterp is a minimal value.Interp stand-in so builtins can be unit
// tested without constructing a full eval.Interp.
type fakeInterp struct {
	heap    *value.Heap
	results []alloc.ValueHandle
	err     error

	gcCalled   bool
	gcRoot     alloc.EnvHandle
	printed    []string
	applyCalls int
}

func (f *fakeInterp) Heap() *value.Heap { return f.heap }
func (f *fakeInterp) Push(h alloc.ValueHandle) { f.results = append(f.results, h) }
func (f *fakeInterp) Pop() (alloc.ValueHandle, bool) {
	n := len(f.results)
	if n == 0 {
		return 0, false
	}
	h := f.results[n-1]
	f.results = f.results[:n-1]
	return h, true
}
func (f *fakeInterp) SetError(err error) { f.err = err }
func (f *fakeInterp) Error() error       { return f.err }
func (f *fakeInterp) CallCC(alloc.EnvHandle, alloc.ValueHandle) {
	f.applyCalls++
}
func (f *fakeInterp) Apply(alloc.EnvHandle, alloc.ValueHandle, []alloc.ValueHandle) {
	f.applyCalls++
}
func (f *fakeInterp) GC(root alloc.EnvHandle) {
	f.gcCalled = true
	f.gcRoot = root
}
func (f *fakeInterp) Print(s string) { f.printed = append(f.printed, s) }

func newFakeInterp() *fakeInterp {
	h := value.NewHeap()
	return &fakeInterp{heap: h}
}

func TestInstallBindsEveryBuiltinAndNil(t *testing.T) {
	h := value.NewHeap()
	singles := h.InternSingletons()
	env := Install(h, singles)

	names := []string{"+", "*", "-", "i=", "last", "cons", "call/cc", "gc-profile", "gc-run", "nil"}
	for _, name := range names {
		if _, ok := h.Lookup(env, name); !ok {
			t.Errorf("Install did not bind %q", name)
		}
	}

	nilHandle, _ := h.Lookup(env, "nil")
	if nilHandle != singles.Nil {
		t.Error("nil is not bound to the interned Nil singleton")
	}
}

func TestConsBuiltin(t *testing.T) {
	f := newFakeInterp()
	a := f.heap.AllocValue(value.Value{Kind: value.KindInteger, Int: 1})
	b := f.heap.AllocValue(value.Value{Kind: value.KindInteger, Int: 2})

	consFn(f, 0, []alloc.ValueHandle{a, b})

	if f.err != nil {
		t.Fatalf("consFn set error: %v", f.err)
	}
	result, ok := f.Pop()
	if !ok {
		t.Fatal("consFn pushed no result")
	}
	got := f.heap.Value(result)
	if got.Kind != value.KindCons || got.Head != a || got.Tail != b {
		t.Errorf("cons result = %+v, want Cons(%d, %d)", got, a, b)
	}
}

func TestConsBuiltinWrongArity(t *testing.T) {
	f := newFakeInterp()
	consFn(f, 0, []alloc.ValueHandle{})
	if f.err == nil {
		t.Fatal("expected an arity error")
	}
}

func TestGCRunDelegatesToInterpAndReturnsNil(t *testing.T) {
	f := newFakeInterp()
	singles := f.heap.InternSingletons()
	env := f.heap.AllocEnv(value.NewEnvironment())
	f.heap.Define(env, "nil", singles.Nil)

	gcRunFn(f, env, nil)

	if !f.gcCalled {
		t.Error("gc-run did not call Interp.GC")
	}
	if f.gcRoot != env {
		t.Errorf("GC root = %d, want %d", f.gcRoot, env)
	}
	result, ok := f.Pop()
	if !ok || result != singles.Nil {
		t.Error("gc-run did not push nil")
	}
}

func TestGCProfilePrintsAndReturnsNil(t *testing.T) {
	f := newFakeInterp()
	singles := f.heap.InternSingletons()
	env := f.heap.AllocEnv(value.NewEnvironment())
	f.heap.Define(env, "nil", singles.Nil)

	gcProfileFn(f, env, nil)

	if len(f.printed) != 1 {
		t.Fatalf("gc-profile printed %d lines, want 1", len(f.printed))
	}
	result, ok := f.Pop()
	if !ok || result != singles.Nil {
		t.Error("gc-profile did not push nil")
	}
}

func TestCallCCBuiltinDelegates(t *testing.T) {
	f := newFakeInterp()
	fn := f.heap.AllocValue(value.Value{Kind: value.KindFunction})
	callCCFn(f, 0, []alloc.ValueHandle{fn})
	if f.applyCalls != 1 {
		t.Error("call/cc builtin did not delegate to Interp.CallCC")
	}
}

func TestCallCCBuiltinWrongArity(t *testing.T) {
	f := newFakeInterp()
	callCCFn(f, 0, nil)
	if f.err == nil {
		t.Fatal("expected an arity error")
	}
}
