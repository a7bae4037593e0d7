package value

import "github.com/golisp-lang/golisp/internal/lisp/alloc"

// Heap owns the two typed arenas and implements spec.md §4.1's tracing
// rules over them. It is the only place that knows how to walk a Value or
// an Environment for outgoing handles, so it is the only place an import
// cycle between alloc (generic, handle-only) and the domain types is
// resolved: alloc knows nothing about Value/Environment, Heap knows both.
type Heap struct {
	Values *alloc.Arena[Value]
	Envs   *alloc.Arena[Environment]

	// permanentRoots holds handles every GC cycle must mark regardless of
	// reachability from rootEnv: the interned Nil/True/False singletons
	// (set by InternSingletons). Without this, a singleton unreferenced by
	// any binding — True/False are never bound by name, only Nil is (as
	// `nil`) — would be swept the first time it isn't otherwise reachable,
	// leaving every later #t/#f literal and i= result a dangling handle.
	permanentRoots []alloc.ValueHandle
}

// NewHeap creates an empty heap with both arenas ready for allocation.
func NewHeap() *Heap {
	return &Heap{
		Values: alloc.NewArena[Value](),
		Envs:   alloc.NewArena[Environment](),
	}
}

// AllocValue stores v in the value arena and returns its handle.
func (h *Heap) AllocValue(v Value) alloc.ValueHandle {
	return alloc.ValueHandle(h.Values.Alloc(v))
}

// AllocEnv stores e in the environment arena and returns its handle.
func (h *Heap) AllocEnv(e *Environment) alloc.EnvHandle {
	return alloc.EnvHandle(h.Envs.Alloc(*e))
}

// Value dereferences a value handle. The caller must only pass handles
// reachable from a live root; the heap performs no liveness check.
func (h *Heap) Value(hv alloc.ValueHandle) *Value {
	return h.Values.Get(int(hv))
}

// Env dereferences an environment handle, with the same liveness contract
// as Value.
func (h *Heap) Env(he alloc.EnvHandle) *Environment {
	return h.Envs.Get(int(he))
}

// Singletons used by the evaluator and builtins so every Nil (and every
// #t/#f literal of a given polarity) shares one handle rather than
// reallocating on every evaluation of a self-evaluating literal. This is
// an optimization, not a semantic requirement: spec.md never requires Nil
// or Bool identity, only value equality.
type Singletons struct {
	Nil       alloc.ValueHandle
	True      alloc.ValueHandle
	False     alloc.ValueHandle
}

// InternSingletons allocates the Nil/True/False values once and returns
// handles to them. Call this exactly once per Heap at interpreter
// construction time. The three handles are also registered as permanent GC
// roots, since True/False are never bound in any environment.
func (h *Heap) InternSingletons() Singletons {
	singles := Singletons{
		Nil:   h.AllocValue(Value{Kind: KindNil}),
		True:  h.AllocValue(Value{Kind: KindBool, Bool: true}),
		False: h.AllocValue(Value{Kind: KindBool, Bool: false}),
	}
	h.permanentRoots = append(h.permanentRoots, singles.Nil, singles.True, singles.False)
	return singles
}

// MarkEnv implements spec.md's mark_env: mark e, then (unless already
// marked) recursively mark its parent and every bound value.
func (h *Heap) MarkEnv(e alloc.EnvHandle) {
	if h.Envs.Mark(int(e)) {
		return
	}
	env := h.Env(e)
	if env.HasParent {
		h.MarkEnv(env.Parent)
	}
	for _, v := range env.Bindings {
		h.MarkValue(v)
	}
}

// MarkValue implements spec.md's mark_val: mark v, then (unless already
// marked) mark its outgoing handles according to its Kind.
func (h *Heap) MarkValue(hv alloc.ValueHandle) {
	if h.Values.Mark(int(hv)) {
		return
	}
	v := h.Value(hv)
	switch v.Kind {
	case KindCons:
		h.MarkValue(v.Head)
		h.MarkValue(v.Tail)
	case KindFunction:
		h.MarkEnv(v.Closure)
		h.MarkValue(v.Body)
	case KindContinuation:
		h.markContinuation(v.Cont)
	}
}

// markContinuation marks every value handle embedded in a continuation
// snapshot: the results stack, the saved-results stacks, and any handle
// reachable through the step list. Steps are opaque to package value, but
// every concrete step type in package eval implements HandleSource so its
// embedded handles are still traced (spec.md §4.1's step-tracing hook).
func (h *Heap) markContinuation(c *Continuation) {
	for _, r := range c.Results {
		h.MarkValue(r)
	}
	for _, frame := range c.SavedResults {
		for _, r := range frame {
			h.MarkValue(r)
		}
	}
	for _, s := range c.Steps {
		if hs, ok := s.(HandleSource); ok {
			for _, hv := range hs.Handles() {
				h.MarkValue(hv)
			}
			if e, ok := hs.EnvHandle(); ok {
				h.MarkEnv(e)
			}
		}
	}
}

// HandleSource is implemented by evaluator step kinds that embed value or
// environment handles (e.g. a pending define-bind step holding the name's
// target environment, or an eval step holding its expression node and
// environment). MarkValue/MarkEnv use it to reach those handles even though
// package value has no knowledge of eval's concrete step types.
type HandleSource interface {
	Handles() []alloc.ValueHandle
	EnvHandle() (alloc.EnvHandle, bool)
}

// GC runs one mark-and-sweep cycle rooted at rootEnv plus the given extra
// roots (live result/saved-result handles the evaluator is holding outside
// any environment at the moment GC runs), then sweeps both arenas. Callers
// needing to root additional environments directly (see eval.Interp.GC) can
// call MarkEnv before GC: marks accumulate within a cycle until Sweep runs.
func (h *Heap) GC(rootEnv alloc.EnvHandle, extraRoots ...alloc.ValueHandle) {
	h.MarkEnv(rootEnv)
	for _, r := range h.permanentRoots {
		h.MarkValue(r)
	}
	for _, r := range extraRoots {
		h.MarkValue(r)
	}
	h.Values.Sweep()
	h.Envs.Sweep()
}

// Profile reports the current size and free-list depth of both arenas.
func (h *Heap) Profile() alloc.Profile {
	return alloc.Profile{
		ValuesSize: h.Values.Size(),
		ValuesFree: h.Values.FreeCount(),
		EnvsSize:   h.Envs.Size(),
		EnvsFree:   h.Envs.FreeCount(),
	}
}
