package value

import "github.com/golisp-lang/golisp/internal/lisp/alloc"

// Environment is a symbol table with a lexical parent link. It mirrors the
// teacher's runtime.Environment (store + outer) except it is itself an
// arena-managed object: an Environment lives at an alloc.EnvHandle, not
// behind a Go pointer, so closures and continuations can reference it by
// handle and the GC can find and trace it like any other heap object.
type Environment struct {
	Parent    alloc.EnvHandle
	HasParent bool
	Bindings  map[string]alloc.ValueHandle
}

// NewEnvironment creates a root environment with no parent. Used once, for
// the built-in environment an Interp is constructed with.
func NewEnvironment() *Environment {
	return &Environment{Bindings: make(map[string]alloc.ValueHandle)}
}

// NewChildEnvironment creates an environment enclosed by parent, the shape
// lambda application needs for its parameter bindings.
func NewChildEnvironment(parent alloc.EnvHandle) *Environment {
	return &Environment{Parent: parent, HasParent: true, Bindings: make(map[string]alloc.ValueHandle)}
}

// Lookup searches the local bindings, then the parent chain, returning the
// bound handle or ok=false if the symbol is unbound anywhere in the chain.
// Walking the chain requires the owning Heap because Parent is a handle,
// not a pointer.
func (h *Heap) Lookup(env alloc.EnvHandle, name string) (alloc.ValueHandle, bool) {
	for {
		e := h.Envs.Get(int(env))
		if v, ok := e.Bindings[name]; ok {
			return v, true
		}
		if !e.HasParent {
			return alloc.Invalid, false
		}
		env = e.Parent
	}
}

// Define binds name to v in env directly, never walking to a parent. This
// is the only mutation spec.md's define special form performs: it must
// never reach into an enclosing scope.
func (h *Heap) Define(env alloc.EnvHandle, name string, v alloc.ValueHandle) {
	h.Envs.Get(int(env)).Bindings[name] = v
}
