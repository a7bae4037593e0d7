// Package alloc implements the interpreter's storage layer: a generic typed
// arena addressed by stable integer handles, with the mark and sweep bits a
// collector needs. Tracing from a root environment, and the two arenas
// (values and environments) it runs over, live in package value's Heap.
//
// Handles are copyable, non-owning indices. The arena that produced a handle
// owns the payload; dereferencing a handle after its slot has been swept is
// a contract violation, not a checked error — callers only hold handles
// reachable from a live root.
package alloc

// ValueHandle indexes a slot in a Values arena.
type ValueHandle int

// EnvHandle indexes a slot in an Envs arena.
type EnvHandle int

// Invalid is returned by callers that need to signal "no handle" without
// an extra boolean; an arena never hands out a negative index, so -1 never
// names a real slot (the arenas themselves never compare against it).
const Invalid = -1
