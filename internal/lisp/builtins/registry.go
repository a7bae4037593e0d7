// Package builtins implements spec.md §4.4's required native functions and
// installs them into a fresh root environment. Grounded on the teacher's
// internal/interp/builtins package: one file per functional category
// (arithmetic, list construction, control, GC), registered through a
// small table rather than hand-written one-off binding calls, the same
// shape as the teacher's Registry/FunctionInfo in registry.go.
package builtins

import (
	"github.com/golisp-lang/golisp/internal/lisp/alloc"
	"github.com/golisp-lang/golisp/internal/lisp/value"
)

// entry pairs a built-in's name with its implementation, the unit the
// registration table below is built from.
type entry struct {
	name string
	fn   value.NativeFunc
}

// Install allocates every required native function (spec.md §4.4) as a
// NativeFunction value, binds it by name in a fresh root environment, also
// binds `nil` to the interned Nil sentinel, and returns the resulting
// environment handle — the environment an Interp uses as its top-level
// scope and the REPL persists across lines.
func Install(h *value.Heap, singles value.Singletons) alloc.EnvHandle {
	env := value.NewEnvironment()
	envHandle := h.AllocEnv(env)

	for _, e := range table(singles) {
		fnHandle := h.AllocValue(value.Value{Kind: value.KindNativeFunction, Native: e.fn})
		h.Define(envHandle, e.name, fnHandle)
	}
	h.Define(envHandle, "nil", singles.Nil)

	return envHandle
}

// table builds the full registration list from each category's
// contribution.
func table(singles value.Singletons) []entry {
	var out []entry
	out = append(out, arithmeticEntries(singles)...)
	out = append(out, listEntries()...)
	out = append(out, controlEntries()...)
	out = append(out, gcEntries()...)
	return out
}
