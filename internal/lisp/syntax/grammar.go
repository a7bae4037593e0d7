// Package syntax parses Lisp source into a small concrete syntax tree and
// lowers it into heap-allocated values, spec.md §1's external "parser"
// collaborator plus §4.2's lowering rule. Grounded on
// kanso-lang-kanso/grammar/grammar.go: a participle/v2 struct grammar with
// alternation fields (`@@ | @@ | ...`) and positional lexer.Position
// embedding for error reporting.
package syntax

import "github.com/alecthomas/participle/v2/lexer"

// Expr is one syntax-tree node: exactly one of IntLit, BoolLit, Sym, or
// List is non-nil, selected by whichever alternative participle matched.
type Expr struct {
	Pos lexer.Position

	IntLit  *int64  `  @Int`
	BoolLit *string `| @Bool`
	Sym     *string `| @Ident`
	List    *List   `| @@`
}

// List is a parenthesized, possibly empty sequence of forms — spec.md
// §4.2's syntax list, lowered into a right-nested cons chain.
type List struct {
	Pos   lexer.Position
	Elems []*Expr `"(" @@* ")"`
}

// Program is the top level: zero or more forms, each evaluated in order by
// the REPL/runner collaborator (spec.md §6 "REPL contract").
type Program struct {
	Forms []*Expr `@@*`
}
