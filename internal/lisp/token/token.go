// Package token names the lexical token kinds spec.md §6 describes for the
// external lexer collaborator: parens, integers, the #t/#f boolean
// literals, and symbols (every other non-whitespace run). Grounded on the
// teacher's pkg/token package, which plays the same "name the token kinds
// once, reference them everywhere" role for DWScript's much larger token
// set.
package token

// Kind names one lexical token kind. The participle-driven lexer in
// package lexer produces tokens under these exact names so grammar rules
// in package syntax and error messages can refer to them symbolically
// instead of repeating regexes.
type Kind string

const (
	Whitespace Kind = "Whitespace"
	LParen     Kind = "LParen"
	RParen     Kind = "RParen"
	Bool       Kind = "Bool"
	Int        Kind = "Int"
	Ident      Kind = "Ident"
)

// String returns the kind's name, used in lexer/parser error messages.
func (k Kind) String() string {
	return string(k)
}
