// Package lexer tokenizes Lisp source text, the external "whitespace-
// separated source text → tokens" collaborator spec.md §1 scopes out of
// the core. Grounded on kanso-lang-kanso/grammar/lexer.go: a
// participle/v2 stateful lexer with one rule set, rather than the
// teacher's own hand-rolled rune-by-rune internal/lexer.Lexer — this
// repository's grammar is small enough that a declarative rule table is
// the idiomatic choice, the way the rest of the retrieval pack's language
// front ends build theirs.
package lexer

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/golisp-lang/golisp/internal/lisp/token"
)

// Lexer is the stateful participle lexer definition shared by every parse.
// Order matters: participle's stateful lexer takes the first rule that
// matches at the current position, not the longest match, so Bool must be
// tried before Ident (both can match "#t") and Int before Ident (both can
// match a leading digit run).
var Lexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{token.LParen.String(), `\(`, nil},
		{token.RParen.String(), `\)`, nil},
		{token.Bool.String(), `#t|#f`, nil},
		{token.Int.String(), `[0-9]+`, nil},
		{token.Ident.String(), `[^\s()]+`, nil},
		{token.Whitespace.String(), `[ \t\r\n]+`, nil},
	},
})
