package syntax

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/golisp-lang/golisp/internal/lisp/lexer"
	"github.com/golisp-lang/golisp/internal/lisp/token"
)

// parser is built once at package init; participle's generated parser is
// safe for concurrent ParseString calls, the same sharing kanso-lang-kanso
// relies on by rebuilding it per ParseFile call (we amortize that cost
// since our grammar never varies per invocation).
var parser = participle.MustBuild[Program](
	participle.Lexer(lexer.Lexer),
	participle.Elide(token.Whitespace.String()),
	participle.UseLookahead(2),
)

// ParseError wraps a participle parse failure with the offending line and
// a caret pointing at the column, the shape internal/repl renders to
// stderr (grounded on kanso-lang-kanso/grammar/parser.go's
// reportParseError).
type ParseError struct {
	Filename string
	Line     int
	Column   int
	Message  string
	SourceLine string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Filename, e.Line, e.Column, e.Message)
}

// Caret renders the offending source line followed by a caret under the
// reported column.
func (e *ParseError) Caret() string {
	return e.SourceLine + "\n" + strings.Repeat(" ", max(e.Column-1, 0)) + "^"
}

// Parse tokenizes and parses src, returning a Program or a *ParseError.
func Parse(filename, src string) (*Program, error) {
	program, err := parser.ParseString(filename, src)
	if err != nil {
		return nil, toParseError(filename, src, err)
	}
	return program, nil
}

func toParseError(filename, src string, err error) error {
	pe, ok := err.(participle.Error)
	if !ok {
		return &ParseError{Filename: filename, Message: err.Error()}
	}
	pos := pe.Position()
	lines := strings.Split(src, "\n")
	srcLine := ""
	if pos.Line >= 1 && pos.Line <= len(lines) {
		srcLine = lines[pos.Line-1]
	}
	return &ParseError{
		Filename:   filename,
		Line:       pos.Line,
		Column:     pos.Column,
		Message:    pe.Message(),
		SourceLine: srcLine,
	}
}
