/*
Package scanner defines an interface for scanners of grammar files and
provides a lexmachine-based tokenizer for the grammar file dialect.

Grammar files look like this:

    %token ID NUM PLUS
    IGNORE WS
    %%
    expr : expr PLUS term
         | term
         ;
    term : ID | NUM | ;

Symbols written in lower case denote non-terminals. An empty alternative
or the symbol 'ε' denotes an epsilon-production. C-style block comments may
appear anywhere.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/yapar"
)

// tracer traces with key 'yapar.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("yapar.scanner")
}

// Token types of the grammar file dialect.
const (
	EOF       yapar.TokType = -1
	Comment   yapar.TokType = iota // /* … */
	TokenDecl                      // %token
	Ignore                         // IGNORE
	Separator                      // %%
	Ident                          // symbol
	Colon                          // :
	Bar                            // |
	Semicolon                      // ;
	Epsilon                        // ε
	Newline                        // \n
)

var tokenNames = map[yapar.TokType]string{
	EOF:       "EOF",
	Comment:   "Comment",
	TokenDecl: "%token",
	Ignore:    "IGNORE",
	Separator: "%%",
	Ident:     "Ident",
	Colon:     "':'",
	Bar:       "'|'",
	Semicolon: "';'",
	Epsilon:   "ε",
	Newline:   "NL",
}

// TokenName returns a printable name for a token type.
func TokenName(t yapar.TokType) string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("<%d>", t)
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() yapar.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// grammar file tokenizer.
type DefaultToken struct {
	kind   yapar.TokType
	lexeme string
	span   yapar.Span
}

var _ yapar.Token = DefaultToken{}

// MakeDefaultToken creates a token.
func MakeDefaultToken(typ yapar.TokType, lexeme string, span yapar.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

// TokType is part of interface yapar.Token.
func (t DefaultToken) TokType() yapar.TokType {
	return t.kind
}

// Lexeme is part of interface yapar.Token.
func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

// Span is part of interface yapar.Token.
func (t DefaultToken) Span() yapar.Span {
	return t.span
}

func (t DefaultToken) String() string {
	if t.kind == Ident {
		return fmt.Sprintf("%s(%s)@%s", TokenName(t.kind), t.lexeme, t.span.From())
	}
	return fmt.Sprintf("%s@%s", TokenName(t.kind), t.span.From())
}
