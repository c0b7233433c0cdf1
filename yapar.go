package yapar

import "fmt"

// --- Tokens of grammar files -----------------------------------------------

// TokType is a category type for a Token. Constants are defined by the
// scanner producing the tokens.
type TokType int

// Token represents a lexeme of a grammar file, e.g. an identifier on the
// right hand side of a production:
//
//    TokType = Ident        // identifier for this kind of tokens
//    Lexeme  = "expression" // lexeme how it appeared in the input
//    Span    = 4:3…4:13     // line 4, columns 3 to 13
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans -----------------------------------------------------------------

// Pos is a position in a grammar file. Lines and columns start with 1.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span denotes a run of input, given as a start position and the position
// of the last character.
type Span [2]Pos // (x…y)

// From returns the start position of a span.
func (s Span) From() Pos {
	return s[0]
}

// To returns the end position of a span.
func (s Span) To() Pos {
	return s[1]
}

// IsNull is true for the zero span.
func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("(%s…%s)", s[0], s[1])
}
