package scanner

import (
	"strings"
	"sync"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/yapar"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals (':', ';', …), a list of keywords ("%token", …) and a
// map for translating token strings to their values. Literals and keywords
// take precedence over patterns added by init.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string,
	tokenIds map[string]yapar.TokType) (*LMAdapter, error) {
	//
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(name), MakeToken(name, tokenIds[name]))
	}
	init(adapter.Lexer)
	if err := adapter.Lexer.Compile(); err != nil {
		gtrace.SyntaxTracer.Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(sourceID string, input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Source: sourceID, Error: logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Source  string // name of the input, for error messages
	Error   func(error)
	last    yapar.Span
}

var _ Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// NextToken is part of the Tokenizer interface. Input which cannot be
// matched is reported to the error handler and skipped.
func (lms *LMScanner) NextToken() yapar.Token {
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		end := yapar.Span{lms.last.To(), lms.last.To()}
		return MakeDefaultToken(EOF, "", end)
	}
	token := tok.(*lexmachine.Token)
	span := yapar.Span{
		{Line: token.StartLine, Column: token.StartColumn},
		{Line: token.EndLine, Column: token.EndColumn},
	}
	lms.last = span
	t := MakeDefaultToken(yapar.TokType(token.Type), string(token.Lexeme), span)
	tracer().Debugf("%s: token %v", lms.Source, t)
	return t
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id yapar.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(id), string(m.Bytes), m), nil
	}
}

// --- Grammar file dialect --------------------------------------------------

var grammarLexer struct {
	once    sync.Once
	adapter *LMAdapter
	err     error
}

var grammarTokenIds = map[string]yapar.TokType{
	"%token":   TokenDecl,
	"IGNORE":   Ignore,
	"%%":       Separator,
	":":        Colon,
	"|":        Bar,
	";":        Semicolon,
	EpsilonLit: Epsilon,
}

// EpsilonLit is the literal for an empty right hand side.
const EpsilonLit = "ε"

func initGrammarLexer(lexer *lexmachine.Lexer) {
	lexer.Add([]byte(`/\*([^*]|\r|\n|(\*+([^*/]|\r|\n)))*\*+/`), MakeToken("Comment", Comment))
	lexer.Add([]byte(`[^ \t\r\n\|:;%]+`), MakeToken("Ident", Ident))
	lexer.Add([]byte(`\n`), MakeToken("NL", Newline))
	lexer.Add([]byte(`( |\t|\r)+`), Skip)
}

// GrammarTokenizer creates a tokenizer for grammar files. The DFA for the
// dialect is compiled once and shared between tokenizers.
func GrammarTokenizer(sourceID string, input string) (*LMScanner, error) {
	grammarLexer.once.Do(func() {
		grammarLexer.adapter, grammarLexer.err = NewLMAdapter(initGrammarLexer,
			[]string{":", "|", ";"},
			[]string{"%token", "IGNORE", "%%", EpsilonLit},
			grammarTokenIds)
	})
	if grammarLexer.err != nil {
		return nil, grammarLexer.err
	}
	return grammarLexer.adapter.Scanner(sourceID, input)
}
