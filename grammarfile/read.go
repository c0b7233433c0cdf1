package grammarfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/yapar"
	"github.com/npillmayer/yapar/lr"
	"github.com/npillmayer/yapar/lr/scanner"
)

// File is a grammar file which has been read successfully.
type File struct {
	Name    string      // name of the grammar file
	Tokens  []string    // declared tokens, without ignored ones
	Ignored []string    // tokens listed in IGNORE lines
	Grammar *lr.Grammar // grammar built from the rules
}

// SyntaxError is an error in the rule part of a grammar file.
type SyntaxError struct {
	File string
	Span yapar.Span
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.Span.IsNull() {
		return fmt.Sprintf("%s: %s", e.File, e.Msg)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Span.From().Line, e.Span.From().Column, e.Msg)
}

// ParseFile reads a grammar file from disk. The name of the grammar is the
// file name without extension.
func ParseFile(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	f, err := Parse(name, string(src))
	if f != nil {
		f.Name = path
	}
	return f, err
}

// Parse validates the source of a grammar file and builds a grammar from its
// rules. Rules are written as
//
//     name : alternative | alternative ... ;
//
// where the semicolon is optional: a rule ends at the next "name :" which
// starts a line. An empty alternative or one consisting of ε only is an
// epsilon-production.
// Symbols are classified by lr.ClassifyByName. The left hand side of the
// first rule is the start symbol.
func Parse(name string, src string) (*File, error) {
	lines := Lines(src)
	if err := Validate(name, lines); err != nil {
		return nil, err
	}
	f := &File{Name: name}
	f.Tokens, f.Ignored = Tokens(lines)
	tokens, err := ruleTokens(name, src)
	if err != nil {
		return nil, err
	}
	p := &ruleParser{file: name, tokens: tokens, gb: lr.NewGrammarBuilder(name)}
	if len(f.Tokens) > 0 {
		p.gb.Token(f.Tokens...)
	}
	if err = p.parse(); err != nil {
		return nil, err
	}
	if f.Grammar, err = p.gb.Grammar(); err != nil {
		return nil, err
	}
	tracer().Infof("grammar %s: %d tokens, %d rules", name, len(f.Tokens), f.Grammar.Size())
	return f, nil
}

// ruleTokens returns the tokens after the separator, without comments and
// line breaks.
func ruleTokens(name string, src string) ([]yapar.Token, error) {
	tz, err := scanner.GrammarTokenizer(name, src)
	if err != nil {
		return nil, err
	}
	var scanErr error
	tz.SetErrorHandler(func(e error) {
		if scanErr == nil {
			scanErr = e
		}
	})
	var tokens []yapar.Token
	inRules := false
	for tok := tz.NextToken(); tok.TokType() != scanner.EOF; tok = tz.NextToken() {
		switch tok.TokType() {
		case scanner.Comment, scanner.Newline:
			continue
		case scanner.Separator:
			inRules = true
			continue
		}
		if inRules {
			tokens = append(tokens, tok)
		}
	}
	if scanErr != nil {
		return nil, fmt.Errorf("%s: %w", name, scanErr)
	}
	return tokens, nil
}

type ruleParser struct {
	file   string
	tokens []yapar.Token
	pos    int
	gb     *lr.GrammarBuilder
}

func (p *ruleParser) peek(n int) yapar.Token {
	if p.pos+n < len(p.tokens) {
		return p.tokens[p.pos+n]
	}
	return nil
}

func (p *ruleParser) next() yapar.Token {
	t := p.peek(0)
	p.pos++
	return t
}

func is(t yapar.Token, typ yapar.TokType) bool {
	return t != nil && t.TokType() == typ
}

// atHeader is true if the next tokens are "name :".
func (p *ruleParser) atHeader() bool {
	return is(p.peek(0), scanner.Ident) && is(p.peek(1), scanner.Colon)
}

// startsLine is true if the next token is the first one on its line. A rule
// without ';' ends only at a header on a new line.
func (p *ruleParser) startsLine() bool {
	if p.pos == 0 || p.peek(0) == nil {
		return true
	}
	prev := p.tokens[p.pos-1]
	return p.peek(0).Span().From().Line > prev.Span().To().Line
}

func (p *ruleParser) errorf(t yapar.Token, format string, args ...interface{}) error {
	var span yapar.Span
	if t != nil {
		span = t.Span()
	} else if len(p.tokens) > 0 {
		span = p.tokens[len(p.tokens)-1].Span()
	}
	return &SyntaxError{File: p.file, Span: span, Msg: fmt.Sprintf(format, args...)}
}

func (p *ruleParser) parse() error {
	for p.peek(0) != nil {
		if is(p.peek(0), scanner.Semicolon) { // stray ';'
			p.next()
			continue
		}
		if !p.atHeader() {
			t := p.peek(0)
			return p.errorf(t, "expected rule name followed by ':', found %q", t.Lexeme())
		}
		if err := p.rule(); err != nil {
			return err
		}
	}
	return nil
}

func (p *ruleParser) rule() error {
	lhs := p.next().Lexeme()
	p.next() // ':'
	tracer().Debugf("rule for %s", lhs)
	for {
		rb := p.gb.LHS(lhs)
		for is(p.peek(0), scanner.Ident) && !p.atHeader() || is(p.peek(0), scanner.Epsilon) {
			t := p.next()
			if t.TokType() == scanner.Epsilon {
				continue
			}
			rb.Sym(t.Lexeme())
		}
		if p.atHeader() && !p.startsLine() {
			return p.errorf(p.peek(1), "unexpected ':' after %q in rule for %s", p.peek(0).Lexeme(), lhs)
		}
		r := rb.End()
		tracer().Debugf("%3d: %v", r.Serial, r)
		switch t := p.peek(0); {
		case is(t, scanner.Bar):
			p.next()
		case is(t, scanner.Semicolon):
			p.next()
			return nil
		case t == nil || p.atHeader():
			return nil
		default:
			return p.errorf(t, "unexpected %q in rule for %s", t.Lexeme(), lhs)
		}
	}
}
