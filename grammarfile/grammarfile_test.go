package grammarfile

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/yapar/lr"
	"github.com/stretchr/testify/assert"
)

func Test_Validate(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect []string
	}{
		{
			name:  "valid file",
			input: "/* comment */\n%token A B\nIGNORE B\n%%\nx : A\n",
		},
		{
			name:   "missing separator",
			input:  "%token A\nx : A\n",
			expect: []string{MsgMissingMark},
		},
		{
			name:   "open comment",
			input:  "/* comment\n%%\n",
			expect: []string{MsgInvalidComment},
		},
		{
			name:   "close comment",
			input:  "comment */\n%%\n",
			expect: []string{MsgInvalidComment},
		},
		{
			name:   "declaration after separator",
			input:  "%%\n%token A\n",
			expect: []string{MsgInvalidToken},
		},
		{
			name:   "unknown directive",
			input:  "%start x\n%%\n",
			expect: []string{MsgInvalidTokenFmt},
		},
		{
			name:   "empty declarations",
			input:  "%token\nIGNORE\n%%\n",
			expect: []string{MsgEmptyTokenDecl, MsgEmptyIgnore},
		},
		{
			name:   "token without percent",
			input:  "token A\n%%\n",
			expect: []string{MsgMisplacedToken},
		},
		{
			name:   "messages are reported once",
			input:  "/* a\n/* b\n",
			expect: []string{MsgInvalidComment, MsgMissingMark},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			err := Validate(tc.name, Lines(tc.input))
			if tc.expect == nil {
				assert.Nil(err)
				return
			}
			var verr *ValidationError
			if assert.True(errors.As(err, &verr)) {
				assert.ElementsMatch(tc.expect, verr.Messages())
			}
		})
	}
}

func Test_ValidateLineNumbers(t *testing.T) {
	assert := assert.New(t)

	err := Validate("lines", Lines("%token A\n\n%%\nx : A\n%oops\n"))
	var verr *ValidationError
	if assert.True(errors.As(err, &verr)) {
		assert.Equal(5, verr.Problems[0].Line)
		assert.Contains(err.Error(), "line 5: Invalid token")
	}
}

func Test_Tokens(t *testing.T) {
	assert := assert.New(t)

	lines := Lines("/* %token NO */\n%token C A\n%token B\nIGNORE B D\n%%\n%token X\n")
	declared, ignored := Tokens(lines)
	assert.Equal([]string{"A", "C"}, declared)
	assert.Equal([]string{"B", "D"}, ignored)
}

func Test_CheckTokens(t *testing.T) {
	assert := assert.New(t)

	known, err := ReadTokenList(strings.NewReader("A\n\n  B \n"))
	assert.Nil(err)
	assert.Equal([]string{"A", "B"}, known)
	assert.Equal([]string{"C"}, CheckTokens([]string{"A", "B", "C"}, known))
	assert.Empty(CheckTokens([]string{"A"}, known))
}

func Test_ParseEpsilonGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yapar.grammarfile")
	defer teardown()
	assert := assert.New(t)

	f, err := ParseFile("testdata/epsilon.y")
	if !assert.Nil(err) {
		return
	}
	g := f.Grammar
	assert.Equal("epsilon", g.Name)
	assert.Equal([]string{"a", "b", "c", "d"}, f.Tokens)
	assert.Equal(7, g.Size())
	assert.Equal("s", g.Start().Name)
	assert.True(g.Symbol("a").IsTerminal())
	assert.True(g.Symbol("a_list").IsNonTerminal())
	assert.Equal("c_part -> ε", g.Rule(6).String())

	ga, err := lr.Analysis(g)
	if !assert.Nil(err) {
		return
	}
	cfsm, err := lr.NewCFSMBuilder(ga).Build()
	if assert.Nil(err) {
		assert.Equal(10, cfsm.Size())
		assert.Equal(11, len(cfsm.Transitions()))
	}
}

func Test_ParseWithoutSemicolons(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yapar.grammarfile")
	defer teardown()
	assert := assert.New(t)

	f, err := ParseFile("testdata/expr.y")
	if !assert.Nil(err) {
		return
	}
	assert.Equal([]string{"WS"}, f.Ignored)
	assert.NotContains(f.Tokens, "WS")
	rules := []string{
		"expr -> expr PLUS term",
		"expr -> term",
		"term -> term STAR factor",
		"term -> factor",
		"factor -> LPAREN expr RPAREN",
		"factor -> ID",
		"factor -> NUM",
	}
	for i, r := range f.Grammar.Rules() {
		assert.Equal(rules[i], r.String())
	}
	known, err := ReadTokenFile("testdata/tokens.txt")
	assert.Nil(err)
	assert.Equal([]string{"RPAREN"}, CheckTokens(f.Tokens, known))

	ga, err := lr.Analysis(f.Grammar)
	if !assert.Nil(err) {
		return
	}
	cfsm, err := lr.NewCFSMBuilder(ga).Build()
	if assert.Nil(err) {
		assert.Equal(13, cfsm.Size())
		assert.Equal(26, len(cfsm.Transitions()))
	}
}

func Test_ParseErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		check func(assert *assert.Assertions, err error)
	}{
		{
			name:  "invalid file",
			input: "x : A\n",
			check: func(assert *assert.Assertions, err error) {
				var verr *ValidationError
				assert.True(errors.As(err, &verr))
			},
		},
		{
			name:  "missing rule name",
			input: "%%\n: A\n",
			check: func(assert *assert.Assertions, err error) {
				var serr *SyntaxError
				if assert.True(errors.As(err, &serr)) {
					assert.Contains(serr.Msg, "expected rule name")
				}
			},
		},
		{
			name:  "colon inside alternative",
			input: "%%\nexpr : ID:x ;\n",
			check: func(assert *assert.Assertions, err error) {
				var serr *SyntaxError
				if assert.True(errors.As(err, &serr)) {
					assert.Contains(serr.Msg, `unexpected ':' after "ID"`)
					assert.False(serr.Span.IsNull())
				}
			},
		},
		{
			name:  "colon after symbols",
			input: "%%\nexpr : term PLUS ID : x\n",
			check: func(assert *assert.Assertions, err error) {
				var serr *SyntaxError
				if assert.True(errors.As(err, &serr)) {
					assert.Contains(serr.Msg, "in rule for expr")
				}
			},
		},
		{
			name:  "undeclared token",
			input: "%token A\n%%\nx : A B\n",
			check: func(assert *assert.Assertions, err error) {
				var uerr *lr.UndeclaredSymbolError
				if assert.True(errors.As(err, &uerr)) {
					assert.Equal("B", uerr.Symbol)
				}
			},
		},
		{
			name:  "undeclared non-terminal",
			input: "%%\nx : y\n",
			check: func(assert *assert.Assertions, err error) {
				var uerr *lr.UndeclaredSymbolError
				if assert.True(errors.As(err, &uerr)) {
					assert.Equal("y", uerr.Symbol)
				}
			},
		},
		{
			name:  "no rules",
			input: "%token A\n%%\n",
			check: func(assert *assert.Assertions, err error) {
				assert.True(errors.Is(err, lr.ErrNoProductions))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.name, tc.input)
			tc.check(assert.New(t), err)
		})
	}
}

func Test_ParseEpsilonLiteral(t *testing.T) {
	assert := assert.New(t)

	f, err := Parse("eps", "%%\nx : A x\n  | ε\n")
	if assert.Nil(err) {
		assert.Equal(2, f.Grammar.Size())
		assert.True(f.Grammar.Rule(1).IsEpsilon())
	}
}
