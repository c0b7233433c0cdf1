package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/yapar/grammarfile"
	"github.com/npillmayer/yapar/lr"
	"github.com/stretchr/testify/assert"
)

const epsilonFile = "../../grammarfile/testdata/epsilon.y"

func makeIntp(t *testing.T) (*Intp, *bytes.Buffer) {
	f, err := grammarfile.ParseFile(epsilonFile)
	if err != nil {
		t.Fatal(err)
	}
	ga, err := lr.Analysis(f.Grammar)
	if err != nil {
		t.Fatal(err)
	}
	cfsm, err := lr.NewCFSMBuilder(ga).Build()
	if err != nil {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	return &Intp{GA: ga, CFSM: cfsm, Marker: ".", out: out}, out
}

func Test_Eval(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yapar.cli")
	defer teardown()

	testCases := []struct {
		name      string
		line      string
		expect    string
		expectErr bool
		quit      bool
	}{
		{name: "help", line: "help", expect: "goto N SYM"},
		{name: "states", line: "states", expect: "a_list -> a . a_list"},
		{name: "state", line: "state 4", expect: "* a_list -> a . a_list"},
		{name: "goto", line: "goto 0 a", expect: "State 4"},
		{name: "goto merges", line: "goto 4 b", expect: "State 5"},
		{name: "no goto", line: "goto 0 c", expect: "no transition"},
		{name: "first", line: "first c_part", expect: "FIRST(c_part) = { d, ε }"},
		{name: "accepting state", line: "state 6", expect: "State 6 (accept)"},
		{name: "bad state", line: "state x", expectErr: true},
		{name: "missing state", line: "state 42", expectErr: true},
		{name: "unknown symbol", line: "goto 0 zz", expectErr: true},
		{name: "unknown command", line: "frobnicate", expectErr: true},
		{name: "quit", line: "quit", quit: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			intp, out := makeIntp(t)
			quit, err := intp.Eval(tc.line)
			if tc.expectErr {
				assert.Error(err)
				return
			}
			assert.Nil(err)
			assert.Equal(tc.quit, quit)
			assert.Contains(out.String(), tc.expect)
		})
	}
}

func Test_BuildCommand(t *testing.T) {
	assert := assert.New(t)

	dot := filepath.Join(t.TempDir(), "out.dot")
	rootCmd.SetArgs([]string{"build", epsilonFile, "--dot", dot, "--accept", "completion"})
	assert.Nil(Execute())
	content, err := os.ReadFile(dot)
	if assert.Nil(err) {
		assert.Contains(string(content), `s001 -> accept [label="$"]`)
	}
}

func Test_CheckCommandFails(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "broken.y")
	assert.Nil(os.WriteFile(path, []byte("%token A\nx : A\n"), 0600))
	rootCmd.SetArgs([]string{"check", path})
	assert.Error(Execute())
}
