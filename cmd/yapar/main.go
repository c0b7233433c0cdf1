/*
Yapar builds the LR(0) automaton for a grammar file.

Usage:

	yapar [command] [flags] FILE

The commands are:

	check    validate a grammar file and report its tokens
	build    build the CFSM, print its states and write a Dot file
	first    print the FIRST sets of all non-terminals
	explore  build the CFSM and explore it interactively

Global flags are --config FILE for a TOML configuration file and
--trace LEVEL for the trace level (Debug, Info or Error).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"os"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitGrammarError indicates a grammar file which could not be processed.
	ExitGrammarError
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(ExitGrammarError)
	}
	os.Exit(ExitSuccess)
}
