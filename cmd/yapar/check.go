package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/yapar/grammarfile"
	"github.com/npillmayer/yapar/lr"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "check FILE",
		Short:   "Validate a grammar file and report its tokens",
		Example: `  yapar check grammar.y --tokens Productions/tokens.txt`,
		Args:    cobra.ExactArgs(1),
		RunE:    runCheck,
	}
	cmd.Flags().String("tokens", "", "file with known tokens, one per line")
	rootCmd.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	f, err := grammarfile.ParseFile(args[0])
	if err != nil {
		return err
	}
	pterm.Info.Println(fmt.Sprintf("%s: %d rules", f.Name, f.Grammar.Size()))
	pterm.Info.Println("Tokens: " + strings.Join(f.Tokens, " "))
	if len(f.Ignored) > 0 {
		pterm.Info.Println("Ignored: " + strings.Join(f.Ignored, " "))
	}
	return checkTokens(f)
}

// loadGrammar reads a grammar file and prepares it for analysis.
func loadGrammar(path string) (*grammarfile.File, *lr.LRAnalysis, error) {
	f, err := grammarfile.ParseFile(path)
	if err != nil {
		return nil, nil, err
	}
	if err = checkTokens(f); err != nil {
		return nil, nil, err
	}
	ga, err := lr.Analysis(f.Grammar)
	if err != nil {
		return nil, nil, err
	}
	ga.Grammar().Dump() // only visible in debug mode
	return f, ga, nil
}

// buildCFSM builds the CFSM with the configured accept detection.
func buildCFSM(ga *lr.LRAnalysis) (*lr.CFSM, error) {
	mode, err := conf.AcceptMode()
	if err != nil {
		return nil, err
	}
	return lr.NewCFSMBuilder(ga, lr.WithAcceptMode(mode)).Build()
}
