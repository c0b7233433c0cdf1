package main

import (
	"errors"
	"fmt"

	"github.com/npillmayer/yapar/grammarfile"
	"github.com/pterm/pterm"
)

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  "  Warning",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
}

// printError prints an error. Problems of grammar files are printed one
// per line.
func printError(err error) {
	var verr *grammarfile.ValidationError
	if errors.As(err, &verr) {
		pterm.Error.Println(fmt.Sprintf("grammar file %s is invalid", verr.File))
		for _, p := range verr.Problems {
			pterm.Error.Println(p.String())
		}
		return
	}
	pterm.Error.Println(err.Error())
}

// checkTokens warns about declared tokens missing from the list of known
// tokens, if a list is configured.
func checkTokens(f *grammarfile.File) error {
	if conf.Tokens == "" {
		return nil
	}
	known, err := grammarfile.ReadTokenFile(conf.Tokens)
	if err != nil {
		return err
	}
	for _, tok := range grammarfile.CheckTokens(f.Tokens, known) {
		pterm.Warning.Println(fmt.Sprintf("%s: Not detected", tok))
	}
	return nil
}
