package main

import (
	"fmt"

	"github.com/npillmayer/yapar/render"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "build FILE",
		Short:   "Build the CFSM, print its states and write a Graphviz file",
		Example: `  yapar build grammar.y --dot LR0.dot --pdf LR0.pdf`,
		Args:    cobra.ExactArgs(1),
		RunE:    runBuild,
	}
	cmd.Flags().String("tokens", "", "file with known tokens, one per line")
	cmd.Flags().String("accept", "scan", "accept detection [scan|completion]")
	cmd.Flags().String("dot", "LR0.dot", "output file for Graphviz")
	cmd.Flags().String("pdf", "", "output file for PDF, needs Graphviz 'dot'")
	rootCmd.AddCommand(cmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	_, ga, err := loadGrammar(args[0])
	if err != nil {
		return err
	}
	cfsm, err := buildCFSM(ga)
	if err != nil {
		return err
	}
	fmt.Println(render.RuleTable(ga.Grammar()))
	fmt.Println(render.StateTable(cfsm, conf.Render.DotMarker))
	pterm.Info.Println(fmt.Sprintf("%d states, %d transitions", cfsm.Size(), len(cfsm.Transitions())))
	if conf.Dot == "" {
		return nil
	}
	if err = render.WriteDotFile(conf.Dot, cfsm, conf.Render); err != nil {
		return err
	}
	pterm.Info.Println("Graphviz output written to " + conf.Dot)
	if conf.PDF != "" {
		if err = render.PDF(cmd.Context(), conf.Dot, conf.PDF, conf.Render); err != nil {
			return err
		}
		pterm.Info.Println("PDF written to " + conf.PDF)
	}
	return nil
}
