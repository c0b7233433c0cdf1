package main

import (
	"fmt"

	"github.com/npillmayer/yapar/render"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "first FILE",
		Short: "Print the FIRST sets of all non-terminals",
		Args:  cobra.ExactArgs(1),
		RunE:  runFirst,
	}
	rootCmd.AddCommand(cmd)
}

func runFirst(cmd *cobra.Command, args []string) error {
	_, ga, err := loadGrammar(args[0])
	if err != nil {
		return err
	}
	table, err := render.FirstTable(ga)
	if err != nil {
		return err
	}
	fmt.Println(table)
	return nil
}
