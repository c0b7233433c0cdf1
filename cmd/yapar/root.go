package main

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// tracer traces with key 'yapar.cli'.
func tracer() tracing.Trace {
	return tracing.Select("yapar.cli")
}

var traceKeys = []string{"yapar.cli", "yapar.lr", "yapar.scanner", "yapar.grammarfile", "yapar.render"}

var rootFlags = struct {
	config *string
	trace  *string
}{}

// conf is the configuration for the current command, valid after
// rootCmd's pre-run.
var conf Config

var rootCmd = &cobra.Command{
	Use:   "yapar",
	Short: "Build the LR(0) automaton for a grammar file",
	Long: `yapar reads a grammar file, builds the canonical collection of LR(0)
item sets and presents it as a table, as a Graphviz graph or interactively.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootFlags.config = rootCmd.PersistentFlags().StringP("config", "c", "", "TOML configuration file")
	rootFlags.trace = rootCmd.PersistentFlags().StringP("trace", "t", "Error", "trace level [Debug|Info|Error]")
}

// setup initializes display and tracing and loads the configuration.
func setup(cmd *cobra.Command, args []string) error {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	var err error
	if conf, err = LoadConfig(*rootFlags.config); err != nil {
		return err
	}
	conf.Override(cmd.Flags())
	level := tracing.TraceLevelFromString(conf.Trace)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Infof("Trace level is %s", conf.Trace)
	return nil
}

// Execute runs the root command and reports errors.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
		return err
	}
	return nil
}
