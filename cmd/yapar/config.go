package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/yapar/lr"
	"github.com/npillmayer/yapar/render"
	"github.com/spf13/pflag"
)

// Config is the configuration of yapar, read from a TOML file:
//
//    trace  = "Info"
//    accept = "completion"
//    tokens = "Productions/tokens.txt"
//    dot    = "LR0.dot"
//
//    [render]
//    kernel_marker = "*** "
//    accept_color  = "lightgray"
//
// Command line flags override settings of the configuration file.
type Config struct {
	Trace  string         `toml:"trace"`  // trace level
	Accept string         `toml:"accept"` // accept detection, "scan" or "completion"
	Tokens string         `toml:"tokens"` // file with known tokens, one per line
	Dot    string         `toml:"dot"`    // output file for Graphviz
	PDF    string         `toml:"pdf"`    // output file for PDF, if any
	Render render.Options `toml:"render"`
}

// DefaultConfig returns the configuration used without a configuration file.
func DefaultConfig() Config {
	return Config{
		Trace:  "Error",
		Accept: "scan",
		Dot:    "LR0.dot",
		Render: render.DefaultOptions(),
	}
}

// LoadConfig reads a configuration file. Settings missing from the file keep
// their defaults. An empty path returns the default configuration.
func LoadConfig(path string) (Config, error) {
	conf := DefaultConfig()
	if path == "" {
		return conf, nil
	}
	md, err := toml.DecodeFile(path, &conf)
	if err != nil {
		return conf, fmt.Errorf("cannot read configuration %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		tracer().Infof("%s: unknown configuration key %s", path, key)
	}
	tracer().Debugf("configuration loaded from %s", path)
	return conf, nil
}

// Override sets configuration values from flags which have been set on the
// command line.
func (conf *Config) Override(flags *pflag.FlagSet) {
	for name, value := range map[string]*string{
		"trace":  &conf.Trace,
		"accept": &conf.Accept,
		"tokens": &conf.Tokens,
		"dot":    &conf.Dot,
		"pdf":    &conf.PDF,
	} {
		if f := flags.Lookup(name); f != nil && f.Changed {
			*value = f.Value.String()
		}
	}
}

// AcceptMode returns the mode for accept detection.
func (conf *Config) AcceptMode() (lr.AcceptMode, error) {
	switch strings.ToLower(conf.Accept) {
	case "", "scan":
		return lr.AcceptByScan, nil
	case "completion":
		return lr.AcceptByCompletion, nil
	}
	return lr.AcceptByScan, fmt.Errorf("unknown accept mode %q", conf.Accept)
}
