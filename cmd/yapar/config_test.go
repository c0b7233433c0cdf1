package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/yapar/lr"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

func Test_LoadConfig(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "yapar.toml")
	err := os.WriteFile(path, []byte(`
trace  = "Info"
accept = "completion"
pdf    = "out.pdf"

[render]
kernel_marker = "> "
font_size     = 12
`), 0600)
	assert.Nil(err)

	conf, err := LoadConfig(path)
	if !assert.Nil(err) {
		return
	}
	assert.Equal("Info", conf.Trace)
	assert.Equal("out.pdf", conf.PDF)
	assert.Equal("LR0.dot", conf.Dot)
	assert.Equal("> ", conf.Render.KernelMarker)
	assert.Equal(12, conf.Render.FontSize)
	assert.Equal("Helvetica", conf.Render.FontName)
	mode, err := conf.AcceptMode()
	assert.Nil(err)
	assert.Equal(lr.AcceptByCompletion, mode)
}

func Test_LoadConfigErrors(t *testing.T) {
	assert := assert.New(t)

	conf, err := LoadConfig("")
	assert.Nil(err)
	assert.Equal(DefaultConfig(), conf)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(err)

	conf.Accept = "sometimes"
	_, err = conf.AcceptMode()
	assert.Error(err)
}

func Test_ConfigOverride(t *testing.T) {
	assert := assert.New(t)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("dot", "LR0.dot", "")
	flags.String("pdf", "", "")
	flags.String("trace", "Error", "")
	assert.Nil(flags.Parse([]string{"--pdf", "x.pdf", "--trace", "Debug"}))

	conf := DefaultConfig()
	conf.Dot = "from-config.dot"
	conf.Override(flags)
	assert.Equal("x.pdf", conf.PDF)
	assert.Equal("Debug", conf.Trace)
	assert.Equal("from-config.dot", conf.Dot)
}
