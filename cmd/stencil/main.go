// Command stencil generates source files from a resolved schema handed over
// by a front end: one output file per type, rendered through text templates
// and an optional post-processor chain.
package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/merrows/stencil/internal/logutil"
)

type cli struct {
	Config   kong.ConfigFlag `help:"Load defaults from a JSON, YAML, or TOML configuration file." short:"c"`
	LogLevel string          `help:"Log verbosity (debug, info, warn, error)." default:"info" env:"STENCIL_LOG_LEVEL"`

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Generate source files from a resolved schema."`
	Watch    WatchCmd    `cmd:"" help:"Regenerate whenever the schema or templates change."`
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("stencil"),
		kong.Description("Schema-driven source generator."),
		kong.UsageOnError(),
		kong.Configuration(configLoader, ".stencil.json", ".stencil.yaml", ".stencil.toml"),
	)

	logger, err := logutil.New(c.LogLevel)
	if err != nil {
		_, _ = os.Stderr.WriteString("invalid log level: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	ctx.Bind(logger)
	ctx.FatalIfErrorf(ctx.Run())
}

// configLoader picks the decoder from the config file's extension; anything
// not recognizably YAML or TOML is treated as JSON.
func configLoader(r io.Reader) (kong.Resolver, error) {
	if f, ok := r.(*os.File); ok {
		switch strings.ToLower(filepath.Ext(f.Name())) {
		case ".yaml", ".yml":
			return kongyaml.Loader(r)
		case ".toml":
			return kongtoml.Loader(r)
		}
	}
	return kong.JSON(r)
}
