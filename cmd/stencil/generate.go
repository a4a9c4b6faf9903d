package main

import (
	"context"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/kballard/go-shellquote"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/merrows/stencil"
	"github.com/merrows/stencil/gen"
	"github.com/merrows/stencil/lang"
	"github.com/merrows/stencil/namespace"
	"github.com/merrows/stencil/postproc"
	"github.com/merrows/stencil/schema"
)

// GenerateCmd is the default command: load the resolved schema, build the
// namespace tree, and run the pipeline once per requested target language.
type GenerateCmd struct {
	Schema        string `arg:"" help:"Resolved schema YAML handed over by the front end." type:"existingfile"`
	RootNamespace string `arg:"" help:"Dotted root namespace every type must live under."`

	TargetLanguage  []string `short:"l" help:"Target language (repeatable; one output subtree per language)."`
	OutputExtension string   `short:"e" help:"Output file extension; overrides the target language default."`
	Outdir          string   `short:"O" default:"stencil_out" help:"Root of the generated output tree."`
	Templates       string   `required:"" type:"existingdir" help:"Directory holding the *.tmpl templates."`
	NoOverwrite     bool     `help:"Fail a node instead of replacing its existing output file."`
	DryRun          bool     `help:"Run the full pipeline but write nothing."`
	FileMode        string   `help:"Octal permission bits applied to generated files, e.g. 444."`

	PPTrimTrailingWhitespace bool     `name:"pp-trim-trailing-whitespace" help:"Strip trailing whitespace from every generated line."`
	PPMaxEmptylines          int      `name:"pp-max-emptylines" default:"-1" help:"Collapse runs of blank lines to at most N; negative disables."`
	PPRunProgram             string   `name:"pp-run-program" help:"Program run against each generated file (shell-quoted)."`
	PPRunProgramArg          []string `name:"pp-run-program-arg" help:"Extra argument appended to --pp-run-program (repeatable)."`
	PPNoCheck                bool     `name:"pp-no-check" help:"Tolerate a non-zero exit from --pp-run-program."`
}

// Run is called by Kong when the generate command is executed.
func (c *GenerateCmd) Run(logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return c.generate(ctx, logger)
}

func (c *GenerateCmd) generate(ctx context.Context, logger *zap.Logger) error {
	types, err := schema.Load(c.Schema)
	if err != nil {
		return err
	}
	logger.Debug("schema loaded", zap.String("path", c.Schema), zap.Int("types", len(types)))

	// No target language at all selects output by extension alone;
	// identifiers pass through unstropped.
	if len(c.TargetLanguage) == 0 {
		lctx, err := lang.NewContext("", c.OutputExtension)
		if err != nil {
			return err
		}
		return c.runOne(ctx, logger, types, lctx, c.Outdir)
	}
	if len(c.TargetLanguage) == 1 {
		lctx, err := lang.NewContext(c.TargetLanguage[0], c.OutputExtension)
		if err != nil {
			return err
		}
		return c.runOne(ctx, logger, types, lctx, c.Outdir)
	}

	// Several targets run concurrently, one output subtree per language.
	// Each run is internally sequential and the subtrees are disjoint.
	eg, gctx := errgroup.WithContext(ctx)
	for _, name := range c.TargetLanguage {
		eg.Go(func() error {
			lctx, err := lang.NewContext(name, c.OutputExtension)
			if err != nil {
				return err
			}
			return c.runOne(gctx, logger.With(zap.String("language", name)),
				types, lctx, filepath.Join(c.Outdir, name))
		})
	}
	return eg.Wait()
}

func (c *GenerateCmd) runOne(ctx context.Context, logger *zap.Logger,
	types []*schema.Composite, lctx *lang.Context, outDir string) error {

	root, err := namespace.Build(types, c.RootNamespace, outDir, lctx)
	if err != nil {
		return err
	}
	chain, err := c.chain()
	if err != nil {
		return err
	}
	opts := []gen.Option{
		gen.TemplatesDir(c.Templates),
		gen.PostProcessors(chain...),
		gen.AllowOverwrite(!c.NoOverwrite),
		gen.DryRun(c.DryRun),
		gen.Logger(logger),
	}
	if c.FileMode != "" {
		mode, err := strconv.ParseUint(c.FileMode, 8, 32)
		if err != nil {
			return stencil.NewConfigError("FileMode", c.FileMode, "not valid octal permission bits")
		}
		opts = append(opts, gen.FileMode(fs.FileMode(mode)))
	}
	g, err := gen.New(root, lctx, opts...)
	if err != nil {
		return err
	}
	return g.GenerateAll(ctx)
}

// chain assembles the post-processor chain from flags. A fresh chain per run
// keeps the blank-line counter of limit-empty-lines from leaking between
// concurrent language runs.
func (c *GenerateCmd) chain() ([]postproc.PostProcessor, error) {
	var pps []postproc.PostProcessor
	if c.PPTrimTrailingWhitespace {
		pps = append(pps, postproc.TrimTrailingWhitespace{})
	}
	if c.PPMaxEmptylines >= 0 {
		pps = append(pps, postproc.NewLimitEmptyLines(c.PPMaxEmptylines))
	}
	if c.PPRunProgram != "" {
		words, err := shellquote.Split(c.PPRunProgram)
		if err != nil {
			return nil, stencil.NewConfigError("PPRunProgram", c.PPRunProgram, err.Error())
		}
		words = append(words, c.PPRunProgramArg...)
		prog := postproc.NewExternalProgram(words...)
		if c.PPNoCheck {
			prog = prog.NoCheck()
		}
		pps = append(pps, prog)
	}
	return pps, nil
}
