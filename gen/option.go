package gen

import (
	"io/fs"

	"go.uber.org/zap"

	"github.com/merrows/stencil"
	"github.com/merrows/stencil/postproc"
)

// Option configures a Generator.
type Option func(*Generator) error

// TemplatesDir parses every *.tmpl file in dir into the generator's template
// set. Template names are the file base names, e.g. "composite.tmpl" and
// "service.tmpl".
func TemplatesDir(dir string) Option {
	return func(g *Generator) error {
		if dir == "" {
			return stencil.NewConfigError("TemplatesDir", nil, "templates directory cannot be empty")
		}
		g.templatesDir = dir
		return nil
	}
}

// TemplateText adds a single named template from source text. Mainly useful
// for tests and embedders; TemplatesDir is the usual entry.
func TemplateText(name, text string) Option {
	return func(g *Generator) error {
		if name == "" {
			return stencil.NewConfigError("TemplateText", nil, "template name cannot be empty")
		}
		g.templateTexts = append(g.templateTexts, namedTemplate{name: name, text: text})
		return nil
	}
}

// PostProcessors appends units to the post-processor chain. The chain is
// validated and partitioned into its file-level and line-level stages at
// construction; an element with neither capability fails New.
func PostProcessors(pps ...postproc.PostProcessor) Option {
	return func(g *Generator) error {
		g.chain = append(g.chain, pps...)
		return nil
	}
}

// AllowOverwrite permits replacing existing output files. Without it,
// committing over an existing file fails that node with ErrOverwrite.
func AllowOverwrite(allow bool) Option {
	return func(g *Generator) error {
		g.overwrite = allow
		return nil
	}
}

// DryRun renders and post-processes every node but suppresses the final
// write.
func DryRun(dry bool) Option {
	return func(g *Generator) error {
		g.dryRun = dry
		return nil
	}
}

// FileMode sets the permission bits applied to every committed file. Zero
// leaves files with the mode they were created with.
func FileMode(mode fs.FileMode) Option {
	return func(g *Generator) error {
		g.fileMode = mode
		return nil
	}
}

// Logger sets the logger used for per-node progress. The default is a no-op
// logger.
func Logger(log *zap.Logger) Option {
	return func(g *Generator) error {
		if log == nil {
			return stencil.NewConfigError("Logger", nil, "logger cannot be nil")
		}
		g.log = log
		return nil
	}
}
