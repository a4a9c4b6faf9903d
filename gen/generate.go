package gen

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/merrows/stencil"
	"github.com/merrows/stencil/lang"
	"github.com/merrows/stencil/namespace"
	"github.com/merrows/stencil/postproc"
)

// Pipeline stage identifiers carried by generation errors.
const (
	StageRender   = "render"
	StageFilePost = "file-postprocess"
	StageLinePost = "line-postprocess"
	StageCommit   = "commit"
)

// Template names looked up per leaf node.
const (
	compositeTemplate = "composite.tmpl"
	serviceTemplate   = "service.tmpl"
)

type namedTemplate struct {
	name string
	text string
}

// Generator renders every leaf of a namespace tree through its template and
// post-processor chain. A Generator is built once per run; GenerateAll and
// GenerateNode must not be called concurrently.
type Generator struct {
	root *namespace.Node
	lctx *lang.Context

	templatesDir  string
	templateTexts []namedTemplate
	chain         []postproc.PostProcessor
	overwrite     bool
	dryRun        bool
	fileMode      fs.FileMode
	log           *zap.Logger

	tset    *template.Template
	filePPs []postproc.FilePostProcessor
	linePPs []postproc.LinePostProcessor

	// scope is the unique-name allocator of the node currently rendering.
	// Replaced at the start of every node.
	scope *NameScope
}

// New validates the configuration, partitions the post-processor chain, and
// parses the template set. Every configuration problem is reported here,
// before any rendering starts.
func New(root *namespace.Node, lctx *lang.Context, opts ...Option) (*Generator, error) {
	if root == nil {
		return nil, stencil.NewConfigError("Root", nil, "a namespace tree is required")
	}
	if lctx == nil {
		return nil, stencil.NewConfigError("LanguageContext", nil, "a language context is required")
	}
	g := &Generator{
		root: root,
		lctx: lctx,
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}

	files, lines, err := postproc.Partition(g.chain)
	if err != nil {
		return nil, stencil.NewConfigError("PostProcessors", nil, err.Error())
	}
	g.filePPs, g.linePPs = files, lines

	if err := g.parseTemplates(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Generator) parseTemplates() error {
	g.tset = template.New("stencil").Funcs(g.funcs())
	if g.templatesDir != "" {
		pattern := filepath.Join(g.templatesDir, "*.tmpl")
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return stencil.NewConfigError("TemplatesDir", g.templatesDir, err.Error())
		}
		if len(matches) == 0 && len(g.templateTexts) == 0 {
			return stencil.NewConfigError("TemplatesDir", g.templatesDir, "no *.tmpl files found")
		}
		if len(matches) > 0 {
			if _, err := g.tset.ParseFiles(matches...); err != nil {
				return stencil.NewConfigError("TemplatesDir", g.templatesDir, err.Error())
			}
		}
	}
	for _, t := range g.templateTexts {
		if _, err := g.tset.New(t.name).Parse(t.text); err != nil {
			return stencil.NewConfigError("TemplateText", t.name, err.Error())
		}
	}
	if g.tset.Lookup(compositeTemplate) == nil && g.tset.Lookup(serviceTemplate) == nil {
		return stencil.NewConfigError("Templates", nil,
			fmt.Sprintf("no %s or %s template defined", compositeTemplate, serviceTemplate))
	}
	return nil
}

// Root returns the namespace tree the generator was built over.
func (g *Generator) Root() *namespace.Node { return g.root }

// GenerateAll processes every leaf of the tree in deterministic traversal
// order and stops at the first failure. Files committed before the failure
// remain on disk. Callers that want to keep going across failures drive
// GenerateNode over Leaves themselves.
func (g *Generator) GenerateAll(ctx context.Context) error {
	leaves := g.root.Leaves()
	g.log.Debug("generation starting", zap.Int("leaves", len(leaves)))
	for _, leaf := range leaves {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.GenerateNode(ctx, leaf); err != nil {
			return err
		}
	}
	g.log.Debug("generation finished", zap.Int("leaves", len(leaves)))
	return nil
}

// GenerateNode runs the full pipeline for one leaf: render to a scratch
// file, thread the path through the file post-processors, rewrite through
// the line post-processors, and commit to the node's output path. The
// planned output path is authoritative for the overwrite check and for the
// final location regardless of where the file post-processors moved the
// intermediate file.
func (g *Generator) GenerateNode(ctx context.Context, node *namespace.Node) error {
	if !node.IsLeaf() {
		return stencil.NewGenerationError(node.FQN(), StageRender,
			"node is a namespace, not a type", nil)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	target := node.OutputPath()
	g.log.Debug("generating node", zap.String("node", node.FQN()), zap.String("output", target))

	scratch, err := g.render(node, target)
	if err != nil {
		return err
	}

	current := scratch
	for _, pp := range g.filePPs {
		next, err := pp.ProcessFile(current)
		if err != nil {
			os.Remove(current)
			return stencil.NewGenerationError(node.FQN(), StageFilePost,
				fmt.Sprintf("post-processor %s failed", pp.Name()), err)
		}
		current = next
	}

	if len(g.linePPs) > 0 {
		if err := g.rewriteLines(current); err != nil {
			os.Remove(current)
			return stencil.NewGenerationError(node.FQN(), StageLinePost, "line rewrite failed", err)
		}
	}

	return g.commit(node, current, target)
}

// render executes the node's template into a dot-prefixed scratch sibling of
// the planned output file and returns the scratch path.
func (g *Generator) render(node *namespace.Node, target string) (string, error) {
	name := compositeTemplate
	if node.Type().IsService() {
		name = serviceTemplate
	}
	tmpl := g.tset.Lookup(name)
	if tmpl == nil {
		return "", stencil.NewGenerationError(node.FQN(), StageRender,
			fmt.Sprintf("no template named %s", name), nil)
	}

	g.scope = NewNameScope()
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, node.Type()); err != nil {
		return "", stencil.NewGenerationError(node.FQN(), StageRender, "template execution failed", err)
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", stencil.NewGenerationError(node.FQN(), StageRender, "creating output directory", err)
	}
	scratch := filepath.Join(dir, "."+filepath.Base(target)+".tmp")
	if err := os.WriteFile(scratch, buf.Bytes(), 0o644); err != nil {
		return "", stencil.NewGenerationError(node.FQN(), StageRender, "writing scratch file", err)
	}
	return scratch, nil
}

// rewriteLines runs every line of the file through the line post-processors
// in order and atomically replaces the file with the result. A unit that
// returns the zero line deletes the line; the rest of the chain is skipped
// for it.
func (g *Generator) rewriteLines(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	var out strings.Builder
	out.Grow(len(src))
	for _, line := range splitLines(string(src)) {
		dropped := false
		for _, pp := range g.linePPs {
			line, err = pp.ProcessLine(line)
			if err != nil {
				return fmt.Errorf("post-processor %s: %w", pp.Name(), err)
			}
			if line.IsZero() {
				dropped = true
				break
			}
		}
		if !dropped {
			out.WriteString(line.Text)
			out.WriteString(line.Ending)
		}
	}

	tmp := filepath.Join(filepath.Dir(path), "."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, []byte(out.String()), info.Mode().Perm()); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// splitLines decomposes text into (line, ending) pairs preserving the exact
// ending of every line. A trailing fragment with no ending is kept with an
// empty ending; fully empty input yields no lines.
func splitLines(text string) []postproc.Line {
	var lines []postproc.Line
	for len(text) > 0 {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			lines = append(lines, postproc.Line{Text: text})
			break
		}
		ending := "\n"
		body := text[:i]
		if strings.HasSuffix(body, "\r") {
			body = body[:len(body)-1]
			ending = "\r\n"
		}
		lines = append(lines, postproc.Line{Text: body, Ending: ending})
		text = text[i+1:]
	}
	return lines
}

// commit installs the post-processed file at the planned output path under
// the overwrite, dry-run, and file-mode policy. On a denied overwrite the
// existing file is left untouched and the intermediate file is removed.
func (g *Generator) commit(node *namespace.Node, current, target string) error {
	if g.dryRun {
		g.log.Debug("dry run, discarding output", zap.String("node", node.FQN()))
		os.Remove(current)
		return nil
	}
	if _, err := os.Stat(target); err == nil && !g.overwrite {
		os.Remove(current)
		return stencil.NewGenerationError(node.FQN(), StageCommit, target, stencil.ErrOverwrite)
	}
	if current != target {
		if err := moveFile(current, target); err != nil {
			os.Remove(current)
			return stencil.NewGenerationError(node.FQN(), StageCommit, "installing output file", err)
		}
	}
	if g.fileMode != 0 {
		if err := os.Chmod(target, g.fileMode); err != nil {
			return stencil.NewGenerationError(node.FQN(), StageCommit, "applying file mode", err)
		}
	}
	g.log.Debug("committed", zap.String("node", node.FQN()), zap.String("output", target))
	return nil
}

// moveFile renames src to dst, falling back to copy-and-remove when the two
// live on different filesystems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	info, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(src)
}
