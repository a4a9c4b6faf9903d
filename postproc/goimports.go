package postproc

import (
	"fmt"
	"os"

	"golang.org/x/tools/imports"
)

// GoImports formats a generated Go source file in place: gofmt-style
// formatting plus removal of unused and insertion of missing imports.
// Only useful when the target language is Go.
type GoImports struct{}

// Name implements PostProcessor.
func (GoImports) Name() string { return "goimports" }

// ProcessFile implements FilePostProcessor.
func (GoImports) ProcessFile(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return path, err
	}
	formatted, err := imports.Process(path, src, nil)
	if err != nil {
		return path, fmt.Errorf("postproc: format %s: %w", path, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return path, err
	}
	if err := os.WriteFile(path, formatted, info.Mode().Perm()); err != nil {
		return path, err
	}
	return path, nil
}
