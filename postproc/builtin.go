package postproc

import (
	"io/fs"
	"os"
	"strings"
)

// TrimTrailingWhitespace strips trailing blank characters from every line
// before its line ending.
type TrimTrailingWhitespace struct{}

// Name implements PostProcessor.
func (TrimTrailingWhitespace) Name() string { return "trim-trailing-whitespace" }

// ProcessLine implements LinePostProcessor.
func (TrimTrailingWhitespace) ProcessLine(line Line) (Line, error) {
	line.Text = strings.TrimRight(line.Text, " \t")
	return line, nil
}

// LimitEmptyLines collapses runs of blank lines to at most Max. Max of zero
// permits no blank lines at all. The run counter carries across files until
// a non-blank line resets it; a fresh unit per run gives per-run counting.
type LimitEmptyLines struct {
	Max int

	run int
}

// NewLimitEmptyLines returns a unit permitting at most maximum consecutive
// blank lines.
func NewLimitEmptyLines(maximum int) *LimitEmptyLines {
	return &LimitEmptyLines{Max: maximum}
}

// Name implements PostProcessor.
func (*LimitEmptyLines) Name() string { return "limit-empty-lines" }

// ProcessLine implements LinePostProcessor.
func (p *LimitEmptyLines) ProcessLine(line Line) (Line, error) {
	if strings.TrimRight(line.Text, " \t") != "" {
		p.run = 0
		return line, nil
	}
	p.run++
	if p.run > p.Max {
		return Line{}, nil
	}
	return line, nil
}

// SetFileMode sets POSIX-style permission bits on the file. On platforms
// without POSIX permission semantics os.Chmod degrades to the nearest
// available approximation (the read-only attribute) rather than failing.
type SetFileMode struct {
	Mode fs.FileMode
}

// NewSetFileMode returns a unit applying mode to each generated file.
func NewSetFileMode(mode fs.FileMode) *SetFileMode {
	return &SetFileMode{Mode: mode}
}

// Name implements PostProcessor.
func (*SetFileMode) Name() string { return "set-file-mode" }

// ProcessFile implements FilePostProcessor.
func (p *SetFileMode) ProcessFile(path string) (string, error) {
	if err := os.Chmod(path, p.Mode); err != nil {
		return path, err
	}
	return path, nil
}
