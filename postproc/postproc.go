package postproc

import "fmt"

// PostProcessor is the capability-agnostic element of a chain. Concrete
// units additionally implement [FilePostProcessor] or [LinePostProcessor];
// Name identifies the unit in diagnostics.
type PostProcessor interface {
	Name() string
}

// FilePostProcessor transforms a whole file. It receives the path produced
// by the previous stage, may rename, move, or transform the file in place,
// and returns the path where the result now lives.
type FilePostProcessor interface {
	PostProcessor
	ProcessFile(path string) (string, error)
}

// Line is one line of a generated file together with its line ending
// ("\n", "\r\n", or "" for a final line without one).
type Line struct {
	Text   string
	Ending string
}

// IsZero reports whether the line is the zero pair. A line post-processor
// returns the zero pair to delete the line.
func (l Line) IsZero() bool { return l.Text == "" && l.Ending == "" }

// LinePostProcessor transforms one line at a time. Returning the zero
// [Line] deletes the line; returning an error aborts the node.
type LinePostProcessor interface {
	PostProcessor
	ProcessLine(line Line) (Line, error)
}

// Partition splits a chain into its file-level and line-level stages,
// preserving registration order within each. A chain element implementing
// neither capability is a construction error, reported before any rendering
// starts.
func Partition(chain []PostProcessor) (files []FilePostProcessor, lines []LinePostProcessor, err error) {
	for i, pp := range chain {
		switch p := pp.(type) {
		case FilePostProcessor:
			files = append(files, p)
		case LinePostProcessor:
			lines = append(lines, p)
		default:
			return nil, nil, fmt.Errorf("postproc: chain element %d (%s) implements neither FilePostProcessor nor LinePostProcessor", i, pp.Name())
		}
	}
	return files, lines, nil
}
