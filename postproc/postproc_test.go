package postproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nameOnly struct{ name string }

func (n nameOnly) Name() string { return n.name }

func TestPartition(t *testing.T) {
	trim := TrimTrailingWhitespace{}
	limit := NewLimitEmptyLines(1)
	mode := NewSetFileMode(0o444)
	prog := NewExternalProgram("true")

	files, lines, err := Partition([]PostProcessor{trim, mode, limit, prog})
	require.NoError(t, err)

	// Registration order is preserved within each stage.
	require.Len(t, files, 2)
	assert.Equal(t, "set-file-mode", files[0].Name())
	assert.Equal(t, "run-program", files[1].Name())
	require.Len(t, lines, 2)
	assert.Equal(t, "trim-trailing-whitespace", lines[0].Name())
	assert.Equal(t, "limit-empty-lines", lines[1].Name())
}

func TestPartitionRejectsCapabilityLess(t *testing.T) {
	_, _, err := Partition([]PostProcessor{
		TrimTrailingWhitespace{},
		nameOnly{name: "bogus"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "element 1")
	assert.Contains(t, err.Error(), "bogus")
}

func TestPartitionEmptyChain(t *testing.T) {
	files, lines, err := Partition(nil)
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.Empty(t, lines)
}

func TestTrimTrailingWhitespace(t *testing.T) {
	tests := []struct {
		in   Line
		want Line
	}{
		{Line{Text: "int x;  ", Ending: "\n"}, Line{Text: "int x;", Ending: "\n"}},
		{Line{Text: "\ttabbed\t\t", Ending: "\r\n"}, Line{Text: "\ttabbed", Ending: "\r\n"}},
		{Line{Text: "   ", Ending: "\n"}, Line{Text: "", Ending: "\n"}},
		{Line{Text: "  indented stays", Ending: ""}, Line{Text: "  indented stays", Ending: ""}},
	}
	for _, tt := range tests {
		got, err := TrimTrailingWhitespace{}.ProcessLine(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestLimitEmptyLines(t *testing.T) {
	feed := func(p *LimitEmptyLines, texts []string) []string {
		var out []string
		for _, text := range texts {
			line, err := p.ProcessLine(Line{Text: text, Ending: "\n"})
			require.NoError(t, err)
			if line.IsZero() {
				continue
			}
			out = append(out, line.Text)
		}
		return out
	}

	t.Run("collapses runs", func(t *testing.T) {
		got := feed(NewLimitEmptyLines(1), []string{"a", "", "", "", "b", "", "c"})
		assert.Equal(t, []string{"a", "", "b", "", "c"}, got)
	})
	t.Run("zero permits no blanks", func(t *testing.T) {
		got := feed(NewLimitEmptyLines(0), []string{"a", "", "b"})
		assert.Equal(t, []string{"a", "b"}, got)
	})
	t.Run("whitespace-only counts as blank", func(t *testing.T) {
		got := feed(NewLimitEmptyLines(0), []string{"a", "   ", "\t", "b"})
		assert.Equal(t, []string{"a", "b"}, got)
	})
}

func TestLineIsZero(t *testing.T) {
	assert.True(t, Line{}.IsZero())
	assert.False(t, Line{Text: "x"}.IsZero())
	assert.False(t, Line{Ending: "\n"}.IsZero())
}
