package lang

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func TestStropperEscaping(t *testing.T) {
	s := Stropper{Suffix: "_", EscapePrefix: "ZX"}
	none := map[string]struct{}{}

	tests := []struct {
		raw  string
		want string
	}{
		{"foo", "foo"},
		{"&because", "ZX0026because"},
		{"I like python", "I_like_python"},
		{"tabs\tand  spaces", "tabs_and_spaces"},
		{"a-b", "aZX002Db"},
		{"snake_case", "snake_case"},
		{"123", "_123"},
		{"_1st", "__1st"},
		{"", "_"},
		{"trailing ", "trailing_"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Strop(tt.raw, none))
		})
	}
}

func TestStropperReservedSuffix(t *testing.T) {
	reserved := map[string]struct{}{"if": {}, "register": {}}

	t.Run("case sensitive", func(t *testing.T) {
		s := Stropper{Suffix: "_", EscapePrefix: "ZX", CaseSensitive: true}
		assert.Equal(t, "if_", s.Strop("if", reserved))
		assert.Equal(t, "If", s.Strop("If", reserved))
	})

	t.Run("case insensitive preserves case", func(t *testing.T) {
		s := Stropper{Suffix: "_", EscapePrefix: "ZX"}
		assert.Equal(t, "IF_", s.Strop("IF", reserved))
		assert.Equal(t, "Register_", s.Strop("Register", reserved))
	})
}

func TestStropperIsPure(t *testing.T) {
	s := Stropper{Suffix: "_", EscapePrefix: "ZX"}
	reserved := map[string]struct{}{"if": {}}
	inputs := []string{"if", "&because", "I like python", "", "42", "日本語"}
	for _, raw := range inputs {
		first := s.Strop(raw, reserved)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, s.Strop(raw, reserved))
		}
	}
}

func TestStropperAlwaysYieldsValidIdentifier(t *testing.T) {
	s := Stropper{Suffix: "_", EscapePrefix: "ZX"}
	none := map[string]struct{}{}
	inputs := []string{
		"", " ", "\t\n", "123", "_9", "&&&", "a b c", "日本語",
		"emoji 🚀 name", "-leading-dash", "mixed 4 Bag-of!chars",
	}
	for _, raw := range inputs {
		got := s.Strop(raw, none)
		assert.Regexp(t, identRe, got, "input %q", raw)
	}
}

func TestStropperCustomRepairRune(t *testing.T) {
	s := Stropper{Suffix: "_", EscapePrefix: "ZX", Repair: 'x'}
	none := map[string]struct{}{}
	assert.Equal(t, "x", s.Strop("", none))
	assert.Equal(t, "x7", s.Strop("7", none))
}

func TestLanguageStrop(t *testing.T) {
	tests := []struct {
		language string
		raw      string
		want     string
	}{
		{"c", "if", "if_"},
		{"c", "&because", "ZX0026because"},
		{"c", "INT", "INT_"},
		{"c", "NULL", "NULL_"},
		{"py", "I like python", "I_like_python"},
		{"py", "class", "class_"},
		{"py", "None", "None_"},
		{"py", "none", "none"},
		{"go", "func", "func_"},
		{"go", "Func", "Func"},
		{"js", "function", "function_"},
	}
	for _, tt := range tests {
		t.Run(tt.language+"/"+tt.raw, func(t *testing.T) {
			l, err := Lookup(tt.language)
			require.NoError(t, err)
			assert.Equal(t, tt.want, l.Strop(tt.raw))
		})
	}
}

func TestStropNeverReturnsReservedWord(t *testing.T) {
	for _, name := range Supported() {
		l, err := Lookup(name)
		require.NoError(t, err)
		for _, w := range l.Reserved() {
			assert.False(t, l.IsReserved(l.Strop(w)), "%s: %q stropped to a reserved word", name, w)
		}
	}
}
