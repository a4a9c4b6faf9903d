package lang

import (
	"fmt"
	"strings"
	"unicode"
)

// Stropper turns arbitrary raw tokens into valid identifiers for one target
// language. It is a pure transform: the same input and reserved-word set
// always produce the same identifier. The escape encoding is not reversible;
// the contract is validity and determinism, not bijection.
type Stropper struct {
	// Suffix is appended when the token collides with a reserved word.
	// A single suffixing pass is guaranteed, not a fixed point.
	Suffix string

	// EscapePrefix precedes the 4-hex-digit code point emitted for every
	// character that is not valid in the identifier grammar. The caller is
	// responsible for choosing a prefix that itself consists of valid
	// identifier characters.
	EscapePrefix string

	// Repair is prepended when the escaped token is empty or starts with a
	// disallowed leading sequence. The zero value means '_'.
	Repair rune

	// CaseSensitive selects the reserved-word comparison rule. When false,
	// membership is tested on a lower-cased copy while the emitted
	// identifier preserves its original case.
	CaseSensitive bool
}

// Strop produces a valid identifier for raw that is not a member of
// reserved. Reserved sets for case-insensitive comparison are expected to be
// stored lower-cased, as [Language] does.
func (s Stropper) Strop(raw string, reserved map[string]struct{}) string {
	token := s.escape(raw)
	token = s.repairLeading(token)
	probe := token
	if !s.CaseSensitive {
		probe = strings.ToLower(token)
	}
	if _, ok := reserved[probe]; ok {
		token += s.Suffix
	}
	return token
}

// escape passes valid identifier characters through unchanged, collapses
// whitespace runs to a single underscore, and replaces every other character
// with EscapePrefix followed by its zero-padded hexadecimal code point.
func (s Stropper) escape(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	pendingSpace := false
	for _, r := range raw {
		if unicode.IsSpace(r) {
			pendingSpace = true
			continue
		}
		if pendingSpace {
			b.WriteByte('_')
			pendingSpace = false
		}
		if validIdentRune(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteString(s.EscapePrefix)
		fmt.Fprintf(&b, "%04X", r)
	}
	if pendingSpace {
		b.WriteByte('_')
	}
	return b.String()
}

// repairLeading guarantees the identifier does not start with a disallowed
// character: an empty token, a leading digit, or an underscore followed by a
// digit all get the repair character prepended.
func (s Stropper) repairLeading(token string) string {
	repair := s.Repair
	if repair == 0 {
		repair = '_'
	}
	switch {
	case token == "":
		return string(repair)
	case isDigit(token[0]):
		return string(repair) + token
	case token[0] == '_' && len(token) > 1 && isDigit(token[1]):
		return string(repair) + token
	}
	return token
}

func validIdentRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
