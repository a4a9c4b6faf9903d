package lang

import (
	"github.com/merrows/stencil"
)

// Context selects zero or one descriptor as the target language of a
// generation run while still exposing lookup of every other registered
// descriptor. A Context is immutable and safe for concurrent reads.
type Context struct {
	target    *Language
	extension string
}

// NewContext builds a Context from a target language name, an output file
// extension, or both. At least one must be supplied. When both are supplied
// they are validated independently; the extension is never inferred from the
// target and a mismatch between the two is not an error.
func NewContext(target, extension string) (*Context, error) {
	if target == "" && extension == "" {
		return nil, stencil.NewConfigError("TargetLanguage", nil,
			"a target language or an output extension is required")
	}
	c := &Context{extension: extension}
	if target != "" {
		l, err := Lookup(target)
		if err != nil {
			return nil, err
		}
		c.target = l
	}
	return c, nil
}

// Target returns the selected target descriptor, or nil when the Context was
// built from an extension alone.
func (c *Context) Target() *Language { return c.target }

// Extension returns the output file extension for this run. An explicitly
// supplied extension wins over the target language's default.
func (c *Context) Extension() string {
	if c.extension != "" {
		return c.extension
	}
	if c.target != nil {
		return c.target.Extension()
	}
	return ""
}

// Language returns the descriptor registered under name, whether or not it
// is the target. Templates use this for cross-language facts.
func (c *Context) Language(name string) (*Language, error) {
	return Lookup(name)
}

// ID strops token for the target language. Without a target the token is
// returned unchanged: a run selected by extension alone has no identifier
// grammar to enforce.
func (c *Context) ID(token string) string {
	if c.target == nil {
		return token
	}
	return c.target.Strop(token)
}

// IDFor strops token for the named language, which need not be the target.
func (c *Context) IDFor(language, token string) (string, error) {
	l, err := Lookup(language)
	if err != nil {
		return "", err
	}
	return l.Strop(token), nil
}
