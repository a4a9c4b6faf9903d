package gen

import (
	"fmt"
	"sort"
	"strings"
	"text/template"
	"unicode"

	"github.com/go-openapi/inflect"

	"github.com/merrows/stencil/schema"
)

// Token extracts the raw identifier token from a template argument. Accepted
// values are plain strings, attributes, composites (which contribute their
// short name), anything with a Name method, and stringers; everything else
// falls back to its default formatting.
func Token(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case schema.Attribute:
		return x.Name
	case *schema.Attribute:
		return x.Name
	case *schema.Composite:
		return x.ShortName()
	case interface{ Name() string }:
		return x.Name()
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}

// funcs builds the function namespace shared by every template of the
// generator. The unique_name function reads the scope of the node currently
// being rendered; the pipeline is single-threaded so the indirection through
// g is safe.
func (g *Generator) funcs() template.FuncMap {
	ctx := g.lctx
	return template.FuncMap{
		"id": func(v any) string {
			return ctx.ID(Token(v))
		},
		"id_for": func(language string, v any) (string, error) {
			return ctx.IDFor(language, Token(v))
		},
		"unique_name": func(tag string, v any, prefix, suffix string) string {
			return g.scope.Generate(tag, ctx.ID(Token(v)), prefix, suffix)
		},
		"full_reference_name":  FullReferenceName,
		"short_reference_name": ShortReferenceName,
		"imports":              Imports,
		"alignment_prefix":     AlignmentPrefix,
		"longest_id_length": func(attrs []schema.Attribute) int {
			longest := 0
			for _, a := range attrs {
				if n := len(ctx.ID(a.Name)); n > longest {
					longest = n
				}
			}
			return longest
		},
		"macrofy":    Macrofy,
		"camelize":   inflect.Camelize,
		"underscore": inflect.Underscore,
		"pluralize":  inflect.Pluralize,
	}
}

// FullReferenceName returns the globally unique identifier stem of a type:
// its fully qualified name with the namespace separators collapsed to
// underscores, followed by the version, e.g. "uavcan_node_Heartbeat_1_0".
func FullReferenceName(t *schema.Composite) string {
	return fmt.Sprintf("%s_%d_%d",
		strings.ReplaceAll(t.FullName, ".", "_"), t.Version.Major, t.Version.Minor)
}

// ShortReferenceName returns the namespace-local identifier stem of a type,
// e.g. "Heartbeat_1_0".
func ShortReferenceName(t *schema.Composite) string {
	return fmt.Sprintf("%s_%d_%d", t.ShortName(), t.Version.Major, t.Version.Minor)
}

// Imports returns the sorted set of namespaces referenced by the type's
// attributes, including array element types and both sides of a service.
// The type's own namespace is excluded.
func Imports(t *schema.Composite) []string {
	seen := make(map[string]struct{})
	collectImports(t, seen)
	delete(seen, t.FullNamespace())
	out := make([]string, 0, len(seen))
	for ns := range seen {
		out = append(out, ns)
	}
	sort.Strings(out)
	return out
}

func collectImports(t *schema.Composite, seen map[string]struct{}) {
	for _, a := range t.Attributes {
		collectTypeImports(a.Type, seen)
	}
	if t.Request != nil {
		collectImports(t.Request, seen)
	}
	if t.Response != nil {
		collectImports(t.Response, seen)
	}
}

func collectTypeImports(dt schema.DataType, seen map[string]struct{}) {
	switch x := dt.(type) {
	case *schema.Composite:
		seen[x.FullNamespace()] = struct{}{}
	case schema.Array:
		collectTypeImports(x.Element, seen)
	}
}

// AlignmentPrefix returns "aligned" when the bit offset falls on a byte
// boundary and "unaligned" otherwise. Templates use it to select
// serialization helpers.
func AlignmentPrefix(bitOffset int) string {
	if bitOffset%8 == 0 {
		return "aligned"
	}
	return "unaligned"
}

// Macrofy converts a token to the SCREAMING_SNAKE form used for include
// guards and macro names. Every rune that is not a letter or digit becomes a
// single underscore.
func Macrofy(token string) string {
	var b strings.Builder
	b.Grow(len(token))
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
