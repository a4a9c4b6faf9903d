package schema

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/merrows/stencil"
)

// document is the serialized form the schema front end hands over: a flat
// list of fully resolved types.
type document struct {
	Types []typeDoc `yaml:"types"`
}

type typeDoc struct {
	FullName   string    `yaml:"full_name"`
	Version    Version   `yaml:"version"`
	Attributes []attrDoc `yaml:"attributes"`
	Request    *sideDoc  `yaml:"request"`
	Response   *sideDoc  `yaml:"response"`
}

type sideDoc struct {
	Attributes []attrDoc `yaml:"attributes"`
}

type attrDoc struct {
	Name      string  `yaml:"name"`
	Type      typeRef `yaml:"type"`
	BitOffset int     `yaml:"bit_offset"`
}

// typeRef is a tagged union: exactly one of Primitive, Void, Array, or
// Composite is set.
type typeRef struct {
	Primitive string    `yaml:"primitive"`
	Bits      int       `yaml:"bits"`
	Void      int       `yaml:"void"`
	Array     *arrayRef `yaml:"array"`
	Composite string    `yaml:"composite"`
	Version   *Version  `yaml:"version"`
}

type arrayRef struct {
	Capacity int     `yaml:"capacity"`
	Element  typeRef `yaml:"element"`
}

// Load reads a resolved type list from the file at path.
func Load(path string) ([]*Composite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a resolved type list from r. Decoding is structural only;
// semantic validation is the front end's responsibility.
func Decode(r io.Reader) ([]*Composite, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("schema: decode: %w", err)
	}

	// First pass: create one shell per declared type so composite
	// references can resolve regardless of declaration order.
	byKey := make(map[string]*Composite, len(doc.Types))
	types := make([]*Composite, 0, len(doc.Types))
	for _, td := range doc.Types {
		key := td.FullName + "." + td.Version.String()
		if _, ok := byKey[key]; ok {
			return nil, stencil.NewStructureError(td.FullName, "",
				fmt.Sprintf("type %s declared twice", key))
		}
		t := &Composite{FullName: td.FullName, Version: td.Version}
		byKey[key] = t
		types = append(types, t)
	}

	// Second pass: resolve attribute types.
	for i, td := range doc.Types {
		t := types[i]
		attrs, err := resolveAttrs(td.FullName, td.Attributes, byKey)
		if err != nil {
			return nil, err
		}
		t.Attributes = attrs
		if td.Request != nil || td.Response != nil {
			if td.Request == nil || td.Response == nil {
				return nil, stencil.NewStructureError(td.FullName, "",
					"a service needs both a request and a response side")
			}
			if len(td.Attributes) > 0 {
				return nil, stencil.NewStructureError(td.FullName, "",
					"a service carries attributes on its request/response sides only")
			}
			req, err := resolveAttrs(td.FullName, td.Request.Attributes, byKey)
			if err != nil {
				return nil, err
			}
			resp, err := resolveAttrs(td.FullName, td.Response.Attributes, byKey)
			if err != nil {
				return nil, err
			}
			t.Request = &Composite{FullName: td.FullName + ".Request", Version: td.Version, Attributes: req}
			t.Response = &Composite{FullName: td.FullName + ".Response", Version: td.Version, Attributes: resp}
		}
	}
	return types, nil
}

func resolveAttrs(owner string, docs []attrDoc, byKey map[string]*Composite) ([]Attribute, error) {
	attrs := make([]Attribute, 0, len(docs))
	for _, ad := range docs {
		dt, err := resolveType(owner, ad.Type, byKey)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, Attribute{Name: ad.Name, Type: dt, BitOffset: ad.BitOffset})
	}
	return attrs, nil
}

func resolveType(owner string, ref typeRef, byKey map[string]*Composite) (DataType, error) {
	switch {
	case ref.Primitive != "":
		return Primitive{Name: ref.Primitive, Bits: ref.Bits}, nil
	case ref.Void > 0:
		return Void{Bits: ref.Void}, nil
	case ref.Array != nil:
		elem, err := resolveType(owner, ref.Array.Element, byKey)
		if err != nil {
			return nil, err
		}
		return Array{Element: elem, Capacity: ref.Array.Capacity}, nil
	case ref.Composite != "":
		if ref.Version == nil {
			return nil, stencil.NewStructureError(owner, "",
				fmt.Sprintf("composite reference %s is missing a version", ref.Composite))
		}
		key := ref.Composite + "." + ref.Version.String()
		t, ok := byKey[key]
		if !ok {
			return nil, stencil.NewStructureError(owner, "",
				fmt.Sprintf("composite reference %s is not declared in this document", key))
		}
		return t, nil
	}
	return nil, stencil.NewStructureError(owner, "", "attribute type reference is empty")
}
