package schema

import (
	"fmt"
	"strings"
)

// Version is the major/minor version of a composite type.
type Version struct {
	Major int `yaml:"major"`
	Minor int `yaml:"minor"`
}

// String returns the version in "major.minor" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// DataType is the resolved type of an attribute. The concrete
// implementations are [Primitive], [Array], [Void], and [*Composite].
type DataType interface {
	isDataType()
}

// Primitive is a scalar type such as uint8 or float64.
type Primitive struct {
	Name string // e.g. "uint8", "bool", "float32"
	Bits int
}

func (Primitive) isDataType() {}

// Void is unused padding between attributes.
type Void struct {
	Bits int
}

func (Void) isDataType() {}

// Array is a fixed- or variable-capacity sequence of an element type.
type Array struct {
	Element  DataType
	Capacity int
}

func (Array) isDataType() {}

// Attribute is one named, typed member of a composite type. Attribute order
// is the declaration order from the schema.
type Attribute struct {
	Name string
	Type DataType

	// BitOffset is the attribute's resolved offset within the serialized
	// representation, computed by the front end. Zero for front ends that
	// do not provide layout information.
	BitOffset int
}

// Composite is one resolved composite type. For services, Attributes is
// empty and the Request and Response sides carry the attribute lists.
type Composite struct {
	FullName   string
	Version    Version
	Attributes []Attribute
	Request    *Composite
	Response   *Composite
}

func (*Composite) isDataType() {}

// ShortName returns the last segment of the fully qualified name.
func (t *Composite) ShortName() string {
	if i := strings.LastIndexByte(t.FullName, '.'); i >= 0 {
		return t.FullName[i+1:]
	}
	return t.FullName
}

// FullNamespace returns the dotted namespace containing the type, without
// the type's own short name. Empty for a type in the root namespace.
func (t *Composite) FullNamespace() string {
	if i := strings.LastIndexByte(t.FullName, '.'); i >= 0 {
		return t.FullName[:i]
	}
	return ""
}

// Namespace returns the namespace as ordered path segments.
func (t *Composite) Namespace() []string {
	ns := t.FullNamespace()
	if ns == "" {
		return nil
	}
	return strings.Split(ns, ".")
}

// IsService reports whether the type is a service with distinct request and
// response sides.
func (t *Composite) IsService() bool {
	return t.Request != nil && t.Response != nil
}

// AllAttributes returns the type's attributes; for a service, the request
// attributes followed by the response attributes.
func (t *Composite) AllAttributes() []Attribute {
	if !t.IsService() {
		return t.Attributes
	}
	attrs := make([]Attribute, 0, len(t.Request.Attributes)+len(t.Response.Attributes))
	attrs = append(attrs, t.Request.Attributes...)
	attrs = append(attrs, t.Response.Attributes...)
	return attrs
}

// String returns the fully qualified name with its version, e.g.
// "uavcan.node.Heartbeat.1.0".
func (t *Composite) String() string {
	return t.FullName + "." + t.Version.String()
}
