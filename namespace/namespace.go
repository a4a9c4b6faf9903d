package namespace

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/merrows/stencil"
	"github.com/merrows/stencil/lang"
	"github.com/merrows/stencil/schema"
)

// Node is one element of the output tree: either an intermediate namespace
// (directory, no generated file) or a leaf type that generates exactly one
// output file.
type Node struct {
	name       string
	path       []string
	outputPath string
	typ        *schema.Composite
	children   []*Node
}

// Name returns the node's last path segment: a namespace segment for
// intermediate nodes, the versioned type stem (e.g. "Heartbeat_1_0") for
// leaves.
func (n *Node) Name() string { return n.name }

// Path returns the ordered path segments from the root namespace to this
// node.
func (n *Node) Path() []string { return n.path }

// FQN returns the dotted fully qualified name of the node.
func (n *Node) FQN() string { return strings.Join(n.path, ".") }

// Type returns the underlying composite type, or nil for an intermediate
// namespace node.
func (n *Node) Type() *schema.Composite { return n.typ }

// OutputPath returns the output file path for a leaf, or the directory path
// for an intermediate namespace.
func (n *Node) OutputPath() string { return n.outputPath }

// IsLeaf reports whether the node generates an output file.
func (n *Node) IsLeaf() bool { return n.typ != nil }

// Children returns the node's children in lexicographic name order.
func (n *Node) Children() []*Node { return n.children }

// Walk visits the node and every descendant in deterministic order,
// parents before children, siblings lexicographically.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Leaves returns every leaf under the node in deterministic traversal
// order. This is the generation order.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	n.Walk(func(c *Node) {
		if c.IsLeaf() {
			leaves = append(leaves, c)
		}
	})
	return leaves
}

// Find returns the leaf whose type has the given fully qualified name, or
// nil if no such leaf exists.
func (n *Node) Find(fullName string) *Node {
	var found *Node
	n.Walk(func(c *Node) {
		if found == nil && c.IsLeaf() && c.typ.FullName == fullName {
			found = c
		}
	})
	return found
}

// Build converts a flat type list into the output tree. root is the dotted
// root namespace every type must live under; outDir is the directory the
// root namespace maps to. The output path of each leaf is derived from its
// namespace segments, its short name and version, and the active extension
// of ctx.
func Build(types []*schema.Composite, root, outDir string, ctx *lang.Context) (*Node, error) {
	if root == "" {
		return nil, stencil.NewConfigError("RootNamespace", nil, "a root namespace is required")
	}
	rootSegs := strings.Split(root, ".")
	rootNode := &Node{
		name:       rootSegs[len(rootSegs)-1],
		path:       rootSegs,
		outputPath: filepath.Join(append([]string{outDir}, rootSegs...)...),
	}

	// One intermediate node per unique namespace prefix, created on demand
	// while walking each type's namespace path down from the root.
	byNamespace := map[string]*Node{root: rootNode}
	ext := ctx.Extension()
	byOutput := make(map[string]string, len(types))

	sorted := make([]*schema.Composite, len(types))
	copy(sorted, types)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].FullName < sorted[j].FullName })

	for _, t := range sorted {
		ns := t.FullNamespace()
		if ns != root && !strings.HasPrefix(ns, root+".") {
			return nil, stencil.NewStructureError(t.FullName, "",
				fmt.Sprintf("namespace %q is not under root namespace %q", ns, root))
		}
		parent, err := intermediateFor(ns, root, rootNode, byNamespace)
		if err != nil {
			return nil, err
		}
		// The versioned stem keeps two versions of one type distinct
		// siblings and doubles as the output file base name.
		stem := fmt.Sprintf("%s_%d_%d", t.ShortName(), t.Version.Major, t.Version.Minor)
		leaf := &Node{
			name: stem,
			path: append(append([]string{}, parent.path...), stem),
			typ:  t,
		}
		leaf.outputPath = filepath.Join(parent.outputPath, stem+ext)
		if prev, ok := byOutput[leaf.outputPath]; ok {
			return nil, stencil.NewStructureError(t.FullName, leaf.outputPath,
				fmt.Sprintf("output path collides with type %s", prev))
		}
		byOutput[leaf.outputPath] = t.String()
		if err := attach(parent, leaf); err != nil {
			return nil, err
		}
	}
	return rootNode, nil
}

// intermediateFor returns the node for the namespace ns, creating it and
// any missing ancestors between the root and ns.
func intermediateFor(ns, root string, rootNode *Node, byNamespace map[string]*Node) (*Node, error) {
	if n, ok := byNamespace[ns]; ok {
		return n, nil
	}
	segs := strings.Split(strings.TrimPrefix(ns, root+"."), ".")
	current := rootNode
	prefix := root
	for _, seg := range segs {
		prefix = prefix + "." + seg
		next, ok := byNamespace[prefix]
		if !ok {
			next = &Node{
				name:       seg,
				path:       append(append([]string{}, current.path...), seg),
				outputPath: filepath.Join(current.outputPath, seg),
			}
			if err := attach(current, next); err != nil {
				return nil, err
			}
			byNamespace[prefix] = next
		}
		current = next
	}
	return current, nil
}

// attach inserts child into parent.children keeping lexicographic order.
// Two siblings never share a name.
func attach(parent, child *Node) error {
	i := sort.Search(len(parent.children), func(i int) bool {
		return parent.children[i].name >= child.name
	})
	if i < len(parent.children) && parent.children[i].name == child.name {
		return stencil.NewStructureError(child.FQN(), "",
			fmt.Sprintf("sibling name %q already taken under %s", child.name, parent.FQN()))
	}
	parent.children = append(parent.children, nil)
	copy(parent.children[i+1:], parent.children[i:])
	parent.children[i] = child
	return nil
}
