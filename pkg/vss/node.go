package vss

import "strings"

// PathSeparator separates names in a node path.
const PathSeparator = "/"

// Node is implemented by every element of the tree.
type Node interface {
	// Name returns the local name of the node within its parent.
	Name() string

	// Parent returns the owning container, or nil for the root.
	Parent() Container

	// Path returns the names from the root (exclusive) to the node joined by "/".
	// The root's path is empty.
	Path() string
}

// Container is a node that owns named children: a Branch or a Collection.
type Container interface {
	Node

	// Child returns the child with the given name, or ErrUnknownChild.
	Child(name string) (Node, error)

	// Children returns the children in declared order.
	Children() []Node

	// Description returns the schema description of the container.
	Description() string
}

// node holds the identity shared by all node types. The parent link is a
// plain back-reference; the parent owns the child, never the reverse.
type node struct {
	name   string
	parent Container
	path   string
}

func (n *node) init(name string, parent Container) {
	n.name = name
	n.parent = parent
	switch {
	case parent == nil:
		n.path = ""
	case parent.Path() == "":
		n.path = name
	default:
		n.path = parent.Path() + PathSeparator + name
	}
}

// Name returns the local name.
func (n *node) Name() string { return n.name }

// Parent returns the owning container.
func (n *node) Parent() Container { return n.parent }

// Path returns the "/"-joined path from the root.
func (n *node) Path() string { return n.path }

// Root returns the root of the tree containing n.
func Root(n Node) Node {
	for {
		p := n.Parent()
		if p == nil {
			return n
		}
		n = p
	}
}

// DottedPath returns the qualified VSS name of n: the root name followed by
// the path segments, joined by ".". For the root it returns the root name.
func DottedPath(n Node) string {
	root := Root(n).Name()
	if n.Path() == "" {
		return root
	}
	return root + "." + strings.ReplaceAll(n.Path(), PathSeparator, ".")
}

// Depth returns the number of ancestors of n.
func Depth(n Node) int {
	d := 0
	for p := n.Parent(); p != nil; p = p.Parent() {
		d++
	}
	return d
}
