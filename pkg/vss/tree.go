package vss

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Tree is one fully assembled signal tree. It is built once by NewTree and
// its shape never changes; only leaf values do. Trees are independent: there
// is no package-level instance.
type Tree struct {
	id     uuid.UUID
	root   *Branch
	byPath map[string]Node
	leaves []*Leaf
}

// NewTree validates def and builds the tree it describes, rooted at a branch
// named rootName. A malformed definition fails with ErrInvalidDefinition.
func NewTree(rootName string, def *BranchDef) (*Tree, error) {
	if err := Validate(rootName, def); err != nil {
		return nil, err
	}

	t := &Tree{
		id:     uuid.New(),
		byPath: make(map[string]Node),
	}
	t.root = t.buildBranch(rootName, nil, def)
	return t, nil
}

// Validate checks def without building a tree. It reports the first problem
// found as an ErrInvalidDefinition.
func Validate(rootName string, def *BranchDef) error {
	if def == nil {
		return fmt.Errorf("%w: nil root definition", ErrInvalidDefinition)
	}
	if err := validateName(rootName); err != nil {
		return fmt.Errorf("%w: root: %v", ErrInvalidDefinition, err)
	}
	return validateChildren("", def.Children)
}

// MustNewTree is like NewTree but panics on an invalid definition.
// It is intended for definitions fixed at build time.
func MustNewTree(rootName string, def *BranchDef) *Tree {
	t, err := NewTree(rootName, def)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Tree) buildBranch(name string, parent Container, d *BranchDef) *Branch {
	b := &Branch{description: d.Description}
	b.init(name, parent)
	t.byPath[b.path] = b

	for _, cd := range d.Children {
		b.add(t.buildChild(b, cd))
	}
	return b
}

func (t *Tree) buildCollection(name string, parent Container, d *CollectionDef) *Collection {
	c := &Collection{description: d.Description}
	c.init(name, parent)
	t.byPath[c.path] = c

	for _, slotName := range d.Slots {
		var slot Container
		switch tmpl := d.Slot.(type) {
		case *BranchDef:
			slot = t.buildBranch(slotName, c, tmpl)
		case *CollectionDef:
			slot = t.buildCollection(slotName, c, tmpl)
		}
		c.add(slot)
		c.slots = append(c.slots, slot)
	}
	return c
}

func (t *Tree) buildChild(parent Container, def ChildDef) Node {
	switch d := def.(type) {
	case *LeafDef:
		spec := d.Spec
		spec.Allowed = slices.Clone(d.Spec.Allowed)
		l := newLeaf(d.Name, parent, &spec)
		t.byPath[l.path] = l
		t.leaves = append(t.leaves, l)
		return l
	case *BranchDef:
		return t.buildBranch(d.Name, parent, d)
	case *CollectionDef:
		return t.buildCollection(d.Name, parent, d)
	default:
		// Rejected by validation.
		panic(fmt.Sprintf("vss: unsupported definition %T", def))
	}
}

// ApplyDefaults assigns the declared default to every leaf that has one.
// It returns the number of leaves assigned.
func (t *Tree) ApplyDefaults() int {
	n := 0
	for _, l := range t.leaves {
		if l.spec.Default == nil {
			continue
		}
		// Defaults are checked by NewTree.
		if err := l.SetValue(l.spec.Default); err == nil {
			n++
		}
	}
	return n
}

// ID returns the identifier assigned to this tree instance at construction.
func (t *Tree) ID() uuid.UUID {
	return t.id
}

// Root returns the root branch.
func (t *Tree) Root() *Branch {
	return t.root
}

// Leaves returns all leaves in depth-first declared order.
func (t *Tree) Leaves() []*Leaf {
	return slices.Clone(t.leaves)
}

// LeafCount returns the number of leaves.
func (t *Tree) LeafCount() int {
	return len(t.leaves)
}

// NodeCount returns the number of nodes including the root.
func (t *Tree) NodeCount() int {
	return len(t.byPath)
}

// Lookup returns the node at path. Both "/" paths ("Chassis/Axle/Row1") and
// dotted paths with or without the root name ("Vehicle.Chassis.Axle.Row1")
// are accepted. An empty path or the bare root name returns the root.
func (t *Tree) Lookup(path string) (Node, error) {
	key, ok := t.normalize(path)
	if ok {
		if n, found := t.byPath[key]; found {
			return n, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
}

// Leaf returns the leaf at path.
func (t *Tree) Leaf(path string) (*Leaf, error) {
	n, err := t.Lookup(path)
	if err != nil {
		return nil, err
	}
	l, ok := n.(*Leaf)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a leaf", ErrTypeMismatch, DottedPath(n))
	}
	return l, nil
}

func (t *Tree) normalize(path string) (string, bool) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", true
	}

	segs := strings.Split(strings.ReplaceAll(path, ".", PathSeparator), PathSeparator)
	if slices.Contains(segs, "") {
		return "", false
	}
	if segs[0] == t.root.name {
		if _, isChild := t.root.lookup(segs[0]); !isChild {
			segs = segs[1:]
		}
	}
	return strings.Join(segs, PathSeparator), true
}
