package vss

import (
	"fmt"
	"slices"
)

// members is the ordered, name-indexed child list of a container.
type members struct {
	list  []Node
	index map[string]int
}

func (m *members) add(n Node) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	m.index[n.Name()] = len(m.list)
	m.list = append(m.list, n)
}

func (m *members) lookup(name string) (Node, bool) {
	i, ok := m.index[name]
	if !ok {
		return nil, false
	}
	return m.list[i], true
}

// Branch is a container owning a fixed set of named children.
type Branch struct {
	node
	members

	description string
}

// Description returns the schema description of the branch.
func (b *Branch) Description() string {
	return b.description
}

// Child returns the child with the given name.
func (b *Branch) Child(name string) (Node, error) {
	n, ok := b.lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s", ErrUnknownChild, name, DottedPath(b))
	}
	return n, nil
}

// Children returns the children in declared order.
func (b *Branch) Children() []Node {
	return slices.Clone(b.list)
}

// Len returns the number of children.
func (b *Branch) Len() int {
	return len(b.list)
}

// Leaf returns the child leaf with the given name.
func (b *Branch) Leaf(name string) (*Leaf, error) {
	n, err := b.Child(name)
	if err != nil {
		return nil, err
	}
	l, ok := n.(*Leaf)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a leaf", ErrTypeMismatch, DottedPath(n))
	}
	return l, nil
}

// Branch returns the child branch with the given name.
func (b *Branch) Branch(name string) (*Branch, error) {
	n, err := b.Child(name)
	if err != nil {
		return nil, err
	}
	c, ok := n.(*Branch)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a branch", ErrTypeMismatch, DottedPath(n))
	}
	return c, nil
}

// Collection returns the child collection with the given name.
func (b *Branch) Collection(name string) (*Collection, error) {
	n, err := b.Child(name)
	if err != nil {
		return nil, err
	}
	c, ok := n.(*Collection)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a collection", ErrTypeMismatch, DottedPath(n))
	}
	return c, nil
}
