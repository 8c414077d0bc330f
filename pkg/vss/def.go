package vss

import (
	"fmt"
	"unicode"
)

// ChildDef declares one child of a branch: a *LeafDef, *BranchDef or *CollectionDef.
type ChildDef interface {
	// DefName returns the declared child name.
	DefName() string
}

// ContainerDef is a ChildDef that can serve as a collection slot template:
// a *BranchDef or a nested *CollectionDef.
type ContainerDef interface {
	ChildDef
	containerDef()
}

// LeafDef declares a leaf.
type LeafDef struct {
	Name string
	Spec LeafSpec
}

// BranchDef declares a branch and its children in order.
type BranchDef struct {
	Name        string
	Description string
	Children    []ChildDef
}

// CollectionDef declares a collection of named slots. Every slot is
// instantiated from the same template; the template's own name is replaced
// by the slot name.
type CollectionDef struct {
	Name        string
	Description string
	Slots       []string
	Slot        ContainerDef
}

// DefName returns the leaf name.
func (d *LeafDef) DefName() string { return d.Name }

// DefName returns the branch name.
func (d *BranchDef) DefName() string { return d.Name }

// DefName returns the collection name.
func (d *CollectionDef) DefName() string { return d.Name }

func (*BranchDef) containerDef()     {}
func (*CollectionDef) containerDef() {}

// validateName checks that name is an identifier usable as a path segment.
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("empty name")
	}
	for i, r := range name {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case unicode.IsDigit(r) && i > 0:
		default:
			return fmt.Errorf("invalid name %q", name)
		}
	}
	return nil
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + PathSeparator + name
}

func invalid(path string, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidDefinition, path, fmt.Sprintf(format, args...))
}

func validateChildren(path string, children []ChildDef) error {
	seen := make(map[string]bool, len(children))
	for _, c := range children {
		if c == nil {
			return invalid(path, "nil child definition")
		}
		name := c.DefName()
		childPath := joinPath(path, name)
		if err := validateName(name); err != nil {
			return invalid(childPath, "%v", err)
		}
		if seen[name] {
			return invalid(childPath, "duplicate child name")
		}
		seen[name] = true

		if err := validateChild(childPath, c); err != nil {
			return err
		}
	}
	return nil
}

func validateChild(path string, c ChildDef) error {
	switch d := c.(type) {
	case *LeafDef:
		if err := d.Spec.validate(); err != nil {
			return invalid(path, "%v", err)
		}
		return nil
	case *BranchDef:
		return validateChildren(path, d.Children)
	case *CollectionDef:
		return validateCollection(path, d)
	default:
		return invalid(path, "unsupported definition %T", c)
	}
}

func validateCollection(path string, d *CollectionDef) error {
	if len(d.Slots) == 0 {
		return invalid(path, "collection declares no slots")
	}
	seen := make(map[string]bool, len(d.Slots))
	for _, s := range d.Slots {
		if err := validateName(s); err != nil {
			return invalid(joinPath(path, s), "%v", err)
		}
		if seen[s] {
			return invalid(joinPath(path, s), "duplicate slot name")
		}
		seen[s] = true
	}

	switch tmpl := d.Slot.(type) {
	case *BranchDef:
		return validateChildren(joinPath(path, d.Slots[0]), tmpl.Children)
	case *CollectionDef:
		return validateCollection(joinPath(path, d.Slots[0]), tmpl)
	default:
		return invalid(path, "collection has no slot template")
	}
}
