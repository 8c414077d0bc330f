package vss

import (
	"fmt"
	"slices"
)

// Collection is a container whose children are a fixed list of N named slots
// (e.g. Left/Right or Row1..Row4). Slots are addressable by name and by a
// 1-based index; both return the same instance.
//
// A slot is a Branch, or a nested Collection when the repeated hardware has
// more than one dimension (e.g. HVAC stations by row and side).
type Collection struct {
	node
	members

	description string
	slots       []Container
}

// Description returns the schema description of the collection.
func (c *Collection) Description() string {
	return c.description
}

// Child returns the slot with the given name.
func (c *Collection) Child(name string) (Node, error) {
	n, ok := c.lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s", ErrUnknownChild, name, DottedPath(c))
	}
	return n, nil
}

// Children returns the slots in declared order.
func (c *Collection) Children() []Node {
	return slices.Clone(c.list)
}

// Len returns the fixed number of slots.
func (c *Collection) Len() int {
	return len(c.slots)
}

// Element returns the slot at the 1-based index.
// It fails with ErrIndexOutOfRange unless 1 <= index <= Len().
func (c *Collection) Element(index int) (Container, error) {
	if index < 1 || index > len(c.slots) {
		return nil, fmt.Errorf("%w: index %d is out of range [1, %d] in %s",
			ErrIndexOutOfRange, index, len(c.slots), DottedPath(c))
	}
	return c.slots[index-1], nil
}

// Row is Element under the name used by row-indexed collections (Row1..RowN).
func (c *Collection) Row(index int) (Container, error) {
	return c.Element(index)
}

// Slots returns the slots in index order.
func (c *Collection) Slots() []Container {
	return slices.Clone(c.slots)
}

// SlotNames returns the slot names in index order.
func (c *Collection) SlotNames() []string {
	names := make([]string, len(c.slots))
	for i, s := range c.slots {
		names[i] = s.Name()
	}
	return names
}
