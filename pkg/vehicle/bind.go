package vehicle

import (
	"fmt"

	"github.com/sdv-model/vss-go/pkg/vss"
)

// binder resolves the nodes the generated types wrap. The first lookup
// failure is kept and every later lookup below a missing node returns nil,
// so a tree that does not match the generated schema yields a single error.
type binder struct {
	err error
}

func (bd *binder) fail(err error) {
	if bd.err == nil {
		bd.err = err
	}
}

func (bd *binder) leaf(b *vss.Branch, name string) *vss.Leaf {
	if b == nil {
		return nil
	}
	l, err := b.Leaf(name)
	if err != nil {
		bd.fail(err)
		return nil
	}
	return l
}

func (bd *binder) branch(b *vss.Branch, name string) *vss.Branch {
	if b == nil {
		return nil
	}
	c, err := b.Branch(name)
	if err != nil {
		bd.fail(err)
		return nil
	}
	return c
}

func (bd *binder) collection(b *vss.Branch, name string) *vss.Collection {
	if b == nil {
		return nil
	}
	c, err := b.Collection(name)
	if err != nil {
		bd.fail(err)
		return nil
	}
	return c
}

func (bd *binder) slotBranch(c *vss.Collection, name string) *vss.Branch {
	n, ok := bd.slot(c, name)
	if !ok {
		return nil
	}
	b, ok := n.(*vss.Branch)
	if !ok {
		bd.fail(fmt.Errorf("%w: %s is not a branch", vss.ErrTypeMismatch, vss.DottedPath(n)))
		return nil
	}
	return b
}

func (bd *binder) slotCollection(c *vss.Collection, name string) *vss.Collection {
	n, ok := bd.slot(c, name)
	if !ok {
		return nil
	}
	inner, ok := n.(*vss.Collection)
	if !ok {
		bd.fail(fmt.Errorf("%w: %s is not a collection", vss.ErrTypeMismatch, vss.DottedPath(n)))
		return nil
	}
	return inner
}

func (bd *binder) slot(c *vss.Collection, name string) (vss.Node, bool) {
	if c == nil {
		return nil, false
	}
	n, err := c.Child(name)
	if err != nil {
		bd.fail(err)
		return nil, false
	}
	return n, true
}

// slots checks that c has exactly n slots.
func (bd *binder) slots(c *vss.Collection, n int) bool {
	if c.Len() != n {
		bd.fail(fmt.Errorf("%w: %s has %d instances, want %d",
			vss.ErrTypeMismatch, vss.DottedPath(c), c.Len(), n))
		return false
	}
	return true
}
