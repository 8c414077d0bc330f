package vss

import "errors"

// SkipBranch is returned by a WalkFunc to skip the children of the current container.
var SkipBranch = errors.New("skip this branch")

// WalkFunc is called for every node visited by Walk.
type WalkFunc func(n Node) error

// Walk traverses the subtree rooted at start depth-first in declared order,
// calling fn for each node before its children. Returning SkipBranch from fn
// skips the children of that node; any other error stops the walk and is
// returned.
func Walk(start Node, fn WalkFunc) error {
	return walk(start, fn)
}

func walk(n Node, fn WalkFunc) error {
	if err := fn(n); err != nil {
		if errors.Is(err, SkipBranch) {
			return nil
		}
		return err
	}

	for _, child := range childrenOf(n) {
		if err := walk(child, fn); err != nil {
			return err
		}
	}
	return nil
}

func childrenOf(n Node) []Node {
	switch c := n.(type) {
	case *Branch:
		return c.list
	case *Collection:
		return c.list
	case Container:
		return c.Children()
	default:
		return nil
	}
}

// Leaves returns the leaves below start in depth-first declared order.
func Leaves(start Node) []*Leaf {
	var out []*Leaf
	_ = Walk(start, func(n Node) error {
		if l, ok := n.(*Leaf); ok {
			out = append(out, l)
		}
		return nil
	})
	return out
}
