package schema

import (
	"github.com/sdv-model/vss-go/pkg/vss"
)

// Describe reconstructs a definition from a live tree. Collections are
// collapsed back into instance declarations, so Describe followed by Build
// yields a tree with the same fingerprint.
func Describe(t *vss.Tree, ver string) *Definition {
	root := t.Root()
	return &Definition{
		Version:     ver,
		Root:        root.Name(),
		Description: root.Description(),
		Children:    describeChildren(root.Children()),
	}
}

func describeChildren(nodes []vss.Node) []RawNode {
	out := make([]RawNode, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, describeNode(n))
	}
	return out
}

func describeNode(n vss.Node) RawNode {
	switch n := n.(type) {
	case *vss.Leaf:
		return describeLeaf(n)
	case *vss.Branch:
		return RawNode{
			Name:        n.Name(),
			Type:        TypeBranch,
			Description: n.Description(),
			Children:    describeChildren(n.Children()),
		}
	case *vss.Collection:
		var dims []Dimension
		var slot vss.Container = n
		for {
			c, ok := slot.(*vss.Collection)
			if !ok {
				break
			}
			dims = append(dims, Dimension(c.SlotNames()))
			slot = c.Slots()[0]
		}
		return RawNode{
			Name:        n.Name(),
			Type:        TypeBranch,
			Instances:   FormatInstances(dims),
			Description: n.Description(),
			Children:    describeChildren(slot.Children()),
		}
	default:
		return RawNode{Name: n.Name()}
	}
}

func describeLeaf(l *vss.Leaf) RawNode {
	spec := l.Spec()
	return RawNode{
		Name:        l.Name(),
		Type:        spec.Kind.String(),
		Datatype:    spec.Type.String(),
		Unit:        spec.Unit,
		Allowed:     append([]string(nil), spec.Allowed...),
		Min:         spec.Min,
		Max:         spec.Max,
		Default:     spec.Default,
		Description: spec.Description,
		Comment:     spec.Comment,
		Deprecation: spec.Deprecation,
	}
}
