package inspect

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sdv-model/vss-go/pkg/vss"
)

// resolveSegment returns the child of c named by seg.
func resolveSegment(c vss.Container, seg string) (vss.Node, error) {
	if coll, ok := c.(*vss.Collection); ok {
		if index, ok := parseIndex(seg); ok {
			return coll.Element(index)
		}
	}

	n, err := c.Child(seg)
	if err == nil {
		return n, nil
	}
	if match, ok := ResolveName(c, seg); ok {
		return match, nil
	}
	return nil, err
}

// ResolveName resolves a child name case-insensitively. It fails when no
// child or more than one child matches.
func ResolveName(c vss.Container, name string) (vss.Node, bool) {
	var found vss.Node
	for _, child := range c.Children() {
		if strings.EqualFold(child.Name(), name) {
			if found != nil {
				return nil, false
			}
			found = child
		}
	}
	return found, found != nil
}

// ChildNames returns the names of c's children in declared order.
func ChildNames(c vss.Container) []string {
	children := c.Children()
	names := make([]string, len(children))
	for i, child := range children {
		names[i] = child.Name()
	}
	return names
}

// Complete returns the paths extending prefix by one segment, for
// interactive completion. The last segment of prefix is matched
// case-insensitively as a name prefix. Completed branches and collections
// end in "/".
func Complete(t *vss.Tree, prefix string) []string {
	dir, partial := "", prefix
	if i := strings.LastIndexAny(prefix, "/."); i >= 0 {
		dir, partial = prefix[:i+1], prefix[i+1:]
	}

	var parent vss.Node = t.Root()
	if dir != "" {
		p, err := ParsePath(strings.TrimRight(dir, "/."))
		if err != nil {
			return nil
		}
		parent, err = p.Resolve(t)
		if err != nil {
			return nil
		}
	}
	c, ok := parent.(vss.Container)
	if !ok {
		return nil
	}

	var out []string
	for _, child := range c.Children() {
		name := child.Name()
		if !strings.HasPrefix(strings.ToLower(name), strings.ToLower(partial)) {
			continue
		}
		if _, isContainer := child.(vss.Container); isContainer {
			name += "/"
		}
		out = append(out, dir+name)
	}
	slices.Sort(out)
	return out
}

// describeKind returns the display kind of n.
func describeKind(n vss.Node) string {
	switch v := n.(type) {
	case *vss.Leaf:
		return v.Kind().String()
	case *vss.Collection:
		return "collection"
	case *vss.Branch:
		return "branch"
	default:
		return fmt.Sprintf("%T", n)
	}
}
