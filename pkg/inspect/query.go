package inspect

import (
	"fmt"

	"github.com/ohler55/ojg/jp"

	"github.com/sdv-model/vss-go/pkg/log"
	"github.com/sdv-model/vss-go/pkg/vss"
)

// Query selects leaves with a JSONPath expression evaluated over the tree's
// structure, e.g. "$.Cabin.Seat.*.*.Heating" or "$..Speed". Branches and
// collections are objects keyed by child name; leaves are the terminals.
// The expression may omit the leading "$.". Matches are returned in
// declared order without duplicates.
func (i *Inspector) Query(expr string) ([]*vss.Leaf, error) {
	leaves, err := i.query(expr)
	i.metrics.query()

	event := log.Event{
		Timestamp: i.now(),
		TreeID:    i.tree.ID(),
		Source:    i.source,
		Operation: log.OpQuery,
		Path:      expr,
		Count:     len(leaves),
	}
	if err != nil {
		event.Error = &log.ErrorData{Kind: ErrorKind(err), Message: err.Error()}
	}
	i.journal.Log(event)
	return leaves, err
}

func (i *Inspector) query(expr string) ([]*vss.Leaf, error) {
	if expr == "" {
		return nil, ErrEmptyPath
	}
	if expr[0] != '$' {
		expr = "$." + expr
	}
	x, err := jp.ParseString(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid query %q: %v", ErrInvalidPath, expr, err)
	}

	matched := make(map[string]bool)
	for _, r := range x.Get(structureOf(i.tree.Root())) {
		if path, ok := r.(leafRef); ok {
			matched[string(path)] = true
		}
	}

	var out []*vss.Leaf
	for _, l := range i.tree.Leaves() {
		if matched[l.Path()] {
			out = append(out, l)
		}
	}
	return out, nil
}

// leafRef marks a leaf's path in the structure view, so that query results
// can be told apart from anything else the expression may select.
type leafRef string

// structureOf returns the nested-map view of the subtree below c that
// queries run against.
func structureOf(c vss.Container) map[string]any {
	m := make(map[string]any)
	for _, child := range c.Children() {
		switch v := child.(type) {
		case *vss.Leaf:
			m[v.Name()] = leafRef(v.Path())
		case vss.Container:
			m[v.Name()] = structureOf(v)
		}
	}
	return m
}
