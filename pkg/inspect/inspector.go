package inspect

import (
	"errors"
	"fmt"
	"time"

	"github.com/sdv-model/vss-go/pkg/log"
	"github.com/sdv-model/vss-go/pkg/vss"
)

// Inspector provides inspection and mutation capabilities for a tree.
// It is safe for concurrent use when the configured journal is.
type Inspector struct {
	tree    *vss.Tree
	journal log.Logger
	metrics *Metrics
	source  string
	now     func() time.Time
}

// Option configures an Inspector.
type Option func(*Inspector)

// WithJournal records every access in l.
func WithJournal(l log.Logger) Option {
	return func(i *Inspector) { i.journal = log.OrNoop(l) }
}

// WithMetrics counts every access in m.
func WithMetrics(m *Metrics) Option {
	return func(i *Inspector) { i.metrics = m }
}

// WithSource sets the source name recorded in journal events.
func WithSource(source string) Option {
	return func(i *Inspector) { i.source = source }
}

// NewInspector creates a new Inspector for the given tree.
func NewInspector(t *vss.Tree, opts ...Option) *Inspector {
	i := &Inspector{
		tree:    t,
		journal: log.NoopLogger{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Tree returns the underlying tree.
func (i *Inspector) Tree() *vss.Tree {
	return i.tree
}

// Resolve returns the node at path. An empty path is the root.
func (i *Inspector) Resolve(path string) (vss.Node, error) {
	p, err := ParsePath(path)
	if errors.Is(err, ErrEmptyPath) {
		return i.tree.Root(), nil
	}
	if err != nil {
		return nil, err
	}
	return p.Resolve(i.tree)
}

// Leaf returns the leaf at path.
func (i *Inspector) Leaf(path string) (*vss.Leaf, error) {
	n, err := i.Resolve(path)
	if err != nil {
		return nil, err
	}
	l, ok := n.(*vss.Leaf)
	if !ok {
		return nil, fmt.Errorf("%w: %s is a %s, not a leaf", vss.ErrTypeMismatch, vss.DottedPath(n), describeKind(n))
	}
	return l, nil
}

// Read returns the current value of the leaf at path.
func (i *Inspector) Read(path string) (any, *vss.Leaf, error) {
	l, err := i.Leaf(path)
	if err != nil {
		i.record(log.OpRead, path, nil, nil, err)
		return nil, nil, err
	}

	v, err := l.Value()
	i.metrics.read()
	i.record(log.OpRead, path, l, v, err)
	if err != nil {
		return nil, l, err
	}
	return v, l, nil
}

// Write assigns value to the leaf at path. Validation errors from the leaf
// are returned unchanged.
func (i *Inspector) Write(path string, value any) error {
	l, err := i.Leaf(path)
	if err == nil {
		err = l.SetValue(value)
	}

	i.metrics.write(err)
	if err != nil {
		i.record(log.OpWrite, path, l, nil, err)
		return err
	}
	v, _ := l.Value()
	i.record(log.OpWrite, path, l, v, nil)
	return nil
}

// WriteString parses text according to the leaf's data type and writes it.
func (i *Inspector) WriteString(path, text string) error {
	l, err := i.Leaf(path)
	if err != nil {
		i.metrics.write(err)
		i.record(log.OpWrite, path, nil, nil, err)
		return err
	}

	value, err := ParseValue(l.Type(), text)
	if err != nil {
		err = fmt.Errorf("%s: %w", l.Path(), err)
		i.metrics.write(err)
		i.record(log.OpWrite, path, l, nil, err)
		return err
	}
	return i.Write(l.Path(), value)
}

// Reset returns the leaf at path to the unset state.
func (i *Inspector) Reset(path string) error {
	l, err := i.Leaf(path)
	if err != nil {
		i.record(log.OpReset, path, nil, nil, err)
		return err
	}
	l.Reset()
	i.record(log.OpReset, path, l, nil, nil)
	return nil
}

// record journals one operation. The leaf's canonical path is used when the
// leaf was resolved.
func (i *Inspector) record(op log.Operation, path string, l *vss.Leaf, value any, err error) {
	event := log.Event{
		Timestamp: i.now(),
		TreeID:    i.tree.ID(),
		Source:    i.source,
		Operation: op,
		Path:      path,
		Value:     value,
	}
	if l != nil {
		event.Path = l.Path()
	}
	if err != nil {
		event.Error = &log.ErrorData{Kind: ErrorKind(err), Message: err.Error()}
	}
	i.journal.Log(event)
}

// NodeInfo describes a node for display.
type NodeInfo struct {
	Name        string
	Path        string
	Kind        string
	Description string

	// Leaf fields.
	DataType    string
	Unit        string
	Min         any
	Max         any
	Allowed     []string
	Default     any
	Deprecation string
	Value       any
	IsSet       bool

	Children []NodeInfo
}

// IsLeaf reports whether the node is a leaf.
func (n *NodeInfo) IsLeaf() bool {
	return n.DataType != ""
}

// InspectTree returns the structure and current values of the whole tree.
func (i *Inspector) InspectTree() *NodeInfo {
	info := inspectNode(i.tree.Root())
	return &info
}

// InspectNode returns the structure and current values below path.
func (i *Inspector) InspectNode(path string) (*NodeInfo, error) {
	n, err := i.Resolve(path)
	if err != nil {
		return nil, err
	}
	info := inspectNode(n)
	return &info, nil
}

func inspectNode(n vss.Node) NodeInfo {
	info := NodeInfo{
		Name: n.Name(),
		Path: n.Path(),
		Kind: describeKind(n),
	}

	switch v := n.(type) {
	case *vss.Leaf:
		spec := v.Spec()
		info.Description = spec.Description
		info.DataType = spec.Type.String()
		info.Unit = spec.Unit
		info.Min = spec.Min
		info.Max = spec.Max
		info.Allowed = spec.Allowed
		info.Default = spec.Default
		info.Deprecation = spec.Deprecation
		if value, err := v.Value(); err == nil {
			info.Value = value
			info.IsSet = true
		}
	case vss.Container:
		info.Description = v.Description()
		for _, child := range v.Children() {
			info.Children = append(info.Children, inspectNode(child))
		}
	}
	return info
}

// FormatTree formats a node tree for display.
func (i *Inspector) FormatTree(info *NodeInfo, formatter *Formatter) string {
	if formatter == nil {
		formatter = NewFormatter()
	}
	return formatter.FormatTree(info)
}
