package schema

import (
	"fmt"

	"github.com/sdv-model/vss-go/pkg/version"
	"github.com/sdv-model/vss-go/pkg/vss"
)

// Validate checks the definition: schema version, node types, data types,
// instance declarations, and everything vss.Validate checks on the
// compiled tree definition.
func (d *Definition) Validate() error {
	if err := d.checkVersion(); err != nil {
		return err
	}
	def, err := d.Compile()
	if err != nil {
		return err
	}
	return vss.Validate(d.Root, def)
}

// checkVersion parses the declared version. An empty version is accepted.
func (d *Definition) checkVersion() error {
	if d.Version == "" {
		return nil
	}
	if _, err := version.Parse(d.Version); err != nil {
		return fmt.Errorf("%w: %v", vss.ErrInvalidDefinition, err)
	}
	return nil
}

// Compile converts the definition into a tree definition for vss.NewTree.
// Branches that declare instances become collections.
func (d *Definition) Compile() (*vss.BranchDef, error) {
	children, err := compileChildren("", d.Children)
	if err != nil {
		return nil, err
	}
	return &vss.BranchDef{
		Name:        d.Root,
		Description: d.Description,
		Children:    children,
	}, nil
}

// Build compiles and validates def and constructs a new tree from it.
func Build(def *Definition) (*vss.Tree, error) {
	if err := def.checkVersion(); err != nil {
		return nil, err
	}
	compiled, err := def.Compile()
	if err != nil {
		return nil, err
	}
	return vss.NewTree(def.Root, compiled)
}

// MustBuild is like Build but panics on error.
func MustBuild(def *Definition) *vss.Tree {
	t, err := Build(def)
	if err != nil {
		panic(err)
	}
	return t
}

// BuildDefault builds a new tree from the embedded vehicle schema.
func BuildDefault() (*vss.Tree, error) {
	def, err := Default()
	if err != nil {
		return nil, err
	}
	return Build(def)
}

func compileChildren(path string, nodes []RawNode) ([]vss.ChildDef, error) {
	out := make([]vss.ChildDef, 0, len(nodes))
	for i := range nodes {
		c, err := compileNode(joinPath(path, nodes[i].Name), &nodes[i])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func compileNode(path string, n *RawNode) (vss.ChildDef, error) {
	if n.IsBranch() {
		return compileBranch(path, n)
	}
	return compileLeaf(path, n)
}

func compileBranch(path string, n *RawNode) (vss.ChildDef, error) {
	if n.Datatype != "" {
		return nil, invalid(path, "branch declares datatype %q", n.Datatype)
	}
	children, err := compileChildren(path, n.Children)
	if err != nil {
		return nil, err
	}
	dims, err := ParseInstances(n.Instances)
	if err != nil {
		return nil, invalid(path, "%v", err)
	}

	branch := &vss.BranchDef{Name: n.Name, Description: n.Description, Children: children}
	if len(dims) == 0 {
		return branch, nil
	}

	// Innermost dimension wraps the branch template; the outermost becomes
	// the named collection.
	var slot vss.ContainerDef = branch
	for i := len(dims) - 1; i > 0; i-- {
		slot = &vss.CollectionDef{Description: n.Description, Slots: dims[i], Slot: slot}
	}
	return &vss.CollectionDef{
		Name:        n.Name,
		Description: n.Description,
		Slots:       dims[0],
		Slot:        slot,
	}, nil
}

func compileLeaf(path string, n *RawNode) (vss.ChildDef, error) {
	kind, err := vss.ParseKind(n.Type)
	if err != nil {
		return nil, invalid(path, "%v", err)
	}
	if n.Datatype == "" {
		return nil, invalid(path, "%s missing datatype", n.Type)
	}
	dt, err := vss.ParseDataType(n.Datatype)
	if err != nil {
		return nil, invalid(path, "%v", err)
	}
	if len(n.Children) > 0 {
		return nil, invalid(path, "%s cannot have children", n.Type)
	}
	if n.Instances != nil {
		return nil, invalid(path, "%s cannot declare instances", n.Type)
	}

	return &vss.LeafDef{
		Name: n.Name,
		Spec: vss.LeafSpec{
			Kind:        kind,
			Type:        dt,
			Allowed:     n.Allowed,
			Min:         n.Min,
			Max:         n.Max,
			Default:     n.Default,
			Unit:        n.Unit,
			Description: n.Description,
			Comment:     n.Comment,
			Deprecation: n.Deprecation,
		},
	}, nil
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + vss.PathSeparator + name
}

func invalid(path, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", vss.ErrInvalidDefinition, path, fmt.Sprintf(format, args...))
}
