package main

import (
	"fmt"
	"strings"

	"github.com/sdv-model/vss-go/pkg/schema"
	"github.com/sdv-model/vss-go/pkg/vss"
)

// reservedMembers are promoted from *vss.Branch and *vss.Collection, or
// defined by hand in the vehicle package. Generated fields and methods must
// not shadow them.
var reservedMembers = map[string]bool{
	"Branch": true, "Child": true, "Children": true, "Collection": true,
	"Description": true, "Element": true, "Leaf": true,
	"Len": true, "Name": true, "Parent": true, "Path": true, "Row": true,
	"SlotNames": true, "Slots": true, "Tree": true,
}

// fileData holds everything rendered into one generated file.
type fileData struct {
	Package   string
	Version   string
	Root      *branchType
	Decls     []decl
	LeafCount int
}

// decl is one generated type with its constructor and methods.
type decl struct {
	Branch     *branchType
	Collection *collectionType
}

type branchType struct {
	Name        string
	Path        string
	Description string
	IsRoot      bool
	Fields      []fieldData
	Enums       []*enumType
}

type fieldData struct {
	Name string
	Type string
	Init string
}

type collectionType struct {
	Name     string
	Path     string
	Accessor string
	Elem     string
	Slots    []fieldData
}

type enumType struct {
	Type   string
	Owner  string
	Field  string
	Path   string
	Array  bool
	Values []enumValue
}

type enumValue struct {
	Const string
	Value string
}

// buildModel walks a tree built from def and derives the generated types.
// Slot names never appear in type names, so every instance of a collection
// shares the type generated from its first slot.
func buildModel(def *schema.Definition, pkg string) (*fileData, error) {
	tree, err := schema.Build(def)
	if err != nil {
		return nil, err
	}

	m := &modeler{names: make(map[string]string)}
	rootName := tree.Root().Name()
	root, err := m.branch(tree.Root(), rootName, "", rootName, true)
	if err != nil {
		return nil, err
	}

	return &fileData{
		Package:   pkg,
		Version:   def.Version,
		Root:      root,
		Decls:     m.decls,
		LeafCount: tree.LeafCount(),
	}, nil
}

type modeler struct {
	decls []decl
	names map[string]string // Go type name -> VSS path, for collision checks
}

func (m *modeler) claim(name, path string) error {
	if prev, ok := m.names[name]; ok {
		return fmt.Errorf("type name %s generated for both %s and %s", name, prev, path)
	}
	m.names[name] = path
	return nil
}

// branch models b as the Go type name. Types generated for its children are
// named childPrefix followed by the child name.
func (m *modeler) branch(b *vss.Branch, name, childPrefix, vssPath string, isRoot bool) (*branchType, error) {
	if err := m.claim(name, vssPath); err != nil {
		return nil, err
	}

	bt := &branchType{
		Name:        name,
		Path:        vssPath,
		Description: b.Description(),
		IsRoot:      isRoot,
	}
	// Reserve the slot before recursing so types appear in pre-order.
	m.decls = append(m.decls, decl{Branch: bt})

	members := make(map[string]bool)

	for _, child := range b.Children() {
		fname := child.Name()
		if reservedMembers[fname] {
			return nil, fmt.Errorf("%s.%s: child name %s is reserved", vssPath, fname, fname)
		}
		members[fname] = true
		childPath := vssPath + "." + fname

		switch c := child.(type) {
		case *vss.Leaf:
			bt.Fields = append(bt.Fields, fieldData{
				Name: fname,
				Type: "*vss.Leaf",
				Init: fmt.Sprintf("bd.leaf(b, %q)", fname),
			})
			if len(c.Spec().Allowed) > 0 && c.Type().Elem() == vss.TypeString {
				e, err := m.enum(bt, c, childPrefix+fname, childPath)
				if err != nil {
					return nil, err
				}
				bt.Enums = append(bt.Enums, e)
			}
		case *vss.Branch:
			subName := childPrefix + fname
			sub, err := m.branch(c, subName, subName, childPath, false)
			if err != nil {
				return nil, err
			}
			bt.Fields = append(bt.Fields, fieldData{
				Name: fname,
				Type: "*" + sub.Name,
				Init: fmt.Sprintf("new%s(bd, bd.branch(b, %q))", sub.Name, fname),
			})
		case *vss.Collection:
			ct, err := m.collection(c, childPrefix+fname, childPrefix+fname+"Collection", childPath)
			if err != nil {
				return nil, err
			}
			bt.Fields = append(bt.Fields, fieldData{
				Name: fname,
				Type: "*" + ct.Name,
				Init: fmt.Sprintf("new%s(bd, bd.collection(b, %q))", ct.Name, fname),
			})
		}
	}

	for _, e := range bt.Enums {
		for _, method := range []string{"Set" + e.Field, e.Field + "Value"} {
			if members[method] || reservedMembers[method] {
				return nil, fmt.Errorf("%s: method %s collides with a child", vssPath, method)
			}
		}
	}
	return bt, nil
}

// collection models c as the Go type name. base is the type name of the
// slot template branch; nested collections are named after the prefix of
// the enclosing slot names (Row1..Row4 gives <base>Row).
func (m *modeler) collection(c *vss.Collection, base, name, vssPath string) (*collectionType, error) {
	if err := m.claim(name, vssPath); err != nil {
		return nil, err
	}

	ct := &collectionType{
		Name:     name,
		Path:     vssPath,
		Accessor: accessorFor(c.SlotNames()),
	}
	m.decls = append(m.decls, decl{Collection: ct})

	for _, s := range c.SlotNames() {
		if reservedMembers[s] {
			return nil, fmt.Errorf("%s: slot name %s is reserved", vssPath, s)
		}
	}

	var initFmt string
	switch first := c.Slots()[0].(type) {
	case *vss.Branch:
		// The template type is named after the collection, not its first slot.
		bt, err := m.branch(first, base, base, vssPath, false)
		if err != nil {
			return nil, err
		}
		ct.Elem = bt.Name
		initFmt = "new%s(bd, bd.slotBranch(c, %q))"
	case *vss.Collection:
		inner, err := m.collection(first, base, base+slotPrefix(c.SlotNames()), vssPath)
		if err != nil {
			return nil, err
		}
		ct.Elem = inner.Name
		initFmt = "new%s(bd, bd.slotCollection(c, %q))"
	}

	for _, s := range c.SlotNames() {
		ct.Slots = append(ct.Slots, fieldData{
			Name: s,
			Type: "*" + ct.Elem,
			Init: fmt.Sprintf(initFmt, ct.Elem, s),
		})
	}
	return ct, nil
}

func (m *modeler) enum(owner *branchType, l *vss.Leaf, typeName, vssPath string) (*enumType, error) {
	if err := m.claim(typeName, vssPath); err != nil {
		return nil, err
	}
	e := &enumType{
		Type:  typeName,
		Owner: owner.Name,
		Field: l.Name(),
		Path:  vssPath,
		Array: l.Type().IsArray(),
	}
	seen := make(map[string]string)
	for _, v := range l.Spec().Allowed {
		constName := typeName + enumValueSuffix(v)
		if prev, ok := seen[constName]; ok {
			return nil, fmt.Errorf("%s: allowed values %q and %q both map to %s", vssPath, prev, v, constName)
		}
		seen[constName] = v
		e.Values = append(e.Values, enumValue{Const: constName, Value: v})
	}
	return e, nil
}

// accessorFor returns "Row" for numbered row slots and "Element" otherwise.
func accessorFor(slots []string) string {
	if slotPrefix(slots) == "Row" {
		return "Row"
	}
	return "Element"
}

// slotPrefix returns the common alphabetic prefix of numbered slot names
// (Row1..Row4 gives "Row"), or "Slot" when the names are not numbered.
func slotPrefix(slots []string) string {
	prefix := strings.TrimRight(slots[0], "0123456789")
	if prefix == "" || prefix == slots[0] {
		return "Slot"
	}
	for _, s := range slots {
		if strings.TrimRight(s, "0123456789") != prefix {
			return "Slot"
		}
	}
	return prefix
}
