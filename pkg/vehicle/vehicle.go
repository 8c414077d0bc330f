// Package vehicle is the typed façade over the default vehicle signal tree.
//
// Every branch of the embedded schema has a struct type whose fields are the
// branch's leaves, sub-branches, and collections, so signals are addressed
// as v.Cabin.Seat.Row1.DriverSide.Heating instead of by path string. Leaves
// with allowed values get a string type with one constant per value and a
// typed setter.
//
// The façade holds no state of its own. Every field points into the
// underlying *vss.Tree, and values set through either are visible through
// both.
package vehicle

//go:generate go run ../../cmd/vss-gen -output vehicle_gen.go

import (
	"github.com/sdv-model/vss-go/pkg/schema"
	"github.com/sdv-model/vss-go/pkg/vss"
)

// New builds a new tree from the embedded schema and binds it.
func New() (*Vehicle, error) {
	t, err := schema.BuildDefault()
	if err != nil {
		return nil, err
	}
	return Bind(t)
}

// MustNew is like New but panics on error.
func MustNew() *Vehicle {
	v, err := New()
	if err != nil {
		panic(err)
	}
	return v
}

// Bind wraps an existing tree. The tree must have the shape of the schema
// the package was generated from; extra nodes are ignored.
func Bind(t *vss.Tree) (*Vehicle, error) {
	bd := &binder{}
	v := newVehicle(bd, t)
	if bd.err != nil {
		return nil, bd.err
	}
	return v, nil
}

// Tree returns the underlying tree.
func (v *Vehicle) Tree() *vss.Tree {
	return v.tree
}
