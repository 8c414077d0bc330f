package inspect

import (
	"slices"
	"testing"

	"github.com/sdv-model/vss-go/pkg/vss"
)

func TestResolveName(t *testing.T) {
	tree := newTestTree(t)
	root := tree.Root()

	n, ok := ResolveName(root, "chassis")
	if !ok || n.Name() != "Chassis" {
		t.Errorf("ResolveName(chassis) = %v, %v", n, ok)
	}
	if _, ok := ResolveName(root, "Gearbox"); ok {
		t.Error("ResolveName(Gearbox) should fail")
	}
}

func TestResolveNameAmbiguous(t *testing.T) {
	leaf := vss.LeafSpec{Kind: vss.KindSensor, Type: vss.TypeBool}
	tree := vss.MustNewTree("Root", &vss.BranchDef{
		Children: []vss.ChildDef{
			&vss.LeafDef{Name: "Mode", Spec: leaf},
			&vss.LeafDef{Name: "MODE", Spec: leaf},
		},
	})

	if _, ok := ResolveName(tree.Root(), "mode"); ok {
		t.Error("ambiguous name should not resolve")
	}
	if n, ok := ResolveName(tree.Root(), "MODE"); ok {
		t.Errorf("ambiguous name resolved to %s", n.Path())
	}
}

func TestChildNames(t *testing.T) {
	tree := newTestTree(t)
	axle, err := tree.Lookup("Chassis/Axle")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}

	got := ChildNames(axle.(vss.Container))
	if !slices.Equal(got, []string{"Row1", "Row2"}) {
		t.Errorf("ChildNames = %v", got)
	}
}

func TestComplete(t *testing.T) {
	tree := newTestTree(t)

	tests := []struct {
		prefix string
		want   []string
	}{
		{"Cha", []string{"Chassis/"}},
		{"Chassis/Ax", []string{"Chassis/Axle/", "Chassis/AxleCount"}},
		{"Chassis/Axle/", []string{"Chassis/Axle/Row1/", "Chassis/Axle/Row2/"}},
		{"Body.Lights.Light", []string{"Body.Lights.LightSwitch"}},
		{"cabin/seat/row1/d", []string{"cabin/seat/row1/DriverSide/"}},
		{"Speed/", nil},
		{"Nope/", nil},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			got := Complete(tree, tt.prefix)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Complete(%q) = %v, want %v", tt.prefix, got, tt.want)
			}
		})
	}
}
