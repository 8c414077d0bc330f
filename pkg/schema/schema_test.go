package schema_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdv-model/vss-go/pkg/schema"
	"github.com/sdv-model/vss-go/pkg/vss"
)

const axleSchema = `
version: "3.0"
root: Vehicle
description: High-level vehicle data.
children:
  - name: Speed
    type: sensor
    datatype: float
    unit: km/h
    description: Vehicle speed.
  - name: Chassis
    type: branch
    children:
      - name: Axle
        type: branch
        instances: "Row[1,2]"
        children:
          - name: WheelCount
            type: attribute
            datatype: uint8
            default: 2
          - name: Wheel
            type: branch
            instances: [Left, Right]
            children:
              - name: Speed
                type: sensor
                datatype: float
  - name: Lights
    type: branch
    children:
      - name: LightSwitch
        type: actuator
        datatype: string
        allowed: [OFF, POSITION, AUTO]
      - name: Intensity
        type: actuator
        datatype: uint8
        min: 0
        max: 100
        unit: percent
`

func TestParse(t *testing.T) {
	def, err := schema.Parse([]byte(axleSchema))
	require.NoError(t, err)

	assert.Equal(t, "3.0", def.Version)
	assert.Equal(t, "Vehicle", def.Root)
	require.Len(t, def.Children, 3)

	speed := def.Children[0]
	assert.Equal(t, "Speed", speed.Name)
	assert.Equal(t, schema.TypeSensor, speed.Type)
	assert.Equal(t, "float", speed.Datatype)
	assert.Equal(t, "km/h", speed.Unit)
	assert.False(t, speed.IsBranch())

	axle := def.Children[1].Children[0]
	assert.True(t, axle.IsBranch())
	assert.Equal(t, "Row[1,2]", axle.Instances)

	// YAML 1.1 boolean spellings stay strings in allowed lists.
	lights := def.Children[2]
	assert.Equal(t, []string{"OFF", "POSITION", "AUTO"}, lights.Children[0].Allowed)
	assert.Equal(t, 0, lights.Children[1].Min)
	assert.Equal(t, 100, lights.Children[1].Max)

	assert.Equal(t, 1+2*(1+2)+2, def.Leaves())
}

func TestParse_Errors(t *testing.T) {
	_, err := schema.Parse([]byte("root: [unclosed"))
	assert.Error(t, err)

	_, err = schema.Parse([]byte("version: \"3.0\"\nchildren: []\n"))
	assert.ErrorContains(t, err, "missing root")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(axleSchema), 0o644))

	def, err := schema.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Vehicle", def.Root)

	_, err = schema.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	def, err := schema.Parse([]byte(axleSchema))
	require.NoError(t, err)
	require.NoError(t, def.Validate())

	tree, err := schema.Build(def)
	require.NoError(t, err)
	assert.Equal(t, "Vehicle", tree.Root().Name())
	assert.Equal(t, "High-level vehicle data.", tree.Root().Description())
	assert.Equal(t, def.Leaves(), tree.LeafCount())

	n, err := tree.Lookup("Chassis/Axle/Row2/Wheel/Right/Speed")
	require.NoError(t, err)
	leaf, ok := n.(*vss.Leaf)
	require.True(t, ok)
	assert.Equal(t, vss.KindSensor, leaf.Kind())
	assert.Equal(t, vss.TypeFloat, leaf.Type())

	axle, err := tree.Lookup("Chassis/Axle")
	require.NoError(t, err)
	coll, ok := axle.(*vss.Collection)
	require.True(t, ok, "instanced branch should build a collection")
	assert.Equal(t, []string{"Row1", "Row2"}, coll.SlotNames())

	intensity, err := tree.Leaf("Lights/Intensity")
	require.NoError(t, err)
	assert.ErrorIs(t, intensity.SetValue(101), vss.ErrOutOfRange)

	wheelCount, err := tree.Leaf("Chassis/Axle/Row1/WheelCount")
	require.NoError(t, err)
	assert.False(t, wheelCount.IsSet())
	assert.Equal(t, 2, tree.ApplyDefaults())
	v, err := vss.ValueAs[uint8](wheelCount)
	require.NoError(t, err)
	assert.Equal(t, uint8(2), v)
}

func TestBuild_NestedInstances(t *testing.T) {
	def, err := schema.Parse([]byte(`
root: Vehicle
children:
  - name: Station
    type: branch
    instances: ["Row[1,4]", [Left, Right]]
    children:
      - name: Temperature
        type: actuator
        datatype: int8
`))
	require.NoError(t, err)

	tree, err := schema.Build(def)
	require.NoError(t, err)
	assert.Equal(t, 8, tree.LeafCount())

	_, err = tree.Leaf("Station/Row4/Left/Temperature")
	require.NoError(t, err)

	station, err := tree.Root().Collection("Station")
	require.NoError(t, err)
	row, err := station.Row(2)
	require.NoError(t, err)
	sides, ok := row.(*vss.Collection)
	require.True(t, ok)
	assert.Equal(t, []string{"Left", "Right"}, sides.SlotNames())
}

func TestBuild_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad version", "version: three\nroot: Vehicle\nchildren: []"},
		{"unknown type", "root: Vehicle\nchildren:\n  - {name: A, type: signal, datatype: uint8}"},
		{"missing datatype", "root: Vehicle\nchildren:\n  - {name: A, type: sensor}"},
		{"unknown datatype", "root: Vehicle\nchildren:\n  - {name: A, type: sensor, datatype: int128}"},
		{"branch with datatype", "root: Vehicle\nchildren:\n  - {name: A, type: branch, datatype: uint8}"},
		{"leaf with instances", "root: Vehicle\nchildren:\n  - {name: A, type: sensor, datatype: uint8, instances: [L, R]}"},
		{"bad range", "root: Vehicle\nchildren:\n  - {name: A, type: branch, instances: \"Row[2,1]\"}"},
		{"duplicate child", "root: Vehicle\nchildren:\n  - {name: A, type: sensor, datatype: bool}\n  - {name: A, type: sensor, datatype: bool}"},
		{"min above max", "root: Vehicle\nchildren:\n  - {name: A, type: sensor, datatype: uint8, min: 5, max: 1}"},
		{"default out of range", "root: Vehicle\nchildren:\n  - {name: A, type: attribute, datatype: uint8, max: 1, default: 2}"},
		{"range on string", "root: Vehicle\nchildren:\n  - {name: A, type: sensor, datatype: string, max: 1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := schema.Parse([]byte(tt.yaml))
			require.NoError(t, err)

			err = def.Validate()
			assert.True(t, errors.Is(err, vss.ErrInvalidDefinition), "Validate: got %v", err)

			_, err = schema.Build(def)
			assert.ErrorIs(t, err, vss.ErrInvalidDefinition)
		})
	}
}

func TestMustBuild_Panics(t *testing.T) {
	def := &schema.Definition{Root: "Vehicle", Children: []schema.RawNode{{Name: "A", Type: "sensor"}}}
	assert.Panics(t, func() { schema.MustBuild(def) })
}
