package inspect_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sdv-model/vss-go/pkg/inspect"
	"github.com/sdv-model/vss-go/pkg/log"
	"github.com/sdv-model/vss-go/pkg/log/mocks"
	"github.com/sdv-model/vss-go/pkg/schema"
	"github.com/sdv-model/vss-go/pkg/vss"
)

func newInspector(t *testing.T, opts ...inspect.Option) *inspect.Inspector {
	t.Helper()
	tree, err := schema.BuildDefault()
	require.NoError(t, err)
	return inspect.NewInspector(tree, opts...)
}

func TestInspectorReadWrite(t *testing.T) {
	insp := newInspector(t)

	_, _, err := insp.Read("Speed")
	assert.ErrorIs(t, err, vss.ErrUnsetValue)

	require.NoError(t, insp.Write("Vehicle.Speed", 88.0))
	v, l, err := insp.Read("Speed")
	require.NoError(t, err)
	assert.Equal(t, float32(88), v)
	assert.Equal(t, "Speed", l.Path())

	require.NoError(t, insp.Write("Cabin/Seat/2/1/Heating", int64(-20)))
	v, _, err = insp.Read("Cabin/Seat/Row2/DriverSide/Heating")
	require.NoError(t, err)
	assert.Equal(t, int8(-20), v)
}

func TestInspectorWriteRejected(t *testing.T) {
	insp := newInspector(t)
	require.NoError(t, insp.Write("Body/Lights/LightSwitch", "AUTO"))

	err := insp.Write("Body/Lights/LightSwitch", "DISCO")
	assert.ErrorIs(t, err, vss.ErrInvalidEnumeration)

	v, _, err := insp.Read("Body/Lights/LightSwitch")
	require.NoError(t, err)
	assert.Equal(t, "AUTO", v)

	assert.ErrorIs(t, insp.Write("Cabin/Seat/Row1/Middle/Heating", int64(101)), vss.ErrOutOfRange)
	assert.ErrorIs(t, insp.Write("Speed", "fast"), vss.ErrTypeMismatch)
	assert.ErrorIs(t, insp.Write("Cabin/Seat", 1), vss.ErrTypeMismatch)
	assert.ErrorIs(t, insp.Write("Chassis/Axle/3/Wheel/1/Speed", 1.0), vss.ErrIndexOutOfRange)
}

func TestInspectorWriteString(t *testing.T) {
	insp := newInspector(t)

	tests := []struct {
		path string
		text string
		want any
	}{
		{"Chassis/Axle/Row1/Wheel/Left/TirePressure", "230", uint16(230)},
		{"Cabin/HVAC/Station/Row4/Right/Temperature", "-3", int8(-3)},
		{"Cabin/Infotainment/SmartphoneProjection/SupportedMode", "ANDROID_AUTO,OTHER", []string{"ANDROID_AUTO", "OTHER"}},
		{"Chassis/Axle/Row1/Wheel/Left/IsBrakesWorn", "true", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.NoError(t, insp.WriteString(tt.path, tt.text))
			v, _, err := insp.Read(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}

	err := insp.WriteString("Chassis/Axle/Row1/Wheel/Left/TirePressure", "-1")
	assert.ErrorIs(t, err, vss.ErrOutOfRange)

	err = insp.WriteString("Chassis/Axle/Row1/Wheel/Left/TirePressure", "high")
	assert.ErrorIs(t, err, inspect.ErrInvalidValue)
	assert.Contains(t, err.Error(), "Chassis/Axle/Row1/Wheel/Left/TirePressure")
}

func TestInspectorReset(t *testing.T) {
	insp := newInspector(t)
	require.NoError(t, insp.Write("Speed", 10.0))
	require.NoError(t, insp.Reset("Speed"))

	_, _, err := insp.Read("Speed")
	assert.ErrorIs(t, err, vss.ErrUnsetValue)
	assert.ErrorIs(t, insp.Reset("Chassis"), vss.ErrTypeMismatch)
}

func TestInspectorResolve(t *testing.T) {
	insp := newInspector(t)

	n, err := insp.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "Vehicle", n.Name())

	_, err = insp.Resolve("Cabin//Seat")
	assert.ErrorIs(t, err, inspect.ErrInvalidPath)
}

func TestInspectorJournal(t *testing.T) {
	journal := mocks.NewMockLogger(t)
	insp := newInspector(t, inspect.WithJournal(journal), inspect.WithSource("test"))
	treeID := insp.Tree().ID()

	journal.EXPECT().Log(mock.MatchedBy(func(e log.Event) bool {
		return e.Operation == log.OpWrite && e.Path == "Speed" && e.Value == float32(50) &&
			e.Source == "test" && e.TreeID == treeID && !e.Failed()
	})).Once()
	require.NoError(t, insp.Write("Vehicle.Speed", 50.0))

	journal.EXPECT().Log(mock.MatchedBy(func(e log.Event) bool {
		return e.Operation == log.OpWrite && e.Failed() && e.Error.Kind == "out_of_range" &&
			e.Path == "Cabin/HVAC/Station/Row1/Left/FanSpeed"
	})).Once()
	assert.Error(t, insp.Write("cabin/hvac/station/1/1/fanspeed", int64(150)))

	journal.EXPECT().Log(mock.MatchedBy(func(e log.Event) bool {
		return e.Operation == log.OpRead && e.Failed() && e.Error.Kind == "unknown_child" &&
			e.Path == "Chassis/Gearbox"
	})).Once()
	_, _, err := insp.Read("Chassis/Gearbox")
	assert.ErrorIs(t, err, vss.ErrUnknownChild)

	journal.EXPECT().Log(mock.MatchedBy(func(e log.Event) bool {
		return e.Operation == log.OpQuery && e.Count == 4 && e.Path == "$..TirePressure"
	})).Once()
	_, err = insp.Query("$..TirePressure")
	require.NoError(t, err)

	journal.EXPECT().Log(mock.MatchedBy(func(e log.Event) bool {
		return e.Operation == log.OpReset && e.Path == "Speed"
	})).Once()
	require.NoError(t, insp.Reset("Speed"))
}

func TestInspectorMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := inspect.NewMetrics(reg)
	insp := newInspector(t, inspect.WithMetrics(metrics))

	require.NoError(t, insp.Write("Speed", 1.0))
	require.NoError(t, insp.WriteString("Body/Lights/LightSwitch", "BEAM"))
	assert.Error(t, insp.Write("Body/Lights/LightSwitch", "DISCO"))
	assert.Error(t, insp.WriteString("Speed", "fast"))
	_, _, err := insp.Read("Speed")
	require.NoError(t, err)
	_, err = insp.Query("$..Speed")
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Writes))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.WriteRejections.WithLabelValues("invalid_enumeration")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.WriteRejections.WithLabelValues("invalid_value")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Reads))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Queries))

	count, err := testutil.GatherAndCount(reg, "vss_writes_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestInspectNode(t *testing.T) {
	insp := newInspector(t)
	require.NoError(t, insp.Write("Cabin/HVAC/Station/Row1/Left/FanSpeed", uint64(40)))

	info, err := insp.InspectNode("Cabin/HVAC/Station/Row1/Left/FanSpeed")
	require.NoError(t, err)
	assert.True(t, info.IsLeaf())
	assert.Equal(t, "actuator", info.Kind)
	assert.Equal(t, "uint8", info.DataType)
	assert.Equal(t, "percent", info.Unit)
	assert.True(t, info.IsSet)
	assert.Equal(t, uint8(40), info.Value)

	info, err = insp.InspectNode("Cabin/HVAC/Station")
	require.NoError(t, err)
	assert.False(t, info.IsLeaf())
	assert.Equal(t, "collection", info.Kind)
	assert.Len(t, info.Children, 4)

	root := insp.InspectTree()
	assert.Equal(t, "Vehicle", root.Name)
	assert.Equal(t, "", root.Path)

	out := insp.FormatTree(info, nil)
	assert.Contains(t, out, "Station [4]")
	assert.Contains(t, out, "FanSpeed = 40 %")
}
