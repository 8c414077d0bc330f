package vss

import (
	"errors"
	"math"
	"sync"
	"testing"
)

func TestLeafUnset(t *testing.T) {
	tree := newTestTree(t)
	l := mustLeaf(t, tree, "Speed")

	if l.IsSet() {
		t.Error("new leaf should be unset")
	}
	if _, err := l.Value(); !errors.Is(err, ErrUnsetValue) {
		t.Errorf("expected ErrUnsetValue, got %v", err)
	}
}

func TestLeafRoundTrip(t *testing.T) {
	tree := newTestTree(t)

	tests := []struct {
		path string
		in   any
		want any
	}{
		{"Speed", float32(88.5), float32(88.5)},
		{"Speed", 120, float32(120)},
		{"Speed", 3.25, float32(3.25)},
		{"PowerOptimizeLevel", uint8(7), uint8(7)},
		{"PowerOptimizeLevel", 10, uint8(10)},
		{"Chassis/Wheelbase", 2875, uint16(2875)},
		{"Body/Lights/LightSwitch", "AUTO", "AUTO"},
		{"Body/Lights/IsHighBeamSwitchOn", true, true},
		{"Cabin/Seat/Heating", -100, int8(-100)},
		{"Cabin/Seat/Heating", int64(55), int8(55)},
		{"Cabin/Seat/Massage", uint8(0), uint8(0)},
		{"Cabin/Seat/Position", 65535, uint16(65535)},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			l := mustLeaf(t, tree, tt.path)
			if err := l.SetValue(tt.in); err != nil {
				t.Fatalf("SetValue(%v) failed: %v", tt.in, err)
			}
			got, err := l.Value()
			if err != nil {
				t.Fatalf("Value failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Value() = %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestLeafRejections(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		value   any
		wantErr error
	}{
		{"string on float", "Speed", "fast", ErrTypeMismatch},
		{"bool on uint8", "PowerOptimizeLevel", true, ErrTypeMismatch},
		{"float on int8", "Cabin/Seat/Heating", 1.5, ErrTypeMismatch},
		{"nil", "Speed", nil, ErrTypeMismatch},
		{"int on string", "Body/Lights/LightSwitch", 3, ErrTypeMismatch},
		{"int on bool", "Body/Lights/IsHighBeamSwitchOn", 1, ErrTypeMismatch},
		{"scalar on array", "Cabin/Infotainment/SupportedMode", "OTHER", ErrTypeMismatch},
		{"wrong element type", "Cabin/Infotainment/SupportedMode", []any{"OTHER", 1}, ErrTypeMismatch},
		{"unknown enum", "Body/Lights/LightSwitch", "DISCO", ErrInvalidEnumeration},
		{"lowercase enum", "Body/Lights/LightSwitch", "auto", ErrInvalidEnumeration},
		{"unknown enum element", "Cabin/Infotainment/SupportedMode", []string{"OTHER", "WEBOS"}, ErrInvalidEnumeration},
		{"above max", "Cabin/Seat/Massage", 101, ErrOutOfRange},
		{"above max level", "PowerOptimizeLevel", uint8(11), ErrOutOfRange},
		{"below min", "Cabin/Seat/Heating", int16(-101), ErrOutOfRange},
		{"negative unsigned", "Chassis/Wheelbase", -1, ErrOutOfRange},
		{"too wide for uint8", "Chassis/Axle/Row1/WheelCount", 256, ErrOutOfRange},
		{"too wide for uint16", "Chassis/Wheelbase", uint64(math.MaxUint64), ErrOutOfRange},
		{"too wide for int8", "Cabin/HVAC/Station/Row1/Left/Temperature", 128, ErrOutOfRange},
		{"too large for float", "Speed", math.MaxFloat64, ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := newTestTree(t)
			l := mustLeaf(t, tree, tt.path)

			err := l.SetValue(tt.value)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SetValue(%v): expected %v, got %v", tt.value, tt.wantErr, err)
			}
			if l.IsSet() {
				t.Error("rejected write left the leaf set")
			}
		})
	}
}

func TestRejectedWriteKeepsPreviousValue(t *testing.T) {
	tree := newTestTree(t)
	l := mustLeaf(t, tree, "Body/Lights/LightSwitch")

	if err := l.SetValue("BEAM"); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}
	if err := l.SetValue("STROBE"); !errors.Is(err, ErrInvalidEnumeration) {
		t.Fatalf("expected ErrInvalidEnumeration, got %v", err)
	}

	got, err := l.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if got != "BEAM" {
		t.Errorf("Value() = %v, want BEAM", got)
	}
}

func TestRangeBoundsInclusive(t *testing.T) {
	tree := newTestTree(t)
	l := mustLeaf(t, tree, "Cabin/Seat/Heating")

	for _, v := range []int{-100, 0, 100} {
		if err := l.SetValue(v); err != nil {
			t.Errorf("SetValue(%d) failed: %v", v, err)
		}
	}
}

func TestRangeBoundsExact(t *testing.T) {
	def := &BranchDef{Children: []ChildDef{
		&LeafDef{Name: "Ratio", Spec: LeafSpec{Kind: KindSensor, Type: TypeFloat, Min: -0.1, Max: 0.1, Default: 0.1}},
		&LeafDef{Name: "Ratios", Spec: LeafSpec{Kind: KindSensor, Type: TypeFloatArray, Min: 0.3, Max: 0.7}},
		&LeafDef{Name: "Ticks", Spec: LeafSpec{Kind: KindSensor, Type: TypeInt64, Max: int64(1 << 53)}},
		&LeafDef{Name: "Counter", Spec: LeafSpec{Kind: KindSensor, Type: TypeUint64, Min: uint64(1<<63 + 1)}},
		&LeafDef{Name: "Level", Spec: LeafSpec{Kind: KindSensor, Type: TypeInt8, Min: -1.5, Max: 2.5}},
	}}
	tree, err := NewTree("Vehicle", def)
	if err != nil {
		t.Fatalf("NewTree rejected a default equal to max: %v", err)
	}
	if n := tree.ApplyDefaults(); n != 1 {
		t.Errorf("ApplyDefaults() = %d, want 1", n)
	}

	tests := []struct {
		path string
		v    any
		ok   bool
	}{
		{"Ratio", 0.1, true},
		{"Ratio", float32(0.1), true},
		{"Ratio", -0.1, true},
		{"Ratio", float32(-0.1), true},
		{"Ratio", 0.2, false},
		{"Ratio", -0.11, false},
		{"Ratios", []float64{0.3, 0.7}, true},
		{"Ratios", []float64{0.3, 0.71}, false},
		{"Ticks", int64(1 << 53), true},
		{"Ticks", int64(1<<53 + 1), false},
		{"Counter", uint64(1<<63 + 1), true},
		{"Counter", uint64(1 << 63), false},
		{"Level", -1, true},
		{"Level", -2, false},
		{"Level", 2, true},
		{"Level", 3, false},
	}
	for _, tt := range tests {
		err := mustLeaf(t, tree, tt.path).SetValue(tt.v)
		if tt.ok && err != nil {
			t.Errorf("%s.SetValue(%v) failed: %v", tt.path, tt.v, err)
		}
		if !tt.ok && !errors.Is(err, ErrOutOfRange) {
			t.Errorf("%s.SetValue(%v) = %v, want ErrOutOfRange", tt.path, tt.v, err)
		}
	}
}

func TestInvertedIntegerBounds(t *testing.T) {
	def := &BranchDef{Children: []ChildDef{
		&LeafDef{Name: "Ticks", Spec: LeafSpec{Kind: KindSensor, Type: TypeInt64, Min: int64(1<<53 + 1), Max: int64(1 << 53)}},
	}}
	if _, err := NewTree("Vehicle", def); !errors.Is(err, ErrInvalidDefinition) {
		t.Errorf("expected ErrInvalidDefinition, got %v", err)
	}
}

func TestSetValueErrorNamesPath(t *testing.T) {
	tree := newTestTree(t)
	l := mustLeaf(t, tree, "Cabin/Seat/Massage")

	err := l.SetValue(200)
	if err == nil {
		t.Fatal("expected error")
	}
	want := "Cabin/Seat/Massage: value out of range: 200 > 100"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestNaNIsOutOfRange(t *testing.T) {
	def := &BranchDef{Children: []ChildDef{
		&LeafDef{Name: "Ranged", Spec: LeafSpec{Kind: KindSensor, Type: TypeDouble, Min: 0.0, Max: 1.0}},
		&LeafDef{Name: "Free", Spec: LeafSpec{Kind: KindSensor, Type: TypeDouble}},
	}}
	tree := MustNewTree("Vehicle", def)

	if err := mustLeaf(t, tree, "Ranged").SetValue(math.NaN()); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if err := mustLeaf(t, tree, "Free").SetValue(math.NaN()); err != nil {
		t.Errorf("unconstrained double rejected NaN: %v", err)
	}
}

func TestArrayLeaf(t *testing.T) {
	tree := newTestTree(t)
	l := mustLeaf(t, tree, "Cabin/Infotainment/SupportedMode")

	in := []string{"ANDROID_AUTO", "APPLE_CARPLAY"}
	if err := l.SetValue(in); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}

	// The caller's slice is not shared with the leaf.
	in[0] = "WEBOS"
	got, err := ValueAs[[]string](l)
	if err != nil {
		t.Fatalf("ValueAs failed: %v", err)
	}
	if len(got) != 2 || got[0] != "ANDROID_AUTO" || got[1] != "APPLE_CARPLAY" {
		t.Errorf("Value() = %v", got)
	}

	// Nor is the returned slice.
	got[1] = "OTHER"
	again, _ := ValueAs[[]string](l)
	if again[1] != "APPLE_CARPLAY" {
		t.Error("returned slice aliases the leaf value")
	}

	t.Run("GenericSlice", func(t *testing.T) {
		if err := l.SetValue([]any{"MIRROR_LINK"}); err != nil {
			t.Fatalf("SetValue failed: %v", err)
		}
		got, _ := ValueAs[[]string](l)
		if len(got) != 1 || got[0] != "MIRROR_LINK" {
			t.Errorf("Value() = %v", got)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if err := l.SetValue([]string{}); err != nil {
			t.Fatalf("SetValue failed: %v", err)
		}
		got, _ := ValueAs[[]string](l)
		if len(got) != 0 {
			t.Errorf("Value() = %v, want empty", got)
		}
	})
}

func TestNumericArrayRange(t *testing.T) {
	def := &BranchDef{Children: []ChildDef{
		&LeafDef{Name: "Levels", Spec: LeafSpec{Kind: KindSensor, Type: TypeUint8Array, Min: 0, Max: 100}},
	}}
	tree := MustNewTree("Vehicle", def)
	l := mustLeaf(t, tree, "Levels")

	if err := l.SetValue([]int{0, 50, 100}); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}
	got, err := ValueAs[[]uint8](l)
	if err != nil {
		t.Fatalf("ValueAs failed: %v", err)
	}
	if len(got) != 3 || got[2] != 100 {
		t.Errorf("Value() = %v", got)
	}

	if err := l.SetValue([]int{0, 101}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestValueAs(t *testing.T) {
	tree := newTestTree(t)
	l := mustLeaf(t, tree, "PowerOptimizeLevel")

	if _, err := ValueAs[uint8](l); !errors.Is(err, ErrUnsetValue) {
		t.Errorf("expected ErrUnsetValue, got %v", err)
	}

	_ = l.SetValue(4)
	v, err := ValueAs[uint8](l)
	if err != nil || v != 4 {
		t.Errorf("ValueAs[uint8] = %v, %v", v, err)
	}
	if _, err := ValueAs[int](l); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("expected ErrTypeMismatch, got %v", err)
	}
}

func TestLeafReset(t *testing.T) {
	tree := newTestTree(t)
	l := mustLeaf(t, tree, "Speed")

	_ = l.SetValue(10)
	l.Reset()
	if l.IsSet() {
		t.Error("Reset did not clear the value")
	}
}

func TestLeafSpecAccessors(t *testing.T) {
	tree := newTestTree(t)
	l := mustLeaf(t, tree, "Body/Lights/LightSwitch")

	if l.Kind() != KindActuator {
		t.Errorf("Kind() = %v", l.Kind())
	}
	if l.Type() != TypeString {
		t.Errorf("Type() = %v", l.Type())
	}
	if !l.Spec().IsAllowed("OFF") || l.Spec().IsAllowed("off") {
		t.Error("IsAllowed mismatch")
	}
	if l.Spec().HasRange() {
		t.Error("enumeration leaf should not have a range")
	}
}

func TestConcurrentAccess(t *testing.T) {
	tree := newTestTree(t)
	speed := mustLeaf(t, tree, "Speed")
	massage := mustLeaf(t, tree, "Cabin/Seat/Massage")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = speed.SetValue(float32(n*j) / 10)
				_ = massage.SetValue(j)
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if v, err := speed.Value(); err == nil {
					if _, ok := v.(float32); !ok {
						t.Errorf("read %T from float leaf", v)
					}
				}
				_, _ = tree.Lookup("Cabin/Seat/Massage")
			}
		}()
	}
	wg.Wait()

	v, err := ValueAs[uint8](massage)
	if err != nil || v != 99 {
		t.Errorf("final massage value = %v, %v", v, err)
	}
}
