package inspect

import (
	"strings"
	"testing"
)

func TestFormatterFormatTree(t *testing.T) {
	insp := NewInspector(newTestTree(t))
	if err := insp.Write("Chassis/Axle/Row1/Wheel/Left/Speed", 12.5); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	info, err := insp.InspectNode("Chassis/Axle/Row1/Wheel")
	if err != nil {
		t.Fatalf("InspectNode failed: %v", err)
	}

	f := NewFormatter()
	out := f.FormatTree(info)
	if !strings.HasPrefix(out, "Wheel [2]\n  Left\n") {
		t.Errorf("unexpected header:\n%s", out)
	}
	if !strings.Contains(out, "    Speed = 12.5 km/h\n") {
		t.Errorf("missing set leaf:\n%s", out)
	}
	if !strings.Contains(out, "    TirePressure = <unset>") {
		t.Errorf("missing unset leaf:\n%s", out)
	}

	f.ShowUnset = false
	out = f.FormatTree(info)
	if strings.Contains(out, "<unset>") {
		t.Errorf("unset leaves should be hidden:\n%s", out)
	}
}

func TestFormatterFormatLeaf(t *testing.T) {
	f := NewFormatter()

	tests := []struct {
		name string
		info NodeInfo
		want string
	}{
		{"unset", NodeInfo{Name: "Speed", DataType: "float"}, "Speed = <unset>"},
		{"percent", NodeInfo{Name: "FanSpeed", DataType: "uint8", Unit: "percent", Value: uint8(40), IsSet: true}, "FanSpeed = 40 %"},
		{"celsius", NodeInfo{Name: "Temperature", DataType: "int8", Unit: "celsius", Value: int8(-5), IsSet: true}, "Temperature = -5 °C"},
		{"string", NodeInfo{Name: "LightSwitch", DataType: "string", Value: "AUTO", IsSet: true}, `LightSwitch = "AUTO"`},
		{"array", NodeInfo{Name: "SupportedMode", DataType: "string[]", Value: []string{"OTHER"}, IsSet: true}, `SupportedMode = ["OTHER"]`},
		{"float", NodeInfo{Name: "Tilt", DataType: "float", Value: float32(0.1), IsSet: true}, "Tilt = 0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.FormatLeaf(&tt.info); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatterMetadata(t *testing.T) {
	f := &Formatter{ShowMetadata: true}
	info := NodeInfo{
		Name:        "Heating",
		Kind:        "actuator",
		DataType:    "int8",
		Min:         -100,
		Max:         100,
		Deprecation: "use Climate",
	}

	want := "Heating = <unset> (actuator, int8, [-100, 100], deprecated)"
	if got := f.FormatLeaf(&info); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	info = NodeInfo{Name: "Mode", Kind: "actuator", DataType: "string", Allowed: []string{"OFF", "ON"}}
	if got := f.FormatMetadata(&info); got != "actuator, string, allowed: OFF|ON" {
		t.Errorf("FormatMetadata = %q", got)
	}
}

func TestFormatRange(t *testing.T) {
	tests := []struct {
		lo, hi any
		want   string
	}{
		{nil, nil, ""},
		{0, 100, "[0, 100]"},
		{0, nil, "[0, ...]"},
		{nil, 2.5, "[..., 2.5]"},
	}
	for _, tt := range tests {
		if got := FormatRange(tt.lo, tt.hi); got != tt.want {
			t.Errorf("FormatRange(%v, %v) = %q, want %q", tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestFormatterRows(t *testing.T) {
	insp := NewInspector(newTestTree(t))
	if err := insp.WriteString("Cabin/Seat/Row1/DriverSide/Heating", "30"); err != nil {
		t.Fatalf("WriteString failed: %v", err)
	}
	info, err := insp.InspectNode("Cabin/Seat/Row1/DriverSide")
	if err != nil {
		t.Fatalf("InspectNode failed: %v", err)
	}

	f := NewFormatter()
	f.ShowUnset = false
	rows := f.Rows(info)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1: %v", len(rows), rows)
	}
	if rows[0].Path != "Cabin/Seat/Row1/DriverSide/Heating" || rows[0].Type != "int8" {
		t.Errorf("unexpected row %+v", rows[0])
	}

	table := f.FormatValueTable(rows)
	if !strings.HasPrefix(table, "  Cabin/Seat/Row1/DriverSide/Heating = 30") {
		t.Errorf("unexpected table %q", table)
	}
	if got := f.FormatValueTable(nil); got != "  (no values)\n" {
		t.Errorf("empty table = %q", got)
	}
}
