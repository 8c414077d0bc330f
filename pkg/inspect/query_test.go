package inspect

import (
	"errors"
	"testing"
)

func TestQuery(t *testing.T) {
	tests := []struct {
		expr  string
		count int
		first string
	}{
		{"$.Cabin.Seat.*.*.Heating", 6, "Cabin/Seat/Row1/DriverSide/Heating"},
		{"Cabin.Seat.Row1.*.Heating", 3, "Cabin/Seat/Row1/DriverSide/Heating"},
		{"$..TirePressure", 4, "Chassis/Axle/Row1/Wheel/Left/TirePressure"},
		{"$..Speed", 5, "Speed"},
		{"$.Speed", 1, "Speed"},
		{"$.Cabin.HVAC.Station.Row2.*.FanSpeed", 2, "Cabin/HVAC/Station/Row2/Left/FanSpeed"},
		{"$.Cabin.Seat", 0, ""},
		{"$.Nothing.Here", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			insp := NewInspector(newTestTree(t))
			leaves, err := insp.Query(tt.expr)
			if err != nil {
				t.Fatalf("Query failed: %v", err)
			}
			if len(leaves) != tt.count {
				t.Fatalf("got %d leaves, want %d", len(leaves), tt.count)
			}
			if tt.count > 0 && leaves[0].Path() != tt.first {
				t.Errorf("first match = %q, want %q", leaves[0].Path(), tt.first)
			}
		})
	}
}

func TestQueryDeclaredOrder(t *testing.T) {
	insp := NewInspector(newTestTree(t))
	leaves, err := insp.Query("$..TirePressure")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}

	want := []string{
		"Chassis/Axle/Row1/Wheel/Left/TirePressure",
		"Chassis/Axle/Row1/Wheel/Right/TirePressure",
		"Chassis/Axle/Row2/Wheel/Left/TirePressure",
		"Chassis/Axle/Row2/Wheel/Right/TirePressure",
	}
	for k, l := range leaves {
		if l.Path() != want[k] {
			t.Errorf("match %d = %q, want %q", k, l.Path(), want[k])
		}
	}
}

func TestQueryErrors(t *testing.T) {
	insp := NewInspector(newTestTree(t))

	if _, err := insp.Query(""); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("empty query error = %v, want ErrEmptyPath", err)
	}
	if _, err := insp.Query("$.Cabin[?(@.x =="); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("malformed query error = %v, want ErrInvalidPath", err)
	}
}
