package vss

import "testing"

func TestParseDataType(t *testing.T) {
	tests := []struct {
		in   string
		want DataType
	}{
		{"boolean", TypeBool},
		{"bool", TypeBool},
		{"int8", TypeInt8},
		{"uint16", TypeUint16},
		{"float", TypeFloat},
		{"double", TypeDouble},
		{"string", TypeString},
		{"string[]", TypeStringArray},
		{"uint8[]", TypeUint8Array},
		{" int64 ", TypeInt64},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDataType(tt.in)
			if err != nil {
				t.Fatalf("ParseDataType failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	for _, bad := range []string{"", "unknown", "int128", "[]", "float[][]"} {
		if _, err := ParseDataType(bad); err == nil {
			t.Errorf("ParseDataType(%q) should fail", bad)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	for d := TypeBool; d <= TypeStringArray; d++ {
		parsed, err := ParseDataType(d.String())
		if err != nil {
			t.Errorf("%d: ParseDataType(%q) failed: %v", d, d.String(), err)
			continue
		}
		if parsed != d {
			t.Errorf("%q parsed to %v", d.String(), parsed)
		}
	}
	if TypeUnknown.String() != "unknown" || DataType(200).String() != "unknown" {
		t.Error("invalid types should print as unknown")
	}
}

func TestDataTypeProperties(t *testing.T) {
	if !TypeFloatArray.IsArray() || TypeFloat.IsArray() {
		t.Error("IsArray mismatch")
	}
	if TypeFloatArray.Elem() != TypeFloat || TypeFloat.ArrayOf() != TypeFloatArray {
		t.Error("Elem/ArrayOf mismatch")
	}
	if !TypeUint8Array.IsNumeric() || TypeString.IsNumeric() || TypeBool.IsNumeric() {
		t.Error("IsNumeric mismatch")
	}
	if !TypeInt16.IsSigned() || TypeUint16.IsSigned() || TypeFloat.IsInteger() {
		t.Error("IsSigned/IsInteger mismatch")
	}
	if TypeUint32.Bits() != 32 || TypeInt8.Bits() != 8 || TypeString.Bits() != 0 {
		t.Error("Bits mismatch")
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindSensor, KindActuator, KindAttribute} {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if got, _ := ParseKind("Sensor"); got != KindSensor {
		t.Error("ParseKind should ignore case")
	}
	if _, err := ParseKind("branch"); err == nil {
		t.Error("ParseKind(branch) should fail")
	}
}
