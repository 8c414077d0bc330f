package inspect

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/sdv-model/vss-go/pkg/vss"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		dt   vss.DataType
		text string
		want any
	}{
		{vss.TypeBool, "true", true},
		{vss.TypeBool, "FALSE", false},
		{vss.TypeString, "AUTO", "AUTO"},
		{vss.TypeString, `"with spaces"`, "with spaces"},
		{vss.TypeInt8, "-40", int64(-40)},
		{vss.TypeInt32, "0x10", int64(16)},
		{vss.TypeUint8, "200", uint64(200)},
		{vss.TypeUint8, "+7", uint64(7)},
		{vss.TypeUint16, "-1", int64(-1)},
		{vss.TypeFloat, "42.5", 42.5},
		{vss.TypeDouble, "-1e3", -1000.0},
		{vss.TypeStringArray, "ANDROID_AUTO, OTHER", []any{"ANDROID_AUTO", "OTHER"}},
		{vss.TypeStringArray, `["A", "B"]`, []any{"A", "B"}},
		{vss.TypeUint8Array, "1,2,3", []any{uint64(1), uint64(2), uint64(3)}},
		{vss.TypeUint8Array, `["4", 5]`, []any{uint64(4), int64(5)}},
		{vss.TypeFloatArray, "", []any{}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.dt, tt.text), func(t *testing.T) {
			got, err := ParseValue(tt.dt, tt.text)
			if err != nil {
				t.Fatalf("ParseValue failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseValueErrors(t *testing.T) {
	tests := []struct {
		dt   vss.DataType
		text string
	}{
		{vss.TypeBool, "maybe"},
		{vss.TypeInt8, "ten"},
		{vss.TypeUint8, "1.5"},
		{vss.TypeFloat, "fast"},
		{vss.TypeString, `"unterminated`},
		{vss.TypeUint8Array, "1,x"},
		{vss.TypeStringArray, "[1,"},
		{vss.TypeStringArray, `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.dt, tt.text), func(t *testing.T) {
			_, err := ParseValue(tt.dt, tt.text)
			if !errors.Is(err, ErrInvalidValue) {
				t.Errorf("ParseValue(%s, %q) error = %v, want ErrInvalidValue", tt.dt, tt.text, err)
			}
		})
	}
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("x: %w", vss.ErrTypeMismatch), "type_mismatch"},
		{fmt.Errorf("x: %w", vss.ErrInvalidEnumeration), "invalid_enumeration"},
		{fmt.Errorf("x: %w", vss.ErrOutOfRange), "out_of_range"},
		{fmt.Errorf("x: %w", vss.ErrUnknownChild), "unknown_child"},
		{fmt.Errorf("x: %w", vss.ErrIndexOutOfRange), "index_out_of_range"},
		{vss.ErrUnsetValue, "unset_value"},
		{vss.ErrNotFound, "not_found"},
		{fmt.Errorf("Speed: %w", ErrInvalidValue), "invalid_value"},
		{ErrInvalidPath, "invalid_path"},
		{ErrEmptyPath, "invalid_path"},
		{errors.New("disk full"), "other"},
	}

	for _, tt := range tests {
		if got := ErrorKind(tt.err); got != tt.want {
			t.Errorf("ErrorKind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
