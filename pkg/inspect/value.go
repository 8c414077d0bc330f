package inspect

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ohler55/ojg/oj"

	"github.com/sdv-model/vss-go/pkg/vss"
)

// ErrInvalidValue is returned when text cannot be parsed as a leaf value.
var ErrInvalidValue = errors.New("invalid value")

// ParseValue parses text as a value of type dt.
//
// Integers are parsed at 64 bits (decimal, or with 0x/0o/0b prefix) so that
// range violations are reported by the leaf as vss.ErrOutOfRange rather than
// as a parse failure. Strings may be quoted. Arrays are written either as a
// JSON array or as a comma-separated list.
func ParseValue(dt vss.DataType, text string) (any, error) {
	text = strings.TrimSpace(text)
	if dt.IsArray() {
		return parseArray(dt.Elem(), text)
	}
	return parseScalar(dt, text)
}

func parseScalar(dt vss.DataType, text string) (any, error) {
	switch {
	case dt == vss.TypeBool:
		b, err := strconv.ParseBool(strings.ToLower(text))
		if err != nil {
			return nil, invalidValue(dt, text)
		}
		return b, nil

	case dt == vss.TypeString:
		if len(text) >= 2 && text[0] == '"' {
			s, err := strconv.Unquote(text)
			if err != nil {
				return nil, invalidValue(dt, text)
			}
			return s, nil
		}
		return text, nil

	case dt.IsInteger() && dt.IsSigned():
		n, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return nil, invalidValue(dt, text)
		}
		return n, nil

	case dt.IsInteger():
		if n, err := strconv.ParseUint(strings.TrimPrefix(text, "+"), 0, 64); err == nil {
			return n, nil
		}
		// Negative numbers are left for the leaf to reject as out of range.
		n, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return nil, invalidValue(dt, text)
		}
		return n, nil

	case dt.IsNumeric():
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, invalidValue(dt, text)
		}
		return f, nil

	default:
		return nil, fmt.Errorf("%w: unsupported type %s", ErrInvalidValue, dt)
	}
}

func parseArray(elem vss.DataType, text string) (any, error) {
	if strings.HasPrefix(text, "[") {
		parsed, err := oj.ParseString(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidValue, elem.ArrayOf(), err)
		}
		items, ok := parsed.([]any)
		if !ok {
			return nil, invalidValue(elem.ArrayOf(), text)
		}
		// Numbers and booleans from JSON are passed on as decoded; strings
		// are parsed as text of the element type.
		for i, item := range items {
			s, ok := item.(string)
			if !ok || elem == vss.TypeString {
				continue
			}
			v, err := parseScalar(elem, s)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			items[i] = v
		}
		return items, nil
	}

	if text == "" {
		return []any{}, nil
	}
	parts := strings.Split(text, ",")
	items := make([]any, len(parts))
	for i, part := range parts {
		v, err := parseScalar(elem, strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		items[i] = v
	}
	return items, nil
}

func invalidValue(dt vss.DataType, text string) error {
	return fmt.Errorf("%w: %q is not a %s", ErrInvalidValue, text, dt)
}

// ErrorKind classifies err by the sentinel it wraps, for journal events and
// metric labels.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, vss.ErrTypeMismatch):
		return "type_mismatch"
	case errors.Is(err, vss.ErrInvalidEnumeration):
		return "invalid_enumeration"
	case errors.Is(err, vss.ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, vss.ErrUnknownChild):
		return "unknown_child"
	case errors.Is(err, vss.ErrIndexOutOfRange):
		return "index_out_of_range"
	case errors.Is(err, vss.ErrUnsetValue):
		return "unset_value"
	case errors.Is(err, vss.ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidValue):
		return "invalid_value"
	case errors.Is(err, ErrInvalidPath), errors.Is(err, ErrEmptyPath):
		return "invalid_path"
	default:
		return "other"
	}
}
