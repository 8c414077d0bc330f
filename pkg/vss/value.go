package vss

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
)

// normalize converts v to the native Go representation of t.
//
// Integer leaves accept any Go integer whose value fits the leaf width,
// floating point leaves accept any Go number, and array leaves accept any
// slice whose elements are acceptable for the element type.
func normalize(t DataType, v any) (any, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil is not a %s", ErrTypeMismatch, t)
	}
	if t.IsArray() {
		return normalizeArray(t.Elem(), v)
	}
	return normalizeScalar(t, v)
}

func normalizeArray(elem DataType, v any) (any, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, mismatch(elem.ArrayOf(), v)
	}

	items := make([]any, rv.Len())
	for i := range items {
		item, err := normalizeScalar(elem, rv.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		items[i] = item
	}
	return packSlice(elem, items), nil
}

func normalizeScalar(t DataType, v any) (any, error) {
	switch t {
	case TypeBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case TypeString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case TypeInt8, TypeInt16, TypeInt32, TypeInt64:
		n, ok := integerOf(v)
		if !ok {
			break
		}
		i, err := n.signed(t)
		if err != nil {
			return nil, err
		}
		switch t {
		case TypeInt8:
			return int8(i), nil
		case TypeInt16:
			return int16(i), nil
		case TypeInt32:
			return int32(i), nil
		default:
			return i, nil
		}
	case TypeUint8, TypeUint16, TypeUint32, TypeUint64:
		n, ok := integerOf(v)
		if !ok {
			break
		}
		u, err := n.unsigned(t)
		if err != nil {
			return nil, err
		}
		switch t {
		case TypeUint8:
			return uint8(u), nil
		case TypeUint16:
			return uint16(u), nil
		case TypeUint32:
			return uint32(u), nil
		default:
			return u, nil
		}
	case TypeFloat:
		f, ok := toFloat64(v)
		if !ok {
			break
		}
		if !math.IsInf(f, 0) && !math.IsNaN(f) && math.Abs(f) > math.MaxFloat32 {
			return nil, fmt.Errorf("%w: %v does not fit %s", ErrOutOfRange, v, t)
		}
		return float32(f), nil
	case TypeDouble:
		if f, ok := toFloat64(v); ok {
			return f, nil
		}
	}
	return nil, mismatch(t, v)
}

func mismatch(t DataType, v any) error {
	return fmt.Errorf("%w: expected %s, got %T", ErrTypeMismatch, t, v)
}

// integer holds any Go integer without loss.
type integer struct {
	i   int64
	u   uint64
	big bool // value exceeds MaxInt64 and is held in u
}

func integerOf(v any) (integer, bool) {
	switch n := v.(type) {
	case int:
		return integer{i: int64(n)}, true
	case int8:
		return integer{i: int64(n)}, true
	case int16:
		return integer{i: int64(n)}, true
	case int32:
		return integer{i: int64(n)}, true
	case int64:
		return integer{i: n}, true
	case uint:
		return fromUint64(uint64(n)), true
	case uint8:
		return fromUint64(uint64(n)), true
	case uint16:
		return fromUint64(uint64(n)), true
	case uint32:
		return fromUint64(uint64(n)), true
	case uint64:
		return fromUint64(n), true
	default:
		return integer{}, false
	}
}

func fromUint64(u uint64) integer {
	if u > math.MaxInt64 {
		return integer{u: u, big: true}
	}
	return integer{i: int64(u)}
}

func (n integer) String() string {
	if n.big {
		return fmt.Sprint(n.u)
	}
	return fmt.Sprint(n.i)
}

// cmp returns the sign of n - m.
func (n integer) cmp(m integer) int {
	switch {
	case n.big && m.big:
		return cmp.Compare(n.u, m.u)
	case n.big:
		return 1
	case m.big:
		return -1
	default:
		return cmp.Compare(n.i, m.i)
	}
}

// integerOfFloat converts an integral float to an integer when it lies in
// the int64 or uint64 range.
func integerOfFloat(f float64) (integer, bool) {
	switch {
	case f >= -(1<<63) && f < 1<<63:
		return integer{i: int64(f)}, true
	case f >= 1<<63 && f < 1<<64:
		return fromUint64(uint64(f)), true
	default:
		return integer{}, false
	}
}

func (n integer) signed(t DataType) (int64, error) {
	bits := t.Bits()
	lo := int64(-1) << (bits - 1)
	hi := -(lo + 1)
	if n.big || n.i < lo || n.i > hi {
		return 0, fmt.Errorf("%w: %s does not fit %s", ErrOutOfRange, n, t)
	}
	return n.i, nil
}

func (n integer) unsigned(t DataType) (uint64, error) {
	hi := uint64(math.MaxUint64) >> (64 - t.Bits())
	if n.big {
		if n.u > hi {
			return 0, fmt.Errorf("%w: %s does not fit %s", ErrOutOfRange, n, t)
		}
		return n.u, nil
	}
	if n.i < 0 || uint64(n.i) > hi {
		return 0, fmt.Errorf("%w: %s does not fit %s", ErrOutOfRange, n, t)
	}
	return uint64(n.i), nil
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func packSlice(elem DataType, items []any) any {
	switch elem {
	case TypeBool:
		return packAs[bool](items)
	case TypeInt8:
		return packAs[int8](items)
	case TypeInt16:
		return packAs[int16](items)
	case TypeInt32:
		return packAs[int32](items)
	case TypeInt64:
		return packAs[int64](items)
	case TypeUint8:
		return packAs[uint8](items)
	case TypeUint16:
		return packAs[uint16](items)
	case TypeUint32:
		return packAs[uint32](items)
	case TypeUint64:
		return packAs[uint64](items)
	case TypeFloat:
		return packAs[float32](items)
	case TypeDouble:
		return packAs[float64](items)
	default:
		return packAs[string](items)
	}
}

func packAs[T any](items []any) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = item.(T)
	}
	return out
}

// eachScalar calls fn for v itself, or for every element when v is a slice.
func eachScalar(v any, fn func(any) error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return fn(v)
	}
	for i := 0; i < rv.Len(); i++ {
		if err := fn(rv.Index(i).Interface()); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// cloneValue returns a copy of slice values so callers never share backing arrays
// with a leaf cell.
func cloneValue(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return v
	}
	out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	reflect.Copy(out, rv)
	return out.Interface()
}
