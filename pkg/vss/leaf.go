package vss

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"sync"
)

// LeafSpec describes a leaf's type and constraints.
type LeafSpec struct {
	// Kind is the semantic kind (sensor, actuator, attribute).
	Kind Kind

	// Type is the value data type.
	Type DataType

	// Allowed lists the permitted values as string tokens. Empty means any value.
	// For array types the constraint applies to every element.
	Allowed []string

	// Min is the inclusive lower bound for numeric types. Nil means unbounded.
	Min any

	// Max is the inclusive upper bound for numeric types. Nil means unbounded.
	Max any

	// Unit is the unit of measurement (e.g., "km/h", "percent"). Documentation only.
	Unit string

	// Description is a human-readable description.
	Description string

	// Comment carries additional notes from the schema.
	Comment string

	// Deprecation is set when the schema marks the signal as deprecated.
	Deprecation string

	// Default is the value declared by the schema, if any. Leaves start unset
	// regardless; see Tree.ApplyDefaults.
	Default any
}

// HasRange reports whether a lower or upper bound is defined.
func (s *LeafSpec) HasRange() bool {
	return s.Min != nil || s.Max != nil
}

// IsAllowed reports whether token is a member of the allowed values.
// It returns true when no allowed values are defined.
func (s *LeafSpec) IsAllowed(token string) bool {
	return len(s.Allowed) == 0 || slices.Contains(s.Allowed, token)
}

// validate checks that the constraints are consistent with each other and with the data type.
func (s *LeafSpec) validate() error {
	if s.Kind == KindUnknown || s.Kind > KindAttribute {
		return fmt.Errorf("invalid kind %d", s.Kind)
	}
	if !s.Type.Valid() {
		return fmt.Errorf("invalid data type %d", s.Type)
	}

	if s.HasRange() && !s.Type.IsNumeric() {
		return fmt.Errorf("range on non-numeric type %s", s.Type)
	}
	lo, hasLo := toFloat64(s.Min)
	if s.Min != nil && (!hasLo || math.IsNaN(lo)) {
		return fmt.Errorf("min %v is not a number", s.Min)
	}
	hi, hasHi := toFloat64(s.Max)
	if s.Max != nil && (!hasHi || math.IsNaN(hi)) {
		return fmt.Errorf("max %v is not a number", s.Max)
	}
	if hasLo && hasHi && boundsInverted(s.Min, s.Max, lo, hi) {
		return fmt.Errorf("min %v greater than max %v", s.Min, s.Max)
	}

	seen := make(map[string]bool, len(s.Allowed))
	for _, a := range s.Allowed {
		if a == "" {
			return fmt.Errorf("empty allowed value")
		}
		if seen[a] {
			return fmt.Errorf("duplicate allowed value %q", a)
		}
		seen[a] = true
	}

	if s.Default != nil {
		if _, err := s.check(s.Default); err != nil {
			return fmt.Errorf("default: %v", err)
		}
	}
	return nil
}

func boundsInverted(minValue, maxValue any, lo, hi float64) bool {
	a, okA := integerOf(minValue)
	b, okB := integerOf(maxValue)
	if okA && okB {
		return a.cmp(b) > 0
	}
	return lo > hi
}

// check normalizes v to the leaf's data type and validates its constraints.
func (s *LeafSpec) check(v any) (any, error) {
	nv, err := normalize(s.Type, v)
	if err != nil {
		return nil, err
	}

	if len(s.Allowed) > 0 {
		err := eachScalar(nv, func(x any) error {
			token := Token(x)
			if !s.IsAllowed(token) {
				return fmt.Errorf("%w: %q", ErrInvalidEnumeration, token)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	if s.HasRange() {
		if err := eachScalar(nv, s.checkRange); err != nil {
			return nil, err
		}
	}
	return nv, nil
}

func (s *LeafSpec) checkRange(v any) error {
	if f, ok := v.(float64); ok && math.IsNaN(f) {
		return fmt.Errorf("%w: NaN", ErrOutOfRange)
	}
	if f, ok := v.(float32); ok && math.IsNaN(float64(f)) {
		return fmt.Errorf("%w: NaN", ErrOutOfRange)
	}
	if s.Min != nil && s.compare(v, s.Min, math.Ceil) < 0 {
		return fmt.Errorf("%w: %v < %v", ErrOutOfRange, v, s.Min)
	}
	if s.Max != nil && s.compare(v, s.Max, math.Floor) > 0 {
		return fmt.Errorf("%w: %v > %v", ErrOutOfRange, v, s.Max)
	}
	return nil
}

// compare returns the sign of v - bound for a value v of the leaf's element
// type. Integers compare exactly; a fractional bound on an integer leaf is
// first rounded towards the inside of the range by round. Bounds of float
// leaves are rounded to float32 like the values they limit.
func (s *LeafSpec) compare(v, bound any, round func(float64) float64) int {
	if n, ok := integerOf(v); ok {
		b, ok := integerOf(bound)
		if !ok {
			f, _ := toFloat64(bound)
			if b, ok = integerOfFloat(round(f)); !ok {
				// The bound lies beyond every 64-bit integer.
				return cmp.Compare(0, f)
			}
		}
		return n.cmp(b)
	}

	f, _ := toFloat64(v)
	b, _ := toFloat64(bound)
	if s.Type.Elem() == TypeFloat {
		b = float64(float32(b))
	}
	return cmp.Compare(f, b)
}

// Token returns the string token of a scalar value as compared against allowed values.
func Token(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Leaf is a terminal node holding a typed value.
// Leaf identity and spec are fixed; only the value changes at runtime.
type Leaf struct {
	node

	spec *LeafSpec

	mu    sync.RWMutex
	value any
	set   bool
}

func newLeaf(name string, parent Container, spec *LeafSpec) *Leaf {
	l := &Leaf{spec: spec}
	l.init(name, parent)
	return l
}

// Spec returns the leaf's type and constraints. The returned spec must not be modified.
func (l *Leaf) Spec() *LeafSpec {
	return l.spec
}

// Kind returns the leaf kind.
func (l *Leaf) Kind() Kind {
	return l.spec.Kind
}

// Type returns the leaf data type.
func (l *Leaf) Type() DataType {
	return l.spec.Type
}

// Value returns the current value, or ErrUnsetValue if the leaf was never assigned.
// Array values are returned as copies.
func (l *Leaf) Value() (any, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if !l.set {
		return nil, fmt.Errorf("%w: %s", ErrUnsetValue, l.path)
	}
	return cloneValue(l.value), nil
}

// IsSet reports whether the leaf holds a value.
func (l *Leaf) IsSet() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.set
}

// SetValue validates v and replaces the current value.
// On failure the previous value (or unset state) is kept.
func (l *Leaf) SetValue(v any) error {
	nv, err := l.spec.check(v)
	if err != nil {
		return fmt.Errorf("%s: %w", l.path, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.value = nv
	l.set = true
	return nil
}

// Reset returns the leaf to the unset state.
func (l *Leaf) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.value = nil
	l.set = false
}

// ValueAs returns the leaf value as T, the leaf's native Go type
// (e.g. uint8 for a uint8 leaf, []string for a string[] leaf).
func ValueAs[T any](l *Leaf) (T, error) {
	var zero T
	v, err := l.Value()
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%s: %w: holds %T, requested %T", l.path, ErrTypeMismatch, v, zero)
	}
	return t, nil
}
