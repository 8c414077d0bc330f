package vss

import (
	"fmt"
	"strings"
)

// Kind is the semantic kind of a leaf. It tells a transport which direction
// values are expected to flow; the tree itself does not enforce it.
type Kind uint8

const (
	KindUnknown Kind = iota

	// KindSensor is a value measured by the vehicle.
	KindSensor

	// KindActuator is a value that can be requested to change.
	KindActuator

	// KindAttribute is a static property of the vehicle.
	KindAttribute
)

// String returns the kind name as used in schema files.
func (k Kind) String() string {
	switch k {
	case KindSensor:
		return "sensor"
	case KindActuator:
		return "actuator"
	case KindAttribute:
		return "attribute"
	default:
		return "unknown"
	}
}

// ParseKind parses a kind name ("sensor", "actuator", "attribute").
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sensor":
		return KindSensor, nil
	case "actuator":
		return KindActuator, nil
	case "attribute":
		return KindAttribute, nil
	default:
		return KindUnknown, fmt.Errorf("unknown leaf kind %q", s)
	}
}

// DataType is the value type of a leaf. Every scalar type has an array
// variant; arrays are stored as Go slices of the scalar's native type.
type DataType uint8

const (
	TypeUnknown DataType = iota
	TypeBool
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt64
	TypeUint8
	TypeUint16
	TypeUint32
	TypeUint64
	TypeFloat
	TypeDouble
	TypeString

	TypeBoolArray
	TypeInt8Array
	TypeInt16Array
	TypeInt32Array
	TypeInt64Array
	TypeUint8Array
	TypeUint16Array
	TypeUint32Array
	TypeUint64Array
	TypeFloatArray
	TypeDoubleArray
	TypeStringArray
)

// arrayOffset is the distance between a scalar type and its array variant.
const arrayOffset = TypeBoolArray - TypeBool

var scalarNames = []string{
	"unknown", "boolean", "int8", "int16", "int32", "int64",
	"uint8", "uint16", "uint32", "uint64", "float", "double", "string",
}

// String returns the VSS data type name, e.g. "uint8" or "string[]".
func (d DataType) String() string {
	if !d.Valid() {
		return "unknown"
	}
	if d.IsArray() {
		return scalarNames[d.Elem()] + "[]"
	}
	return scalarNames[d]
}

// Valid reports whether d is a known data type.
func (d DataType) Valid() bool {
	return d > TypeUnknown && d <= TypeStringArray
}

// IsArray reports whether d is an array type.
func (d DataType) IsArray() bool {
	return d >= TypeBoolArray && d <= TypeStringArray
}

// Elem returns the scalar element type. For scalar types it returns d.
func (d DataType) Elem() DataType {
	if d.IsArray() {
		return d - arrayOffset
	}
	return d
}

// ArrayOf returns the array variant of a scalar type.
func (d DataType) ArrayOf() DataType {
	if d.IsArray() || !d.Valid() {
		return d
	}
	return d + arrayOffset
}

// IsNumeric reports whether the (element) type is an integer or floating point type.
func (d DataType) IsNumeric() bool {
	e := d.Elem()
	return e >= TypeInt8 && e <= TypeDouble
}

// IsInteger reports whether the (element) type is an integer type.
func (d DataType) IsInteger() bool {
	e := d.Elem()
	return e >= TypeInt8 && e <= TypeUint64
}

// IsSigned reports whether the (element) type is a signed integer type.
func (d DataType) IsSigned() bool {
	e := d.Elem()
	return e >= TypeInt8 && e <= TypeInt64
}

// Bits returns the width of an integer or floating point (element) type.
func (d DataType) Bits() int {
	switch d.Elem() {
	case TypeInt8, TypeUint8:
		return 8
	case TypeInt16, TypeUint16:
		return 16
	case TypeInt32, TypeUint32, TypeFloat:
		return 32
	case TypeInt64, TypeUint64, TypeDouble:
		return 64
	default:
		return 0
	}
}

// ParseDataType parses a VSS data type name such as "int16", "float" or "string[]".
func ParseDataType(s string) (DataType, error) {
	name := strings.TrimSpace(s)
	array := strings.HasSuffix(name, "[]")
	name = strings.TrimSuffix(name, "[]")
	if name == "bool" {
		name = "boolean"
	}

	for i, n := range scalarNames {
		if i == 0 || n != name {
			continue
		}
		d := DataType(i)
		if array {
			return d.ArrayOf(), nil
		}
		return d, nil
	}
	return TypeUnknown, fmt.Errorf("unknown data type %q", s)
}
