package vss

import "errors"

// Tree errors.
var (
	ErrTypeMismatch       = errors.New("type mismatch")
	ErrInvalidEnumeration = errors.New("value not in allowed values")
	ErrOutOfRange         = errors.New("value out of range")
	ErrUnknownChild       = errors.New("unknown child")
	ErrIndexOutOfRange    = errors.New("index out of range")
	ErrUnsetValue         = errors.New("value not set")
	ErrNotFound           = errors.New("node not found")
	ErrInvalidDefinition  = errors.New("invalid tree definition")
)
