package log

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Event is one journal entry.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the operation completed (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// TreeID identifies the tree instance the operation ran against.
	TreeID uuid.UUID `cbor:"2,keyasint"`

	// Source names the caller (e.g. "vssctl", "shell", "restore").
	Source string `cbor:"3,keyasint,omitempty"`

	// Operation performed.
	Operation Operation `cbor:"4,keyasint"`

	// Path of the node, "/"-joined below the root. For queries, the expression.
	Path string `cbor:"5,keyasint,omitempty"`

	// Value read or written. Unset for failed operations.
	Value any `cbor:"6,keyasint,omitempty"`

	// Count is the number of leaves a query matched or a restore applied.
	Count int `cbor:"7,keyasint,omitempty"`

	// Error is set when the operation failed.
	Error *ErrorData `cbor:"8,keyasint,omitempty"`
}

// Failed reports whether the event records a failed operation.
func (e Event) Failed() bool {
	return e.Error != nil
}

// Operation identifies what was done to the tree.
type Operation uint8

const (
	// OpRead is a leaf value read.
	OpRead Operation = 0
	// OpWrite is a leaf value assignment.
	OpWrite Operation = 1
	// OpReset returns a leaf to the unset state.
	OpReset Operation = 2
	// OpQuery is a wildcard leaf selection.
	OpQuery Operation = 3
	// OpRestore applies a snapshot to the tree.
	OpRestore Operation = 4
)

// String returns the operation name.
func (o Operation) String() string {
	switch o {
	case OpRead:
		return "READ"
	case OpWrite:
		return "WRITE"
	case OpReset:
		return "RESET"
	case OpQuery:
		return "QUERY"
	case OpRestore:
		return "RESTORE"
	default:
		return "UNKNOWN"
	}
}

// ParseOperation parses an operation name as printed by String.
func ParseOperation(s string) (Operation, bool) {
	for op := OpRead; op <= OpRestore; op++ {
		if strings.EqualFold(s, op.String()) {
			return op, true
		}
	}
	return 0, false
}

// ErrorData describes a failed operation.
type ErrorData struct {
	// Kind is the short error class, e.g. "out_of_range" or "not_found".
	Kind string `cbor:"1,keyasint"`

	// Message is the full error text.
	Message string `cbor:"2,keyasint"`
}
