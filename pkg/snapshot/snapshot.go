// Package snapshot captures the values of every leaf in a tree and restores
// them into another tree of the same shape.
//
// A snapshot records the schema fingerprint of the tree it was taken from.
// Restore refuses snapshots whose fingerprint differs from the target's, so
// every restored value lands on a leaf with the same path, kind, data type
// and constraints. Values are still routed through Leaf.SetValue, which
// normalizes values decoded from CBOR back to the leaf's native type.
package snapshot

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sdv-model/vss-go/pkg/inspect"
	"github.com/sdv-model/vss-go/pkg/log"
	"github.com/sdv-model/vss-go/pkg/schema"
	"github.com/sdv-model/vss-go/pkg/version"
	"github.com/sdv-model/vss-go/pkg/vss"
)

// ErrIncompatible is returned when a snapshot cannot be restored into a tree
// because the schema fingerprint or version differs.
var ErrIncompatible = errors.New("incompatible snapshot")

// Snapshot holds the set leaf values of a tree at one point in time.
type Snapshot struct {
	ID            uuid.UUID `cbor:"1,keyasint" json:"id"`
	TreeID        uuid.UUID `cbor:"2,keyasint" json:"tree_id"`
	SchemaVersion string    `cbor:"3,keyasint,omitempty" json:"schema_version,omitempty"`
	Fingerprint   uint64    `cbor:"4,keyasint" json:"fingerprint"`
	TakenAt       time.Time `cbor:"5,keyasint" json:"taken_at"`
	Entries       []Entry   `cbor:"6,keyasint" json:"entries"`
}

// Entry is the value of one leaf.
type Entry struct {
	Path  string `cbor:"1,keyasint" json:"path"`
	Value any    `cbor:"2,keyasint" json:"value"`
}

// Capture records the value of every set leaf of t in declared order.
// Unset leaves are omitted.
func Capture(t *vss.Tree, schemaVersion string) *Snapshot {
	s := &Snapshot{
		ID:            uuid.New(),
		TreeID:        t.ID(),
		SchemaVersion: schemaVersion,
		Fingerprint:   schema.Fingerprint(t),
		TakenAt:       time.Now(),
		Entries:       []Entry{},
	}
	for _, l := range t.Leaves() {
		v, err := l.Value()
		if err != nil {
			continue
		}
		s.Entries = append(s.Entries, Entry{Path: l.Path(), Value: v})
	}
	return s
}

// Len returns the number of captured leaves.
func (s *Snapshot) Len() int {
	return len(s.Entries)
}

// Option configures Restore.
type Option func(*restorer)

type restorer struct {
	journal log.Logger
	source  string
}

// WithJournal records one OpRestore event per entry in l.
func WithJournal(l log.Logger) Option {
	return func(r *restorer) { r.journal = log.OrNoop(l) }
}

// WithSource sets the source name recorded in journal events.
func WithSource(source string) Option {
	return func(r *restorer) { r.source = source }
}

// Check reports whether s can be restored into a tree built from a schema
// of version schemaVersion with the given fingerprint. The snapshot must not
// be newer than the schema and must share its major version. An empty
// schemaVersion stands for version.Current.
func (s *Snapshot) Check(schemaVersion string, fingerprint uint64) error {
	if s.SchemaVersion != "" {
		if err := version.CheckReadable(schemaVersion, s.SchemaVersion); err != nil {
			return fmt.Errorf("%w: %v", ErrIncompatible, err)
		}
	}
	if s.Fingerprint != fingerprint {
		return fmt.Errorf("%w: snapshot fingerprint %s, tree fingerprint %s", ErrIncompatible,
			schema.FormatFingerprint(s.Fingerprint), schema.FormatFingerprint(fingerprint))
	}
	return nil
}

// Restore writes the values of s into t, built from a schema of version
// schemaVersion with the given fingerprint. Leaves without an entry are reset
// to unset.
//
// An incompatible snapshot fails with ErrIncompatible before any leaf is
// touched. Otherwise every entry is attempted; a leaf that rejects its value
// keeps its previous value, and the per-entry errors are joined.
func Restore(t *vss.Tree, s *Snapshot, schemaVersion string, fingerprint uint64, opts ...Option) error {
	if err := s.Check(schemaVersion, fingerprint); err != nil {
		return err
	}

	r := &restorer{journal: log.NoopLogger{}}
	for _, opt := range opts {
		opt(r)
	}

	values := make(map[*vss.Leaf]any, len(s.Entries))
	var errs []error
	for _, e := range s.Entries {
		l, err := t.Leaf(e.Path)
		if err != nil {
			errs = append(errs, err)
			r.record(t, e.Path, nil, err)
			continue
		}
		if _, dup := values[l]; dup {
			errs = append(errs, fmt.Errorf("%s: duplicate entry", l.Path()))
			continue
		}
		values[l] = e.Value
	}

	for _, l := range t.Leaves() {
		v, ok := values[l]
		if !ok {
			l.Reset()
			continue
		}
		if err := l.SetValue(v); err != nil {
			errs = append(errs, err)
			r.record(t, l.Path(), nil, err)
			continue
		}
		nv, _ := l.Value()
		r.record(t, l.Path(), nv, nil)
	}
	return errors.Join(errs...)
}

func (r *restorer) record(t *vss.Tree, path string, value any, err error) {
	event := log.Event{
		Timestamp: time.Now(),
		TreeID:    t.ID(),
		Source:    r.source,
		Operation: log.OpRestore,
		Path:      path,
		Value:     value,
	}
	if err != nil {
		event.Error = &log.ErrorData{Kind: inspect.ErrorKind(err), Message: err.Error()}
	}
	r.journal.Log(event)
}
