package log

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

// Filter specifies criteria for filtering journal events.
// Empty/nil fields match all events for that criterion.
type Filter struct {
	// TreeID filters by exact tree instance.
	TreeID uuid.UUID

	// Operation filters by operation.
	Operation *Operation

	// PathPrefix matches the path itself and everything below it.
	PathPrefix string

	// Source filters by exact source name.
	Source string

	// TimeStart filters events at or after this time.
	TimeStart *time.Time

	// TimeEnd filters events before this time.
	TimeEnd *time.Time

	// ErrorsOnly keeps only failed operations.
	ErrorsOnly bool
}

// Matches returns true if the event matches all filter criteria.
func (f *Filter) Matches(event Event) bool {
	if f.TreeID != uuid.Nil && event.TreeID != f.TreeID {
		return false
	}
	if f.Operation != nil && event.Operation != *f.Operation {
		return false
	}
	if f.PathPrefix != "" && !underPath(event.Path, f.PathPrefix) {
		return false
	}
	if f.Source != "" && event.Source != f.Source {
		return false
	}
	if f.TimeStart != nil && event.Timestamp.Before(*f.TimeStart) {
		return false
	}
	if f.TimeEnd != nil && !event.Timestamp.Before(*f.TimeEnd) {
		return false
	}
	if f.ErrorsOnly && !event.Failed() {
		return false
	}
	return true
}

// underPath reports whether path is prefix or lies below it. Matching is by
// whole segment: "Cabin/Seat" matches "Cabin/Seat/Row1" but not "Cabin/SeatBelt".
func underPath(path, prefix string) bool {
	prefix = strings.TrimSuffix(prefix, "/")
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// ErrTruncated is returned when the journal ends inside an event, which
// happens when the writer stopped mid-record.
var ErrTruncated = errors.New("journal truncated")

// Reader streams events from a journal file, skipping those that do not
// match its filter.
type Reader struct {
	file   *os.File
	dec    *cbor.Decoder
	filter Filter
	n      int // events decoded, including filtered ones
}

// NewReader opens the journal at path.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader opens the journal at path; Next returns only events
// matching filter.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{
		file:   f,
		dec:    NewDecoder(bufio.NewReader(f)),
		filter: filter,
	}, nil
}

// Next returns the next matching event, or io.EOF at the end of the journal.
// Decoding errors name the position of the bad event.
func (r *Reader) Next() (Event, error) {
	for {
		var event Event
		err := r.dec.Decode(&event)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return Event{}, io.EOF
		case errors.Is(err, io.ErrUnexpectedEOF):
			return Event{}, fmt.Errorf("event %d: %w", r.n+1, ErrTruncated)
		default:
			return Event{}, fmt.Errorf("event %d: %w", r.n+1, err)
		}
		r.n++

		if r.filter.Matches(event) {
			return event, nil
		}
	}
}

// Each calls fn for every remaining matching event and stops at the first
// error from fn or from decoding.
func (r *Reader) Each(fn func(Event) error) error {
	for {
		event, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(event); err != nil {
			return err
		}
	}
}

// ReadAll returns the remaining matching events. On error the events read so
// far are returned with it.
func (r *Reader) ReadAll() ([]Event, error) {
	var events []Event
	err := r.Each(func(e Event) error {
		events = append(events, e)
		return nil
	})
	return events, err
}

// Close closes the journal file.
func (r *Reader) Close() error {
	return r.file.Close()
}
