package journal

import (
	"fmt"
	"io"
	"time"

	"github.com/sdv-model/vss-go/pkg/log"
)

// FilterOptions specifies filtering criteria shared by the journal commands.
type FilterOptions struct {
	Operation  string
	Path       string
	Source     string
	TimeStart  string
	TimeEnd    string
	ErrorsOnly bool
}

// ParseFilterOptions converts command-line filter values into a log.Filter.
// Empty values match everything.
func ParseFilterOptions(opts FilterOptions) (log.Filter, error) {
	filter := log.Filter{
		PathPrefix: opts.Path,
		Source:     opts.Source,
		ErrorsOnly: opts.ErrorsOnly,
	}

	if opts.Operation != "" {
		op, ok := log.ParseOperation(opts.Operation)
		if !ok {
			return log.Filter{}, fmt.Errorf("invalid operation: %s (must be read, write, reset, query, or restore)", opts.Operation)
		}
		filter.Operation = &op
	}

	if opts.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeStart)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}

	if opts.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeEnd)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}

	return filter, nil
}

// RunFilter copies the events of the journal at path that match filter into
// a new journal at output, and reports how many were copied to w.
func RunFilter(path, output string, filter log.Filter, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer reader.Close()

	logger, err := log.NewFileLogger(output)
	if err != nil {
		return fmt.Errorf("failed to create output journal: %w", err)
	}
	defer logger.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		logger.Log(event)
	}

	if err := logger.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	if dropped := logger.Dropped(); dropped > 0 {
		return fmt.Errorf("failed to write %d events to %s", dropped, output)
	}
	fmt.Fprintf(w, "Filtered %d events to %s\n", logger.Written(), output)
	return nil
}
