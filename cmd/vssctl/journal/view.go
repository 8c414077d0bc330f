// Package journal implements the vssctl journal commands: view, export,
// filter and stats over .vlog files.
package journal

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sdv-model/vss-go/pkg/log"
)

const timeLayout = "2006-01-02T15:04:05.000000Z"

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [tree:id] OPERATION path
	ts := event.Timestamp.UTC().Format(timeLayout)
	fmt.Fprintf(w, "%s [tree:%s] %-7s %s\n", ts, shortenID(event.TreeID.String()), event.Operation, event.Path)

	if event.Source != "" {
		fmt.Fprintf(w, "  Source: %s\n", event.Source)
	}
	if event.Value != nil {
		fmt.Fprintf(w, "  Value: %s\n", formatValue(event.Value))
	}
	if event.Operation == log.OpQuery {
		fmt.Fprintf(w, "  Matched: %d\n", event.Count)
	}
	if event.Error != nil {
		fmt.Fprintf(w, "  Error: %s\n", event.Error.Kind)
		fmt.Fprintf(w, "  Message: %s\n", event.Error.Message)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenID returns the first 8 characters of a tree ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// formatValue renders a decoded value as JSON, falling back to %v.
func formatValue(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// RunView prints the events in the journal at path that match filter.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer reader.Close()

	err = reader.Each(func(event log.Event) error {
		formatEvent(output, event)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to read journal: %w", err)
	}
	return nil
}
