package journal

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sdv-model/vss-go/pkg/log"
)

// exportRecord is the JSON form of an event.
type exportRecord struct {
	Timestamp string `json:"timestamp"`
	TreeID    string `json:"tree_id"`
	Source    string `json:"source,omitempty"`
	Operation string `json:"operation"`
	Path      string `json:"path,omitempty"`
	Value     any    `json:"value,omitempty"`
	Count     int    `json:"count,omitempty"`
	ErrorKind string `json:"error_kind,omitempty"`
	Error     string `json:"error,omitempty"`
}

func newExportRecord(event log.Event) exportRecord {
	rec := exportRecord{
		Timestamp: event.Timestamp.UTC().Format(timeLayout),
		TreeID:    event.TreeID.String(),
		Source:    event.Source,
		Operation: event.Operation.String(),
		Path:      event.Path,
		Value:     event.Value,
		Count:     event.Count,
	}
	if event.Error != nil {
		rec.ErrorKind = event.Error.Kind
		rec.Error = event.Error.Message
	}
	return rec
}

// RunExport exports the journal at path to the specified format, writing to
// the file output or to stdout when output is empty.
func RunExport(path, format, output string, filter log.Filter) error {
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	return Export(path, format, filter, w)
}

// Export writes the matching events of the journal at path to w.
func Export(path, format string, filter log.Filter, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer reader.Close()

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(newExportRecord(event)); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "tree_id", "source", "operation", "path", "value", "count", "error_kind"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		rec := newExportRecord(event)
		value := ""
		if rec.Value != nil {
			value = formatValue(rec.Value)
		}
		count := ""
		if event.Operation == log.OpQuery {
			count = strconv.Itoa(rec.Count)
		}
		row := []string{rec.Timestamp, rec.TreeID, rec.Source, rec.Operation, rec.Path, value, count, rec.ErrorKind}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}
