package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
)

func logThroughAdapter(t *testing.T, event Event) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	NewSlogAdapter(slog.New(handler)).Log(event)

	if buf.Len() == 0 {
		t.Fatal("no output produced")
	}
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	return entry
}

func TestSlogAdapterLogsWrite(t *testing.T) {
	treeID := uuid.New()
	entry := logThroughAdapter(t, Event{
		Timestamp: time.Now(),
		TreeID:    treeID,
		Source:    "cli",
		Operation: OpWrite,
		Path:      "Speed",
		Value:     float32(88.5),
	})

	if entry["msg"] != "journal" {
		t.Errorf("msg: got %v, want journal", entry["msg"])
	}
	if entry["level"] != "DEBUG" {
		t.Errorf("level: got %v, want DEBUG", entry["level"])
	}
	if entry["tree_id"] != treeID.String() {
		t.Errorf("tree_id: got %v, want %s", entry["tree_id"], treeID)
	}
	if entry["op"] != "WRITE" || entry["path"] != "Speed" || entry["source"] != "cli" {
		t.Errorf("unexpected entry: %v", entry)
	}
	if entry["value"] != 88.5 {
		t.Errorf("value: got %v, want 88.5", entry["value"])
	}
	if _, ok := entry["error_kind"]; ok {
		t.Error("successful write should not carry error attributes")
	}
}

func TestSlogAdapterLogsFailureAtWarn(t *testing.T) {
	entry := logThroughAdapter(t, Event{
		Operation: OpWrite,
		Path:      "Body/Lights/LightSwitch",
		Error:     &ErrorData{Kind: "invalid_enumeration", Message: `value not in allowed values: "HIGH"`},
	})

	if entry["level"] != "WARN" {
		t.Errorf("level: got %v, want WARN", entry["level"])
	}
	if entry["error_kind"] != "invalid_enumeration" {
		t.Errorf("error_kind: got %v", entry["error_kind"])
	}
	if _, ok := entry["value"]; ok {
		t.Error("failed write should not carry a value")
	}
}

func TestSlogAdapterLogsQueryCount(t *testing.T) {
	entry := logThroughAdapter(t, Event{Operation: OpQuery, Path: "$..Heating", Count: 6})

	if entry["op"] != "QUERY" {
		t.Errorf("op: got %v, want QUERY", entry["op"])
	}
	if entry["count"] != float64(6) {
		t.Errorf("count: got %v, want 6", entry["count"])
	}
}

func TestSlogAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	NewSlogAdapter(slog.New(handler)).Log(Event{Operation: OpRead, Path: "Speed"})

	if buf.Len() != 0 {
		t.Errorf("debug event should be filtered at info level, got %s", buf.String())
	}
}
