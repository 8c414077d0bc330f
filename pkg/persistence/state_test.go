package persistence

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sdv-model/vss-go/pkg/schema"
	"github.com/sdv-model/vss-go/pkg/snapshot"
	"github.com/sdv-model/vss-go/pkg/version"
)

func TestStore(t *testing.T) {
	t.Run("SaveAndLoadEmpty", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStore(filepath.Join(dir, "state.json"))

		state := &State{SavedAt: time.Now()}
		if err := store.Save(state); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		got, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if got.Version != StateVersion {
			t.Errorf("Version = %d, want %d", got.Version, StateVersion)
		}
		if !got.SavedAt.Equal(state.SavedAt) {
			t.Errorf("SavedAt = %v, want %v", got.SavedAt, state.SavedAt)
		}
	})

	t.Run("LoadNonExistent", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStore(filepath.Join(dir, "nonexistent.json"))

		got, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if got != nil {
			t.Errorf("Load() = %v, want nil for non-existent file", got)
		}

		snap, err := store.LoadSnapshot()
		if err != nil || snap != nil {
			t.Errorf("LoadSnapshot() = %v, %v, want nil, nil", snap, err)
		}
	})

	t.Run("CreatesParentDirectory", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStore(filepath.Join(dir, "nested", "deeper", "state.json"))
		if err := store.Save(&State{}); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		if _, err := os.Stat(store.Path()); err != nil {
			t.Errorf("state file missing: %v", err)
		}
	})

	t.Run("NoTempFilesLeft", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStore(filepath.Join(dir, "state.json"))
		for i := 0; i < 3; i++ {
			if err := store.Save(&State{}); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("ReadDir() error = %v", err)
		}
		if len(entries) != 1 || entries[0].Name() != "state.json" {
			names := make([]string, len(entries))
			for i, e := range entries {
				names[i] = e.Name()
			}
			t.Errorf("directory holds %v, want only state.json", names)
		}
	})

	t.Run("NewerVersion", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "state.json")
		if err := os.WriteFile(path, []byte(`{"version": 99}`), 0644); err != nil {
			t.Fatal(err)
		}

		_, err := NewStore(path).Load()
		if !errors.Is(err, ErrUnsupportedVersion) {
			t.Errorf("Load() error = %v, want ErrUnsupportedVersion", err)
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "state.json")
		if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
			t.Fatal(err)
		}

		_, err := NewStore(path).Load()
		if err == nil || !strings.Contains(err.Error(), path) {
			t.Errorf("Load() error = %v, want a parse error naming the file", err)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStore(filepath.Join(dir, "state.json"))
		if err := store.Save(&State{}); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		if err := store.Clear(); err != nil {
			t.Fatalf("Clear() error = %v", err)
		}
		if got, _ := store.Load(); got != nil {
			t.Error("state should be gone after Clear")
		}
		// Clearing twice is fine.
		if err := store.Clear(); err != nil {
			t.Errorf("second Clear() error = %v", err)
		}
	})
}

func TestStoreSnapshotRoundTrip(t *testing.T) {
	tree, err := schema.BuildDefault()
	if err != nil {
		t.Fatalf("BuildDefault() error = %v", err)
	}
	set := map[string]any{
		"Speed":                                 42.0,
		"Cabin/Seat/Row2/PassengerSide/Heating": -15,
		"Body/Lights/LightSwitch":               "AUTO",
	}
	for path, v := range set {
		l, err := tree.Leaf(path)
		if err != nil {
			t.Fatalf("Leaf(%s) error = %v", path, err)
		}
		if err := l.SetValue(v); err != nil {
			t.Fatalf("SetValue(%s) error = %v", path, err)
		}
	}

	store := NewStore(filepath.Join(t.TempDir(), "state.json"))
	if err := store.SaveSnapshot(snapshot.Capture(tree, version.Current)); err != nil {
		t.Fatalf("SaveSnapshot() error = %v", err)
	}

	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if state.Leaves != len(set) {
		t.Errorf("Leaves = %d, want %d", state.Leaves, len(set))
	}
	if state.Fingerprint != schema.FormatFingerprint(schema.Fingerprint(tree)) {
		t.Errorf("Fingerprint = %s", state.Fingerprint)
	}
	if state.SchemaVersion != version.Current {
		t.Errorf("SchemaVersion = %q", state.SchemaVersion)
	}

	snap, err := store.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot() error = %v", err)
	}

	fresh, err := schema.BuildDefault()
	if err != nil {
		t.Fatalf("BuildDefault() error = %v", err)
	}
	if err := snapshot.Restore(fresh, snap, version.Current, schema.Fingerprint(fresh)); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	l, _ := fresh.Leaf("Cabin/Seat/Row2/PassengerSide/Heating")
	v, err := l.Value()
	if err != nil || v != int8(-15) {
		t.Errorf("Heating = %v (%v), want -15", v, err)
	}
	l, _ = fresh.Leaf("Body/Lights/LightSwitch")
	if v, _ := l.Value(); v != "AUTO" {
		t.Errorf("LightSwitch = %v, want AUTO", v)
	}
}
