package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sdv-model/vss-go/pkg/schema"
	"github.com/sdv-model/vss-go/pkg/snapshot"
)

// StateVersion is the current version of the state file format.
const StateVersion = 1

// ErrUnsupportedVersion is returned when a state file was written by a newer
// format version.
var ErrUnsupportedVersion = errors.New("unsupported state file version")

// State is the content of a state file.
type State struct {
	// Version is the state file format version.
	Version int `json:"version"`

	// SavedAt is when the state was last saved.
	SavedAt time.Time `json:"saved_at"`

	// SchemaVersion and Fingerprint identify the schema of the saved tree.
	SchemaVersion string `json:"schema_version,omitempty"`
	Fingerprint   string `json:"fingerprint"`

	// Leaves is the number of set leaves in the snapshot.
	Leaves int `json:"leaves"`

	// Snapshot is the CBOR-encoded snapshot.
	Snapshot []byte `json:"snapshot"`
}

// Store manages persistence of tree state to a JSON file.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a new state store for the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the state file path.
func (s *Store) Path() string {
	return s.path
}

// Save persists state to disk. The file is replaced atomically, so a crash
// leaves either the old or the new state.
func (s *Store) Save(state *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	state.Version = StateVersion
	if state.SavedAt.IsZero() {
		state.SavedAt = time.Now()
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// SaveSnapshot encodes snap and saves it as the current state.
func (s *Store) SaveSnapshot(snap *snapshot.Snapshot) error {
	data, err := snapshot.Encode(snap)
	if err != nil {
		return err
	}
	return s.Save(&State{
		SchemaVersion: snap.SchemaVersion,
		Fingerprint:   schema.FormatFingerprint(snap.Fingerprint),
		Leaves:        snap.Len(),
		Snapshot:      data,
	})
}

// Load reads the state from disk.
// Returns nil, nil if the file doesn't exist (empty state).
func (s *Store) Load() (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	state := &State{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	if state.Version > StateVersion {
		return nil, fmt.Errorf("%w: %s has version %d, want at most %d",
			ErrUnsupportedVersion, s.path, state.Version, StateVersion)
	}

	return state, nil
}

// LoadSnapshot reads and decodes the saved snapshot.
// Returns nil, nil if no state has been saved.
func (s *Store) LoadSnapshot() (*snapshot.Snapshot, error) {
	state, err := s.Load()
	if err != nil || state == nil {
		return nil, err
	}
	return snapshot.Decode(state.Snapshot)
}

// Clear removes the state file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
