package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/sdv-model/vss-go/pkg/inspect"
	"github.com/sdv-model/vss-go/pkg/log"
	"github.com/sdv-model/vss-go/pkg/persistence"
	"github.com/sdv-model/vss-go/pkg/schema"
	"github.com/sdv-model/vss-go/pkg/snapshot"
	"github.com/sdv-model/vss-go/pkg/version"
	"github.com/sdv-model/vss-go/pkg/vss"
)

// options holds the persistent flags shared by all commands.
type options struct {
	Schema   string
	State    string
	Journal  string
	LogLevel string
	Source   string
	Defaults bool
}

// session is one loaded tree together with its journal and state file.
type session struct {
	opts        *options
	logger      *slog.Logger
	def         *schema.Definition
	tree        *vss.Tree
	fingerprint uint64
	inspector   *inspect.Inspector
	store       *persistence.Store
	journal     *log.FileLogger
	events      log.Logger
}

// newLogger creates the operational logger writing to w.
func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info", "":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// openSession loads the schema, builds the tree and restores the saved state.
func openSession(opts *options, stderr io.Writer) (*session, error) {
	logger, err := newLogger(opts.LogLevel, stderr)
	if err != nil {
		return nil, err
	}

	s := &session{opts: opts, logger: logger}

	if opts.Schema == "" {
		s.def, err = schema.Default()
	} else {
		s.def, err = schema.Load(opts.Schema)
	}
	if err != nil {
		return nil, err
	}
	s.tree, err = schema.Build(s.def)
	if err != nil {
		return nil, err
	}
	s.fingerprint = schema.Fingerprint(s.tree)
	logger.Debug("Schema loaded",
		"root", s.tree.Root().Name(),
		"version", s.def.Version,
		"leaves", s.tree.LeafCount(),
		"fingerprint", schema.FormatFingerprint(s.fingerprint))

	journals := []log.Logger{log.NewSlogAdapter(logger)}
	if opts.Journal != "" {
		s.journal, err = log.NewFileLogger(opts.Journal)
		if err != nil {
			return nil, fmt.Errorf("opening journal: %w", err)
		}
		journals = append(journals, s.journal)
	}
	s.events = log.NewMultiLogger(journals...)

	restored := false
	if opts.State != "" {
		s.store = persistence.NewStore(opts.State)
		restored, err = s.restore()
		if err != nil {
			s.close()
			return nil, err
		}
	}
	// Defaults only seed a tree that has no saved state.
	if opts.Defaults && !restored {
		n := s.tree.ApplyDefaults()
		logger.Debug("Defaults applied", "leaves", n)
	}

	s.inspector = inspect.NewInspector(s.tree,
		inspect.WithJournal(s.events),
		inspect.WithSource(opts.Source))
	return s, nil
}

func (s *session) restore() (bool, error) {
	snap, err := s.store.LoadSnapshot()
	if err != nil {
		return false, fmt.Errorf("loading state: %w", err)
	}
	if snap == nil {
		s.logger.Debug("No saved state", "path", s.store.Path())
		return false, nil
	}

	err = snapshot.Restore(s.tree, snap, s.schemaVersion(), s.fingerprint,
		snapshot.WithJournal(s.events), snapshot.WithSource("restore"))
	if errors.Is(err, snapshot.ErrIncompatible) {
		return false, fmt.Errorf("state %s does not match the schema: %w", s.store.Path(), err)
	}
	if err != nil {
		// Entries that could not be restored are dropped with the next save.
		s.logger.Warn("State partially restored", "path", s.store.Path(), "error", err)
	}
	s.logger.Debug("State restored", "path", s.store.Path(), "leaves", snap.Len())
	return true, nil
}

// save writes the current leaf values to the state file, if one is configured.
func (s *session) save() error {
	if s.store == nil {
		return nil
	}
	snap := snapshot.Capture(s.tree, s.schemaVersion())
	if err := s.store.SaveSnapshot(snap); err != nil {
		return fmt.Errorf("saving state: %w", err)
	}
	s.logger.Debug("State saved", "path", s.store.Path(), "leaves", snap.Len())
	return nil
}

func (s *session) schemaVersion() string {
	if s.def.Version != "" {
		return s.def.Version
	}
	return version.Current
}

func (s *session) close() {
	if s.journal == nil {
		return
	}
	if dropped := s.journal.Dropped(); dropped > 0 {
		s.logger.Warn("Journal events dropped", "count", dropped)
	}
	if err := s.journal.Close(); err != nil {
		s.logger.Warn("Closing journal failed", "error", err)
	}
}
