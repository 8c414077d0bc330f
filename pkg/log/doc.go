// Package log provides the access journal for signal trees.
//
// The journal records every read, write, reset, query, and restore performed
// through the inspect and snapshot packages as an Event. It is separate from
// operational logging (slog): the journal is a complete machine-readable
// trace of what happened to which leaf.
//
// # Basic Usage
//
// Callers configure journaling by providing a Logger implementation:
//
//	// For development: log to console via slog
//	journal := log.NewSlogAdapter(slog.Default())
//
//	// For production: append to a binary file
//	journal, _ := log.NewFileLogger("/var/lib/vss/access.vlog")
//
//	// Both: use MultiLogger
//	journal := log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Journal files are a sequence of CBOR-encoded events with integer keys
// (.vlog extension). Reader streams them back with optional filtering, and
// `vssctl journal` prints them.
package log
