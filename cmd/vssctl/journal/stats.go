package journal

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/sdv-model/vss-go/pkg/log"
)

// Stats holds aggregate statistics about a journal.
type Stats struct {
	TotalEvents  int
	EventsByOp   map[log.Operation]int
	ErrorsByKind map[string]int
	Trees        map[string]*TreeStats
	WritesByPath map[string]int
	Errors       int
	TimeRange    struct {
		Start time.Time
		End   time.Time
	}
}

// TreeStats holds statistics for a single tree instance.
type TreeStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Sources   map[string]bool
}

// Collect reads the journal at path and aggregates its events.
func Collect(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByOp:   make(map[log.Operation]int),
		ErrorsByKind: make(map[string]int),
		Trees:        make(map[string]*TreeStats),
		WritesByPath: make(map[string]int),
	}

	err = reader.Each(func(event log.Event) error {
		stats.add(event)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}
	return stats, nil
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByOp[event.Operation]++

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	id := event.TreeID.String()
	tree, ok := s.Trees[id]
	if !ok {
		tree = &TreeStats{
			FirstSeen: event.Timestamp,
			LastSeen:  event.Timestamp,
			Sources:   make(map[string]bool),
		}
		s.Trees[id] = tree
	}
	tree.Events++
	if event.Timestamp.After(tree.LastSeen) {
		tree.LastSeen = event.Timestamp
	}
	if event.Source != "" {
		tree.Sources[event.Source] = true
	}

	if event.Error != nil {
		s.Errors++
		s.ErrorsByKind[event.Error.Kind]++
		return
	}
	if event.Operation == log.OpWrite {
		s.WritesByPath[event.Path]++
	}
}

// RunStats analyzes the journal at path and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := Collect(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Signal Tree Journal Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Operation:")
	for op := log.OpRead; op <= log.OpRestore; op++ {
		if count := stats.EventsByOp[op]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", op.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	if len(stats.WritesByPath) > 0 {
		fmt.Fprintln(w, "Most Written Leaves:")
		paths := make([]string, 0, len(stats.WritesByPath))
		for p := range stats.WritesByPath {
			paths = append(paths, p)
		}
		sort.Slice(paths, func(i, j int) bool {
			ci, cj := stats.WritesByPath[paths[i]], stats.WritesByPath[paths[j]]
			if ci != cj {
				return ci > cj
			}
			return paths[i] < paths[j]
		})
		if len(paths) > 10 {
			paths = paths[:10]
		}
		for _, p := range paths {
			fmt.Fprintf(w, "  %5d  %s\n", stats.WritesByPath[p], p)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Trees: %d\n", len(stats.Trees))
	if len(stats.Trees) > 0 {
		type treeInfo struct {
			id    string
			stats *TreeStats
		}
		trees := make([]treeInfo, 0, len(stats.Trees))
		for id, ts := range stats.Trees {
			trees = append(trees, treeInfo{id, ts})
		}
		sort.Slice(trees, func(i, j int) bool {
			return trees[i].stats.FirstSeen.Before(trees[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, t := range trees {
			duration := t.stats.LastSeen.Sub(t.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, duration %s\n", shortenID(t.id), t.stats.Events, duration)
			if len(t.stats.Sources) > 0 {
				sources := make([]string, 0, len(t.stats.Sources))
				for s := range t.stats.Sources {
					sources = append(sources, s)
				}
				sort.Strings(sources)
				fmt.Fprintf(w, "             Sources: %v\n", sources)
			}
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
		kinds := make([]string, 0, len(stats.ErrorsByKind))
		for k := range stats.ErrorsByKind {
			kinds = append(kinds, k)
		}
		sort.Strings(kinds)
		for _, k := range kinds {
			fmt.Fprintf(w, "  %-20s %d\n", k+":", stats.ErrorsByKind[k])
		}
	}
}
