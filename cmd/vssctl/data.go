package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sdv-model/vss-go/cmd/vssctl/journal"
	"github.com/sdv-model/vss-go/pkg/schema"
	"github.com/sdv-model/vss-go/pkg/snapshot"
	"github.com/sdv-model/vss-go/pkg/vss"
)

func (c *cli) cmdSchema() *cobra.Command {
	var fingerprint bool

	cmd := &cobra.Command{
		GroupID: "data",
		Use:     "schema",
		Short:   "Print the schema of the loaded tree",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(false, func(s *session) error {
				if fingerprint {
					fmt.Fprintf(c.stdout, "%s  %d leaves  %d nodes\n",
						schema.FormatFingerprint(s.fingerprint), s.tree.LeafCount(), s.tree.NodeCount())
					return nil
				}
				out, err := schema.Marshal(schema.Describe(s.tree, s.schemaVersion()))
				if err != nil {
					return err
				}
				_, err = c.stdout.Write(out)
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&fingerprint, "fingerprint", false, "Print only the schema fingerprint and sizes")

	cmd.AddCommand(&cobra.Command{
		Use:   "validate file...",
		Short: "Validate schema files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				def, err := schema.Load(path)
				if err != nil {
					return err
				}
				if err := def.Validate(); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				fp, err := def.Fingerprint()
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				fmt.Fprintf(c.stdout, "%s: OK, %d leaves, fingerprint %s\n",
					path, def.Leaves(), schema.FormatFingerprint(fp))
			}
			return nil
		},
	})
	return cmd
}

// leafRecord is the exported form of one leaf.
type leafRecord struct {
	Path     string `json:"path"`
	Kind     string `json:"kind"`
	DataType string `json:"datatype"`
	Unit     string `json:"unit,omitempty"`
	Value    any    `json:"value"`
}

func (c *cli) cmdExport() *cobra.Command {
	var (
		format string
		output string
		all    bool
	)

	cmd := &cobra.Command{
		GroupID: "data",
		Use:     "export",
		Short:   "Export leaf values as JSON, JSONL or CSV",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(false, func(s *session) error {
				w := c.stdout
				if output != "" {
					f, err := os.Create(output)
					if err != nil {
						return fmt.Errorf("failed to create output file: %w", err)
					}
					defer f.Close()
					w = f
				}
				return exportLeaves(w, s.tree.Leaves(), format, all)
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format (json, jsonl, csv)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&all, "all", false, "Include leaves without a value")
	return cmd
}

func exportLeaves(w io.Writer, leaves []*vss.Leaf, format string, all bool) error {
	records := make([]leafRecord, 0, len(leaves))
	for _, l := range leaves {
		value, err := l.Value()
		if err != nil && !all {
			continue
		}
		records = append(records, leafRecord{
			Path:     l.Path(),
			Kind:     l.Kind().String(),
			DataType: l.Type().String(),
			Unit:     l.Spec().Unit,
			Value:    value,
		})
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case "jsonl":
		enc := json.NewEncoder(w)
		for _, r := range records {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil
	case "csv":
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"path", "kind", "datatype", "unit", "value"}); err != nil {
			return err
		}
		for _, r := range records {
			value := ""
			if r.Value != nil {
				data, err := json.Marshal(r.Value)
				if err != nil {
					return err
				}
				value = string(data)
			}
			if err := cw.Write([]string{r.Path, r.Kind, r.DataType, r.Unit, value}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	default:
		return fmt.Errorf("unknown format: %s (supported: json, jsonl, csv)", format)
	}
}

func (c *cli) cmdSnapshot() *cobra.Command {
	cmd := &cobra.Command{
		GroupID: "data",
		Use:     "snapshot",
		Short:   "Save or restore a CBOR snapshot file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "save file",
		Short: "Write the current leaf values to a snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(false, func(s *session) error {
				snap := snapshot.Capture(s.tree, s.schemaVersion())
				f, err := os.Create(args[0])
				if err != nil {
					return err
				}
				if err := snapshot.Write(f, snap); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				fmt.Fprintf(c.stdout, "Saved %d values to %s\n", snap.Len(), args[0])
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "restore file",
		Short: "Replace the leaf values with those of a snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			snap, err := snapshot.Read(f)
			if err != nil {
				return err
			}

			return c.run(true, func(s *session) error {
				err := snapshot.Restore(s.tree, snap, s.schemaVersion(), s.fingerprint,
					snapshot.WithJournal(s.events), snapshot.WithSource(c.opts.Source))
				if err != nil {
					return err
				}
				fmt.Fprintf(c.stdout, "Restored %d values from %s\n", snap.Len(), args[0])
				return nil
			})
		},
	})
	return cmd
}

func (c *cli) cmdJournal() *cobra.Command {
	var opts journal.FilterOptions

	cmd := &cobra.Command{
		GroupID: "data",
		Use:     "journal",
		Short:   "View, export, filter or summarize a journal",
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.Operation, "op", "", "Filter by operation (read, write, reset, query, restore)")
	pf.StringVar(&opts.Path, "path", "", "Filter by path prefix")
	pf.StringVar(&opts.Source, "from", "", "Filter by source name")
	pf.StringVar(&opts.TimeStart, "time-start", "", "Filter by start time (RFC3339)")
	pf.StringVar(&opts.TimeEnd, "time-end", "", "Filter by end time (RFC3339)")
	pf.BoolVar(&opts.ErrorsOnly, "errors", false, "Show only failed operations")

	cmd.AddCommand(&cobra.Command{
		Use:   "view file",
		Short: "View a journal in human-readable format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := journal.ParseFilterOptions(opts)
			if err != nil {
				return err
			}
			return journal.RunView(args[0], filter, c.stdout)
		},
	})

	var format, output string
	export := &cobra.Command{
		Use:   "export file",
		Short: "Export a journal to JSONL or CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := journal.ParseFilterOptions(opts)
			if err != nil {
				return err
			}
			if output == "" {
				return journal.Export(args[0], format, filter, c.stdout)
			}
			return journal.RunExport(args[0], format, output, filter)
		},
	}
	export.Flags().StringVarP(&format, "format", "f", "jsonl", "Output format (jsonl, csv)")
	export.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	cmd.AddCommand(export)

	var filtered string
	filter := &cobra.Command{
		Use:   "filter file",
		Short: "Write matching events to a new journal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := journal.ParseFilterOptions(opts)
			if err != nil {
				return err
			}
			return journal.RunFilter(args[0], filtered, f, c.stdout)
		},
	}
	filter.Flags().StringVarP(&filtered, "output", "o", "", "Output journal (required)")
	_ = filter.MarkFlagRequired("output")
	cmd.AddCommand(filter)

	cmd.AddCommand(&cobra.Command{
		Use:   "stats file",
		Short: "Show statistics about a journal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return journal.RunStats(args[0], c.stdout)
		},
	})
	return cmd
}
