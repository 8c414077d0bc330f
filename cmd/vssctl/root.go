package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/sdv-model/vss-go/pkg/version"
)

// cli carries the shared flags and output streams into the commands.
type cli struct {
	opts   options
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:          "vssctl",
		Short:        "Inspect and edit a vehicle signal tree",
		Version:      version.Current,
		SilenceUsage: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.CompletionOptions.HiddenDefaultCmd = true

	flags := root.PersistentFlags()
	flags.StringVar(&c.opts.Schema, "schema", "", "Schema file (default: embedded vehicle schema)")
	flags.StringVar(&c.opts.State, "state", "", "State file holding leaf values between runs")
	flags.StringVar(&c.opts.Journal, "journal", "", "Journal file recording every access (.vlog)")
	flags.StringVar(&c.opts.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.StringVar(&c.opts.Source, "source", "vssctl", "Source name recorded in the journal")
	flags.BoolVar(&c.opts.Defaults, "defaults", false, "Apply schema defaults when no state was restored")

	root.AddGroup(&cobra.Group{ID: "tree", Title: "Tree Commands"})
	root.AddCommand(c.cmdTree())
	root.AddCommand(c.cmdGet())
	root.AddCommand(c.cmdSet())
	root.AddCommand(c.cmdReset())
	root.AddCommand(c.cmdQuery())
	root.AddCommand(c.cmdShell())

	root.AddGroup(&cobra.Group{ID: "data", Title: "Schema and Data Commands"})
	root.AddCommand(c.cmdSchema())
	root.AddCommand(c.cmdExport())
	root.AddCommand(c.cmdSnapshot())
	root.AddCommand(c.cmdJournal())

	return root
}

// run opens a session, calls fn, and saves the state afterwards when fn
// changed the tree.
func (c *cli) run(mutates bool, fn func(s *session) error) error {
	s, err := openSession(&c.opts, c.stderr)
	if err != nil {
		return err
	}
	defer s.close()

	if err := fn(s); err != nil {
		return err
	}
	if mutates {
		return s.save()
	}
	return nil
}
