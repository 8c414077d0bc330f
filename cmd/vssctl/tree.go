package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sdv-model/vss-go/pkg/inspect"
	"github.com/sdv-model/vss-go/pkg/vss"
)

func (c *cli) cmdTree() *cobra.Command {
	f := inspect.NewFormatter()
	var setOnly bool

	cmd := &cobra.Command{
		GroupID: "tree",
		Use:     "tree [path]",
		Short:   "Print the tree, or the subtree below a path",
		Args:    cobra.MaximumNArgs(1),
		Example: `  vssctl tree Chassis/Axle/Row1
  vssctl tree Cabin.HVAC --metadata`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f.ShowUnset = !setOnly
			return c.run(false, func(s *session) error {
				path := ""
				if len(args) > 0 {
					path = args[0]
				}
				info, err := s.inspector.InspectNode(path)
				if err != nil {
					return err
				}
				fmt.Fprint(c.stdout, f.FormatTree(info))
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&f.ShowMetadata, "metadata", "m", false, "Show kind, data type, range and allowed values")
	cmd.Flags().BoolVar(&setOnly, "set-only", false, "Hide leaves without a value")
	return cmd
}

func (c *cli) cmdGet() *cobra.Command {
	f := inspect.NewFormatter()

	cmd := &cobra.Command{
		GroupID: "tree",
		Use:     "get path...",
		Short:   "Read leaf values",
		Long: `Read leaf values. A path naming a branch or collection prints every
leaf below it.`,
		Args: cobra.MinimumNArgs(1),
		Example: `  vssctl get Speed
  vssctl get Chassis/Axle/1/Wheel/2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(false, func(s *session) error {
				for _, path := range args {
					if err := printValues(c.stdout, s, f, path); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&f.ShowMetadata, "metadata", "m", false, "Show data types")
	return cmd
}

// printValues prints the value of the leaf at path, or of every leaf below it.
func printValues(w io.Writer, s *session, f *inspect.Formatter, path string) error {
	n, err := s.inspector.Resolve(path)
	if err != nil {
		return err
	}
	if _, ok := n.(*vss.Leaf); !ok {
		info, err := s.inspector.InspectNode(path)
		if err != nil {
			return err
		}
		fmt.Fprint(w, f.FormatValueTable(f.Rows(info)))
		return nil
	}

	value, l, err := s.inspector.Read(path)
	switch {
	case errors.Is(err, vss.ErrUnsetValue):
		fmt.Fprintf(w, "%s = <unset>\n", l.Path())
	case err != nil:
		return err
	default:
		fmt.Fprintf(w, "%s = %s\n", l.Path(), f.FormatValue(value, l.Spec().Unit))
	}
	return nil
}

func (c *cli) cmdSet() *cobra.Command {
	return &cobra.Command{
		GroupID: "tree",
		Use:     "set path value",
		Short:   "Write a leaf value",
		Long: `Write a leaf value. The value is parsed according to the leaf's data
type. Arrays are written as a comma-separated list or as a JSON array.`,
		Args: cobra.MinimumNArgs(2),
		Example: `  vssctl set Body/Lights/LightSwitch AUTO
  vssctl set Cabin/Infotainment/SmartphoneProjection/SupportedMode ANDROID_AUTO,APPLE_CARPLAY`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(true, func(s *session) error {
				text := strings.Join(args[1:], " ")
				if err := s.inspector.WriteString(args[0], text); err != nil {
					return err
				}
				return printValues(c.stdout, s, inspect.NewFormatter(), args[0])
			})
		},
	}
}

func (c *cli) cmdReset() *cobra.Command {
	return &cobra.Command{
		GroupID: "tree",
		Use:     "reset path...",
		Short:   "Return leaves to the unset state",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(true, func(s *session) error {
				for _, path := range args {
					if err := s.inspector.Reset(path); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func (c *cli) cmdQuery() *cobra.Command {
	f := inspect.NewFormatter()
	var count bool

	cmd := &cobra.Command{
		GroupID: "tree",
		Use:     "query expression",
		Short:   "Select leaves with a JSONPath expression",
		Long: `Select leaves with a JSONPath expression evaluated over the tree.
Branches and collections are objects keyed by child name. The leading "$."
may be omitted.`,
		Args: cobra.ExactArgs(1),
		Example: `  vssctl query '$.Cabin.Seat.*.*.Heating'
  vssctl query '$..TirePressure' --count`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(false, func(s *session) error {
				leaves, err := s.inspector.Query(args[0])
				if err != nil {
					return err
				}
				if count {
					fmt.Fprintln(c.stdout, len(leaves))
					return nil
				}
				for _, l := range leaves {
					fmt.Fprintln(c.stdout, formatLeafLine(f, l))
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&count, "count", "c", false, "Print only the number of matches")
	return cmd
}

// formatLeafLine formats "path = value" without journaling a read.
func formatLeafLine(f *inspect.Formatter, l *vss.Leaf) string {
	value, err := l.Value()
	if err != nil {
		return l.Path() + " = <unset>"
	}
	return l.Path() + " = " + f.FormatValue(value, l.Spec().Unit)
}
