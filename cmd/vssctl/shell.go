package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/sdv-model/vss-go/pkg/inspect"
	"github.com/sdv-model/vss-go/pkg/vss"
)

var shellCommands = []string{"help", "tree", "ls", "get", "set", "reset", "query", "save", "quit"}

func (c *cli) cmdShell() *cobra.Command {
	return &cobra.Command{
		GroupID: "tree",
		Use:     "shell",
		Short:   "Interactive shell with path completion",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(true, func(s *session) error {
				sh, err := newShell(s)
				if err != nil {
					return err
				}
				return sh.Run()
			})
		},
	}
}

// shell is the interactive command loop.
type shell struct {
	s         *session
	formatter *inspect.Formatter
	rl        *readline.Instance
	out       io.Writer
}

func newShell(s *session) (*shell, error) {
	sh := &shell{s: s, formatter: inspect.NewFormatter()}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.tree.Root().Name() + "> ",
		AutoComplete:    &completer{tree: s.tree},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	sh.rl = rl
	sh.out = rl.Stdout()
	return sh, nil
}

// Run reads commands until quit or EOF.
func (sh *shell) Run() error {
	defer sh.rl.Close()

	sh.printHelp()
	for {
		line, err := sh.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			// EOF
			return nil
		}
		if !sh.exec(line) {
			return nil
		}
	}
}

// exec runs one command line. It returns false when the shell should exit.
func (sh *shell) exec(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	_, rest := nextWord(line)

	var err error
	switch cmd {
	case "help", "?":
		sh.printHelp()
	case "tree", "t":
		err = sh.cmdTree(args)
	case "ls":
		err = sh.cmdList(args)
	case "get", "g":
		err = sh.cmdGet(args)
	case "set", "s":
		err = sh.cmdSet(rest)
	case "reset":
		err = sh.cmdReset(args)
	case "query", "q":
		err = sh.cmdQuery(args)
	case "save":
		if err = sh.s.save(); err == nil && sh.s.store != nil {
			fmt.Fprintf(sh.out, "Saved to %s\n", sh.s.store.Path())
		}
	case "quit", "exit":
		return false
	default:
		fmt.Fprintf(sh.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	if err != nil {
		fmt.Fprintf(sh.out, "Error: %v\n", err)
	}
	return true
}

func (sh *shell) printHelp() {
	fmt.Fprintln(sh.out, `
Signal Tree Commands:
  tree [path]        - Print the tree (or the subtree below path)
  ls [path]          - List the children of a branch or collection
  get <path>         - Read a leaf, or every leaf below a branch
  set <path> <value> - Write a leaf value
  reset <path>       - Return a leaf to the unset state
  query <expr>       - Select leaves with a JSONPath expression
  save               - Write the leaf values to the state file
  help               - Show this help
  quit               - Exit (values are saved when a state file is set)

Paths use "/" or "." separators; collection slots may be given by index,
e.g. Chassis/Axle/1/Wheel/2/Speed. Press Tab to complete paths.`)
}

func (sh *shell) cmdTree(args []string) error {
	info, err := sh.s.inspector.InspectNode(strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprint(sh.out, sh.formatter.FormatTree(info))
	return nil
}

func (sh *shell) cmdList(args []string) error {
	n, err := sh.s.inspector.Resolve(strings.Join(args, " "))
	if err != nil {
		return err
	}
	c, ok := n.(vss.Container)
	if !ok {
		fmt.Fprintln(sh.out, formatLeafLine(sh.formatter, n.(*vss.Leaf)))
		return nil
	}
	for _, child := range c.Children() {
		switch v := child.(type) {
		case *vss.Leaf:
			fmt.Fprintf(sh.out, "  %-32s %s %s\n", v.Name(), v.Kind(), v.Type())
		case *vss.Collection:
			fmt.Fprintf(sh.out, "  %-32s [%d]\n", v.Name()+"/", v.Len())
		default:
			fmt.Fprintf(sh.out, "  %s/\n", child.Name())
		}
	}
	return nil
}

func (sh *shell) cmdGet(args []string) error {
	if len(args) < 1 {
		fmt.Fprintln(sh.out, "Usage: get <path>")
		fmt.Fprintln(sh.out, "  Example: get Cabin/Seat/Row1/DriverSide/Heating")
		return nil
	}
	for _, path := range args {
		if err := printValues(sh.out, sh.s, sh.formatter, path); err != nil {
			return err
		}
	}
	return nil
}

// cmdSet takes the line after the command so the value keeps its spacing.
func (sh *shell) cmdSet(line string) error {
	path, value := nextWord(line)
	if path == "" || strings.TrimSpace(value) == "" {
		fmt.Fprintln(sh.out, "Usage: set <path> <value>")
		fmt.Fprintln(sh.out, "  Example: set Body/Lights/LightSwitch AUTO")
		return nil
	}
	if err := sh.s.inspector.WriteString(path, value); err != nil {
		return err
	}
	fmt.Fprintln(sh.out, "OK")
	return nil
}

// nextWord splits the first whitespace-separated word off s and returns it
// with the remainder, from which only the separating whitespace is removed.
func nextWord(s string) (word, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeftFunc(s[i:], unicode.IsSpace)
}

func (sh *shell) cmdReset(args []string) error {
	if len(args) < 1 {
		fmt.Fprintln(sh.out, "Usage: reset <path>")
		return nil
	}
	return sh.s.inspector.Reset(args[0])
}

func (sh *shell) cmdQuery(args []string) error {
	if len(args) < 1 {
		fmt.Fprintln(sh.out, "Usage: query <expr>")
		fmt.Fprintln(sh.out, "  Example: query $..TirePressure")
		return nil
	}
	leaves, err := sh.s.inspector.Query(strings.Join(args, " "))
	if err != nil {
		return err
	}
	for _, l := range leaves {
		fmt.Fprintln(sh.out, formatLeafLine(sh.formatter, l))
	}
	fmt.Fprintf(sh.out, "(%d leaves)\n", len(leaves))
	return nil
}

// completer completes command names and tree paths.
type completer struct {
	tree *vss.Tree
}

// Do implements readline.AutoCompleter. It returns the suffixes that extend
// the word under the cursor and the length of that word.
func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])
	start := strings.LastIndex(text, " ") + 1
	word := text[start:]

	var candidates []string
	if strings.TrimSpace(text[:start]) == "" {
		for _, cmd := range shellCommands {
			if strings.HasPrefix(cmd, word) {
				candidates = append(candidates, cmd+" ")
			}
		}
	} else {
		candidates = inspect.Complete(c.tree, word)
	}

	out := make([][]rune, 0, len(candidates))
	for _, cand := range candidates {
		// Complete matches names case-insensitively; readline inserts
		// only the suffix, so keep candidates that extend the word as typed.
		if !strings.HasPrefix(cand, word) {
			continue
		}
		out = append(out, []rune(cand[len(word):]))
	}
	return out, len([]rune(word))
}
