package log

import (
	"flag"
	"fmt"
	"io"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/middleware"
	"github.com/keshon/gitlet/internal/repo"
)

// DateLayout is the layout of the Date line of a log entry.
const DateLayout = "Mon Jan 2 15:04:05 2006 -0700"

type Command struct{}

func (c *Command) Name() string      { return "log" }
func (c *Command) Short() string     { return "L" }
func (c *Command) Aliases() []string { return []string{"commits"} }
func (c *Command) Usage() string     { return "log" }
func (c *Command) Brief() string     { return "Show the history of the current commit" }
func (c *Command) Help() string {
	return `Show commit logs, starting at the current commit and following
first parents back to the initial commit.

Usage:
  gitlet log`
}
func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.Operands(ctx.Args, 0); err != nil {
		return err
	}
	r, err := ctx.Repo()
	if err != nil {
		return err
	}
	entries, err := r.Log()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := PrintEntry(ctx.Stdout, e); err != nil {
			return err
		}
	}
	return nil
}

// PrintEntry writes one log entry followed by a blank line.
func PrintEntry(w io.Writer, e repo.LogEntry) error {
	t, err := e.Commit.Time()
	if err != nil {
		return fmt.Errorf("commit %s: %w", e.ID, err)
	}
	fmt.Fprintln(w, "===")
	fmt.Fprintf(w, "commit %s\n", e.ID)
	if e.Commit.IsMerge() {
		fmt.Fprintf(w, "Merge: %s %s\n", abbrev(e.Commit.Parents[0]), abbrev(e.Commit.Parents[1]))
	}
	fmt.Fprintf(w, "Date: %s\n", t.Local().Format(DateLayout))
	fmt.Fprintln(w, e.Commit.Message)
	fmt.Fprintln(w)
	return nil
}

func abbrev(id string) string {
	if len(id) > 7 {
		return id[:7]
	}
	return id
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithDebugArgsPrint(),
		),
	)
}
