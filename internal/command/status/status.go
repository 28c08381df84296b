package status

import (
	"flag"
	"fmt"
	"io"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "status" }
func (c *Command) Short() string     { return "S" }
func (c *Command) Aliases() []string { return []string{"st"} }
func (c *Command) Usage() string     { return "status" }
func (c *Command) Brief() string     { return "Show branches, staged files and working tree changes" }
func (c *Command) Help() string {
	return `Show the branches (current marked with '*'), the staged additions and
removals, modifications not staged for commit and untracked files.

Usage:
  gitlet status`
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
	st, err := r.Status()
	if err != nil {
		return err
	}

	w := ctx.Stdout
	fmt.Fprintln(w, "=== Branches ===")
	for _, b := range st.Branches {
		if b == st.Active {
			fmt.Fprintln(w, "*"+b)
		} else {
			fmt.Fprintln(w, b)
		}
	}
	section(w, "Staged Files", st.Staged)
	section(w, "Removed Files", st.Removed)

	mods := make([]string, 0, len(st.Modified))
	for _, m := range st.Modified {
		mods = append(mods, fmt.Sprintf("%s (%s)", m.Name, m.Kind))
	}
	section(w, "Modifications Not Staged For Commit", mods)
	section(w, "Untracked Files", st.Untracked)
	fmt.Fprintln(w)
	return nil
}

func section(w io.Writer, title string, lines []string) {
	fmt.Fprintf(w, "\n=== %s ===\n", title)
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithDebugArgsPrint(),
		),
	)
}
