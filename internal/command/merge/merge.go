package merge

import (
	"flag"
	"fmt"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/middleware"
	"github.com/keshon/gitlet/internal/repo"
)

type Command struct{}

func (c *Command) Name() string      { return "merge" }
func (c *Command) Short() string     { return "M" }
func (c *Command) Aliases() []string { return []string{"mg"} }
func (c *Command) Usage() string     { return "merge <branch-name>" }
func (c *Command) Brief() string     { return "Merge another branch into the current branch" }
func (c *Command) Help() string {
	return `Perform a three-way merge of the specified branch into the current branch.
If the current commit is an ancestor of the branch, the current branch is
fast-forwarded. Conflicting files are written with conflict markers and
committed as they are.`
}
func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.Operands(ctx.Args, 1); err != nil {
		return err
	}
	r, err := ctx.Repo()
	if err != nil {
		return err
	}

	res, err := r.Merge(ctx.Args[0])
	if err != nil {
		return err
	}
	switch {
	case res.Outcome == repo.MergeFastForward:
		fmt.Fprintln(ctx.Stdout, "Current branch fast-forwarded.")
	case res.Conflict:
		fmt.Fprintln(ctx.Stdout, "Encountered a merge conflict.")
	}
	return nil
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithDebugArgsPrint(),
			middleware.WithIntegrityCheck(),
		),
	)
}
