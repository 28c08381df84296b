package branch

import (
	"flag"
	"fmt"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "branch" }
func (c *Command) Short() string     { return "B" }
func (c *Command) Aliases() []string { return []string{"br"} }
func (c *Command) Usage() string     { return "branch [<branch-name>]" }
func (c *Command) Brief() string     { return "List all branches or create a new one" }

func (c *Command) Help() string {
	return `List all branches or create a new one.

Usage:
  branch        - list all branches (current marked with '*')
  branch <name> - create a new branch at the current commit (does not switch to it)`
}
func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.Operands(ctx.Args, 0, 1); err != nil {
		return err
	}
	r, err := ctx.Repo()
	if err != nil {
		return err
	}

	// case 1: create new branch
	if len(ctx.Args) == 1 {
		return r.Branch(ctx.Args[0])
	}

	// case 2: list branches
	active, err := r.ActiveBranch()
	if err != nil {
		return fmt.Errorf("failed to determine current branch: %w", err)
	}
	all, err := r.Meta.ListBranches()
	if err != nil {
		return fmt.Errorf("failed to list branches: %w", err)
	}
	for _, b := range all {
		prefix := "  "
		if b.Name == active {
			prefix = "* "
		}
		fmt.Fprintln(ctx.Stdout, prefix+b.Name)
	}
	return nil
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithDebugArgsPrint(),
		),
	)
}
