package commit

import (
	"flag"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "commit" }
func (c *Command) Short() string     { return "c" }
func (c *Command) Aliases() []string { return []string{"ci"} }
func (c *Command) Usage() string     { return `commit "<message>"` }
func (c *Command) Brief() string     { return "Commit staged changes to the current branch" }
func (c *Command) Help() string {
	return `Create a new commit with the staged changes.

Usage:
  commit "<message>"`
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

	// a missing message is reported like an empty one
	message := ""
	if len(ctx.Args) == 1 {
		message = ctx.Args[0]
	}
	_, err = r.Commit(message)
	return err
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithDebugArgsPrint(),
		),
	)
}
