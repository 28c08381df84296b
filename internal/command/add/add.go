package add

import (
	"flag"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "add" }
func (c *Command) Short() string     { return "A" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "add <file>" }
func (c *Command) Brief() string     { return "Stage a file for the next commit" }
func (c *Command) Help() string {
	return `Stage the current content of a file.

Adding a file whose content matches the current commit unstages it
instead, and cancels a pending removal.

Usage:
  add <file>`
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
	name, err := ctx.Name(r, ctx.Args[0])
	if err != nil {
		return err
	}
	return r.Add(name)
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithDebugArgsPrint(),
		),
	)
}
