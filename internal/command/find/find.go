package find

import (
	"flag"
	"fmt"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "find" }
func (c *Command) Short() string     { return "F" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return `find "<message>"` }
func (c *Command) Brief() string     { return "Print the ids of commits with a given message" }
func (c *Command) Help() string {
	return `Print the id of every commit whose message is exactly the given one,
one per line.

Usage:
  find "<message>"`
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
	ids, err := r.Find(ctx.Args[0])
	if err != nil {
		return err
	}
	for _, id := range ids {
		fmt.Fprintln(ctx.Stdout, id)
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
