package globallog

import (
	"flag"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/command/log"
	"github.com/keshon/gitlet/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "global-log" }
func (c *Command) Short() string     { return "G" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "global-log" }
func (c *Command) Brief() string     { return "Show every commit ever made" }
func (c *Command) Help() string {
	return `Show every commit in the repository, in no particular order.

Usage:
  gitlet global-log`
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
	entries, err := r.GlobalLog()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := log.PrintEntry(ctx.Stdout, e); err != nil {
			return err
		}
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
