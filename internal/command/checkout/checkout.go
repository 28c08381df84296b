package checkout

import (
	"flag"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/errs"
	"github.com/keshon/gitlet/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "checkout" }
func (c *Command) Short() string     { return "C" }
func (c *Command) Aliases() []string { return []string{"co"} }
func (c *Command) Usage() string     { return "checkout [<commit>] -- <file> | checkout <branch>" }
func (c *Command) Brief() string     { return "Restore a file or switch to another branch" }
func (c *Command) Help() string {
	return `Restore files or switch branches.

Usage:
  checkout -- <file>           - restore file from the current commit
  checkout <commit> -- <file>  - restore file from a commit (id may be abbreviated)
  checkout <branch>            - switch to branch; staging is cleared`
}
func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	args := ctx.Args
	switch {
	case len(args) == 2 && args[0] == "--":
		r, err := ctx.Repo()
		if err != nil {
			return err
		}
		name, err := ctx.Name(r, args[1])
		if err != nil {
			return err
		}
		return r.CheckoutFile(name)

	case len(args) == 3 && args[1] == "--":
		r, err := ctx.Repo()
		if err != nil {
			return err
		}
		name, err := ctx.Name(r, args[2])
		if err != nil {
			return err
		}
		return r.CheckoutFileAt(args[0], name)

	case len(args) == 1:
		r, err := ctx.Repo()
		if err != nil {
			return err
		}
		return r.CheckoutBranch(args[0])
	}
	return errs.New(errs.IncorrectOperands, "Incorrect operands.")
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
