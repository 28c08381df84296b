package command

import (
	"flag"
	"io"

	"github.com/keshon/gitlet/internal/errs"
	"github.com/keshon/gitlet/internal/logging"
	"github.com/keshon/gitlet/internal/repo"
	"github.com/keshon/gitlet/internal/repo/store/worktree"
)

// Command represents a cli command
type Command interface {
	Name() string
	Short() string
	Aliases() []string
	Usage() string
	Brief() string
	Help() string
	Subcommands() []Command
	Flags(fs *flag.FlagSet)
	Run(ctx *Context) error
}

// Context represents a cli context
type Context struct {
	// Args are the operands left after flag parsing.
	Args []string
	// Raw are the arguments after the command name.
	Raw   []string
	Flags *flag.FlagSet

	Dir    string
	Stdout io.Writer
	Stderr io.Writer
	Log    logging.Logger

	// Options are passed to every repository the command opens.
	Options *repo.Options
}

// Repo opens the repository enclosing the context directory.
func (c *Context) Repo() (*repo.Repository, error) {
	return repo.Discover(c.Dir, c.Options)
}

// Name converts a file operand into a name relative to the working tree.
func (c *Context) Name(r *repo.Repository, arg string) (string, error) {
	return worktree.Name(r.Config.WorkingTreeRoot, c.Dir, arg)
}

// Operands fails unless args has one of the given lengths.
func Operands(args []string, counts ...int) error {
	for _, n := range counts {
		if len(args) == n {
			return nil
		}
	}
	return errs.New(errs.IncorrectOperands, "Incorrect operands.")
}
