package command

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/keshon/gitlet/internal/errs"
	"github.com/keshon/gitlet/internal/logging"
	"github.com/keshon/gitlet/internal/repo"
)

// Runner executes commands from a command tree.
type Runner struct {
	Tree    *CommandTree
	Dir     string
	Stdout  io.Writer
	Stderr  io.Writer
	Log     logging.Logger
	Options *repo.Options
}

// RunCLI is the main entrypoint for executing commands.
// It runs args against the global tree in the current directory and returns
// the process exit code.
func RunCLI(args []string) int {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	log := logging.FromEnv()
	r := &Runner{
		Tree:    tree,
		Dir:     dir,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Log:     log,
		Options: &repo.Options{Logger: log},
	}
	return r.Run(args)
}

// Run resolves the command, applies flags and runs it. Expected failures are
// printed as a single line with exit code 0; anything else is an error with
// exit code 1.
func (r *Runner) Run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(r.Stdout, "Please enter a command.")
		return 0
	}

	node, remaining, err := r.Tree.Resolve(args)
	if err != nil {
		fmt.Fprintln(r.Stdout, "No command with that name exists.")
		return 0
	}

	cmd := node.Cmd

	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cmd.Flags(fs)
	operands := remaining
	if hasFlags(fs) {
		if err := fs.Parse(remaining); err != nil {
			fmt.Fprintln(r.Stdout, "Incorrect operands.")
			return 0
		}
		operands = fs.Args()
	}

	log := r.Log
	if log == nil {
		log = logging.Nop()
	}
	ctx := &Context{
		Args:    operands,
		Raw:     remaining,
		Flags:   fs,
		Dir:     r.Dir,
		Stdout:  r.Stdout,
		Stderr:  r.Stderr,
		Log:     log,
		Options: r.Options,
	}

	if err := cmd.Run(ctx); err != nil {
		if errs.IsExpected(err) {
			fmt.Fprintln(r.Stdout, err)
			return 0
		}
		fmt.Fprintln(r.Stderr, "Error:", err)
		return 1
	}
	return 0
}

// hasFlags reports whether the command defined any flag. Commands without
// flags receive their operands verbatim, including "--".
func hasFlags(fs *flag.FlagSet) bool {
	n := 0
	fs.VisitAll(func(*flag.Flag) { n++ })
	return n > 0
}
