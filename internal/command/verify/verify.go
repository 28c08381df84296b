package verify

import (
	"flag"
	"fmt"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/middleware"
	"github.com/keshon/gitlet/internal/progress"
	"github.com/keshon/gitlet/internal/repo/store/object"
)

type Command struct {
	quiet bool
}

func (c *Command) Name() string      { return "verify" }
func (c *Command) Short() string     { return "V" }
func (c *Command) Aliases() []string { return []string{"check"} }
func (c *Command) Usage() string     { return "verify [--quiet]" }
func (c *Command) Brief() string     { return "Verify repository integrity" }
func (c *Command) Help() string {
	return `Re-hash every stored commit and blob and report missing or damaged ones.

Options:
  -q, --quiet   Do not show progress.

Usage:
  gitlet verify`
}
func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&c.quiet, "quiet", false, "do not show progress")
	fs.BoolVar(&c.quiet, "q", false, "alias for --quiet")
}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.Operands(ctx.Args, 0); err != nil {
		return err
	}
	r, err := ctx.Repo()
	if err != nil {
		return err
	}

	var onCheck func(object.Check)
	var p *progress.ProgressTracker
	if !c.quiet {
		total, err := r.CountObjects()
		if err != nil {
			return err
		}
		p = progress.NewProgress(ctx.Stderr, total, "Verifying", "objects")
		onCheck = func(object.Check) { p.Increment() }
	}

	report, err := r.Verify(onCheck)
	if p != nil {
		p.Finish()
	}
	if err != nil {
		return err
	}

	for _, d := range report.Missing {
		fmt.Fprintf(ctx.Stdout, "missing %s\n", d)
	}
	for _, d := range report.Damaged {
		fmt.Fprintf(ctx.Stdout, "damaged %s\n", d)
	}
	if !report.OK() {
		return fmt.Errorf("%d of %d objects failed verification", len(report.Missing)+len(report.Damaged), report.Checked)
	}
	fmt.Fprintf(ctx.Stdout, "%d objects OK\n", report.Checked)
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
