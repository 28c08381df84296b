package initcmd

import (
	"flag"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/errs"
	"github.com/keshon/gitlet/internal/middleware"
	"github.com/keshon/gitlet/internal/repo"
	"github.com/keshon/gitlet/internal/repo/store/object"
)

type Command struct {
	objectFormat string
	compress     bool
}

func (c *Command) Name() string      { return "init" }
func (c *Command) Short() string     { return "i" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "init [options]" }
func (c *Command) Brief() string     { return "Initialize a new repository" }
func (c *Command) Help() string {
	return `Initialize a new repository in the current directory.

Options:
      --object-format=<algo>  Hash algorithm: sha1, sha256 or xxh3 (default sha1).
      --compress              Store objects gzip-compressed.

Usage:
  gitlet init [options]

Examples:
  gitlet init
  gitlet init --object-format=sha256 --compress`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet) {
	fs.StringVar(&c.objectFormat, "object-format", config.DefaultHash, "hash algorithm")
	fs.BoolVar(&c.compress, "compress", false, "compress stored objects")
}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.Operands(ctx.Args, 0); err != nil {
		return err
	}
	if _, err := object.NewHasher(c.objectFormat); err != nil {
		return errs.New(errs.InvalidName, "Unknown object format %q.", c.objectFormat)
	}

	cfg := config.NewRepoConfig(ctx.Dir)
	cfg.HashFormat = c.objectFormat
	cfg.Compress = c.compress

	_, err := repo.InitAt(cfg, ctx.Options)
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
