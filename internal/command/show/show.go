package show

import (
	"flag"
	"fmt"

	gocid "github.com/ipfs/go-cid"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/command/log"
	"github.com/keshon/gitlet/internal/middleware"
	"github.com/keshon/gitlet/internal/repo/store/object"
	"github.com/keshon/gitlet/internal/util"
)

type Command struct{}

func (c *Command) Name() string      { return "show" }
func (c *Command) Short() string     { return "s" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "show <commit>" }
func (c *Command) Brief() string     { return "Show a commit and the files it tracks" }
func (c *Command) Help() string {
	return `Show one commit in log format followed by its files, one per line:
name, blob id and, for sha1/sha256 repositories, the blob's CIDv1.
The id may be abbreviated.

Usage:
  show <commit>`
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
	e, err := r.Show(ctx.Args[0])
	if err != nil {
		return err
	}
	if err := log.PrintEntry(ctx.Stdout, e); err != nil {
		return err
	}

	h := r.Store.BlobCtx.Hash
	for _, name := range util.SortedKeys(e.Commit.Files) {
		digest := e.Commit.Files[name]
		cid, err := object.CID(h, digest, gocid.Raw)
		if err != nil {
			// formats without a multihash code have no CID
			fmt.Fprintf(ctx.Stdout, "%s %s\n", name, digest)
			continue
		}
		fmt.Fprintf(ctx.Stdout, "%s %s %s\n", name, digest, cid)
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
