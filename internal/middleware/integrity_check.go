package middleware

import (
	"fmt"

	"github.com/keshon/gitlet/internal/command"
)

// WithIntegrityCheck re-hashes the blobs of the current commit before a
// command that rewrites the working tree, and refuses to run when one is
// missing or damaged. Outside a repository the command runs unchecked and
// reports that itself.
func WithIntegrityCheck() command.Middleware {
	return func(cmd command.Command) command.Command {
		return &command.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *command.Context) error {
				r, err := ctx.Repo()
				if err != nil {
					return cmd.Run(ctx)
				}
				report, err := r.VerifyHead()
				if err != nil {
					return fmt.Errorf("repository verification failed: %w", err)
				}
				if !report.OK() {
					return fmt.Errorf(
						"repository verification failed: %d missing, %d damaged objects\nPlease run `gitlet verify` for details",
						len(report.Missing), len(report.Damaged),
					)
				}
				if ctx.Log != nil {
					ctx.Log.Debug("integrity ok", "cmd", cmd.Name(), "checked", report.Checked)
				}
				return cmd.Run(ctx)
			},
		}
	}
}
