package middleware

import (
	"github.com/keshon/gitlet/internal/command"
)

// WithDebugArgsPrint logs the command name and its arguments at debug level.
func WithDebugArgsPrint() command.Middleware {
	return func(cmd command.Command) command.Command {
		return &command.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *command.Context) error {
				if ctx.Log != nil {
					ctx.Log.Debug("run", "cmd", cmd.Name(), "args", ctx.Raw)
				}
				return cmd.Run(ctx)
			},
		}
	}
}
