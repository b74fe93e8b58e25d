package options

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/telemetry"
)

// DebugOptions
type DebugOptions struct {
	Debug bool
}

func AddDebugArg(cmd *cobra.Command, o *DebugOptions) {
	cmd.PersistentFlags().BoolVar(&o.Debug, "debug", false,
		"Log engine transitions and store activity.")
}

// Logger returns the logging context and a logger bound to it.
func (o *DebugOptions) Logger(ctx context.Context) (context.Context, telemetry.Logger) {
	ctx = telemetry.Context(ctx, o.Debug)
	return ctx, telemetry.NewClueLogger(ctx)
}
