package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/store"
	"tableflip.dev/tempo/pkg/telemetry"
)

var (
	debug = &options.DebugOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "tempo",
		Short: base.Wrap80("Parse, format, constrain and pick dates, times and ranges on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	options.AddDebugArg(cmd, debug)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addParse(topLevel)
	addFormat(topLevel)
	addClamp(topLevel)
	addNormalize(topLevel)
	addPlace(topLevel)
	addStep(topLevel)
	addPick(topLevel)
	addRecent(topLevel)
	addExport(topLevel)
	addCal(topLevel)
	addVersion(topLevel)
}

// setup loads the config file and builds the logger every runner shares.
func setup() (context.Context, store.Config, telemetry.Logger, error) {
	ctx, log := debug.Logger(context.Background())
	cfg, err := store.LoadConfig()
	if err != nil {
		return ctx, nil, log, err
	}
	return ctx, cfg, log, nil
}
