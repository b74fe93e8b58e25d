package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/picker"
	"tableflip.dev/tempo/pkg/runner/normalize"
)

func addNormalize(topLevel *cobra.Command) {
	po := &options.PickerOptions{}
	out := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "normalize [start] [end]",
		Short: base.Wrap80("Order, clamp and validate a range. Pass an empty string for a missing endpoint."),
		Example: `
tempo normalize 2026-03-09 2026-03-02
tempo normalize 2026-03-02 "" --attr allow-partial=false
tempo normalize 2026-03-02T09:00 2026-03-02T17:00 --variant date-time-range --attr allow-same-day=false
`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, _, err := setup()
			if err != nil {
				return out.HandleError(err)
			}
			if !cmd.Flags().Changed("variant") {
				po.Variant = string(picker.VariantDateRange)
			}
			v, pc, err := po.Resolve(cfg)
			if err != nil {
				return out.HandleError(err)
			}
			pp, err := out.Printer()
			if err != nil {
				return err
			}
			n := normalize.Normalize{Variant: v, Config: pc, Start: args[0], Printer: pp}
			if len(args) > 1 {
				n.End = args[1]
			}
			return out.HandleError(n.Do(ctx))
		},
	}

	options.AddPickerArgs(cmd, po)
	options.AddOutputArg(cmd, out)
	topLevel.AddCommand(cmd)
}
