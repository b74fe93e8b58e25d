package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/runner/clamp"
)

func addClamp(topLevel *cobra.Command) {
	po := &options.PickerOptions{}
	out := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "clamp [value]",
		Short: "Pull an attribute value into --min and --max.",
		Example: `
tempo clamp 2026-01-15 --min 2026-02-01
tempo clamp 23:10 --variant time --max 18:00
tempo clamp 2026-03-05T08:00 --variant date-time --min 2026-03-05
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, _, err := setup()
			if err != nil {
				return out.HandleError(err)
			}
			v, pc, err := po.Resolve(cfg)
			if err != nil {
				return out.HandleError(err)
			}
			pp, err := out.Printer()
			if err != nil {
				return err
			}
			c := clamp.Clamp{Variant: v, Config: pc, Value: args[0], Printer: pp}
			return out.HandleError(c.Do(ctx))
		},
	}

	options.AddPickerArgs(cmd, po)
	options.AddOutputArg(cmd, out)
	topLevel.AddCommand(cmd)
}
