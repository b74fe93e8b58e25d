package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/runner/cal"
)

func addCal(topLevel *cobra.Command) {
	po := &options.PickerOptions{}
	out := &options.OutputOptions{}
	c := cal.Cal{}

	cmd := &cobra.Command{
		Use:   "cal [month]",
		Short: "Print month grids, marking today, a value and the min/max bounds.",
		Example: `
tempo cal
tempo cal 2026-03 --months 3 --week-start monday
tempo cal 2026-03 --variant date-range --value '{"start":"2026-03-09","end":"2026-03-13"}'
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, _, err := setup()
			if err != nil {
				return out.HandleError(err)
			}
			if c.Variant, c.Config, err = po.Resolve(cfg); err != nil {
				return out.HandleError(err)
			}
			if c.Printer, err = out.Printer(); err != nil {
				return err
			}
			if len(args) > 0 {
				c.Month = args[0]
			}
			return out.HandleError(c.Do(ctx))
		},
	}

	cmd.Flags().IntVar(&c.Months, "months", 1, "Number of months to print.")
	cmd.Flags().StringVar(&c.Value, "value", "", "Attribute value to highlight.")
	options.AddPickerArgs(cmd, po)
	base.AddOutputArg(cmd, &out.OutputOptions)
	topLevel.AddCommand(cmd)
}
