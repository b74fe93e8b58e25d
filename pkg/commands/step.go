package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/picker"
	"tableflip.dev/tempo/pkg/runner/step"
)

func addStep(topLevel *cobra.Command) {
	po := &options.PickerOptions{}
	out := &options.OutputOptions{}
	var (
		delta int
		shift bool
	)

	cmd := &cobra.Command{
		Use:   "step [value]",
		Short: base.Wrap80("Move a time by --step minutes the way the arrow keys do, five steps at once with --shift. Times wrap around midnight."),
		Example: `
tempo step 09:58 --step 5 --shift
tempo step 23:58 --step 5 --shift
tempo step 2026-03-05T10:00 --variant date-time --by -2 --step 15
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, _, err := setup()
			if err != nil {
				return out.HandleError(err)
			}
			if !cmd.Flags().Changed("variant") {
				po.Variant = string(picker.VariantTime)
			}
			v, pc, err := po.Resolve(cfg)
			if err != nil {
				return out.HandleError(err)
			}
			pp, err := out.Printer()
			if err != nil {
				return err
			}
			s := step.Step{Variant: v, Config: pc, Value: args[0], Delta: delta, Shift: shift, Printer: pp}
			return out.HandleError(s.Do(ctx))
		},
	}

	cmd.Flags().IntVar(&delta, "by", 1, "Number of steps, negative to go back.")
	cmd.Flags().BoolVar(&shift, "shift", false, "Step as if shift were held.")
	options.AddPickerArgs(cmd, po)
	options.AddOutputArg(cmd, out)
	topLevel.AddCommand(cmd)
}
