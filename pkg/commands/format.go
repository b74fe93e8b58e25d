package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/runner/format"
)

func addFormat(topLevel *cobra.Command) {
	po := &options.PickerOptions{}
	out := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "format [value]",
		Short: "Render an attribute value for display.",
		Example: `
tempo format 2026-03-05 --format locale --locale de-DE
tempo format 2026-03-05 --format custom --pattern "DD.MM.YYYY"
tempo format 21:30 --variant time --format 12h
tempo format '{"start":"2026-03-01","end":"2026-03-04"}' --variant date-range
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
			f := format.Format{Variant: v, Config: pc, Value: args[0], Printer: pp}
			return out.HandleError(f.Do(ctx))
		},
	}

	options.AddPickerArgs(cmd, po)
	options.AddOutputArg(cmd, out)
	topLevel.AddCommand(cmd)
}
