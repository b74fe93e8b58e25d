package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/picker"
	"tableflip.dev/tempo/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	out := &options.OutputOptions{}
	var (
		variant = string(picker.VariantDateRange)
		e       = export.Export{}
	)

	cmd := &cobra.Command{
		Use:   "export [value]",
		Short: base.Wrap80("Print a committed value as an iCalendar event. Dates become all-day events, date-times become timed events."),
		Example: `
tempo export '{"start":"2026-03-01","end":"2026-03-04"}' --summary "Offsite"
tempo export 2026-03-05T09:30 --variant date-time --zone Europe/Berlin
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, _, err := setup()
			if err != nil {
				return out.HandleError(err)
			}
			if e.Variant, err = picker.ParseVariant(variant); err != nil {
				return out.HandleError(err)
			}
			e.Value = args[0]
			return out.HandleError(e.Do(ctx))
		},
	}

	cmd.Flags().StringVarP(&variant, "variant", "v", variant, "Picker variant the value came from.")
	cmd.Flags().StringVar(&e.Summary, "summary", "", "Event summary.")
	cmd.Flags().StringVar(&e.Description, "description", "", "Event description.")
	cmd.Flags().StringVar(&e.Zone, "zone", "", `Time zone for timed events, example: --zone="America/New_York". Floating when empty.`)
	cmd.Flags().StringVar(&e.UID, "uid", "", "Event UID. Generated when empty.")
	base.AddOutputArg(cmd, &out.OutputOptions)
	topLevel.AddCommand(cmd)
}
