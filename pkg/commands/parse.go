package commands

import (
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/runner/parse"
)

func addParse(topLevel *cobra.Command) {
	po := &options.PickerOptions{}
	out := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "parse [text]",
		Short: base.Wrap80("Read free-form text the way a picker field does and print the committed value."),
		Example: `
tempo parse "March 5, 2026"
tempo parse 05/03/26 --locale en-GB
tempo parse "9:30pm" --variant time
tempo parse "2026-03-01 to 2026-03-04" --variant date-range -o yaml
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, log, err := setup()
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
			p := parse.Parse{
				Variant: v,
				Config:  pc,
				Text:    strings.Join(args, " "),
				Logger:  log,
				Printer: pp,
			}
			return out.HandleError(p.Do(ctx))
		},
	}

	options.AddPickerArgs(cmd, po)
	options.AddOutputArg(cmd, out)
	topLevel.AddCommand(cmd)
}
