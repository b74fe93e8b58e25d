package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/picker"
	"tableflip.dev/tempo/pkg/runner/pick"
	"tableflip.dev/tempo/pkg/store"
)

func addPick(topLevel *cobra.Command) {
	po := &options.PickerOptions{}
	out := &options.OutputOptions{}
	var (
		values    []string
		noRecents bool
	)

	cmd := &cobra.Command{
		Use:   "pick [id:variant...]",
		Short: base.Wrap80("Open interactive pickers in the terminal and print what was committed."),
		Long: base.Wrap80(`Open interactive pickers in the terminal and print what was committed. ` +
			`Each argument adds a picker as id:variant; without arguments one picker of --variant is shown. ` +
			`Committed values are remembered per id and offered again with R.`),
		Example: `
tempo pick
tempo pick check-in:date check-out:date slot:time
tempo pick stay:date-range --week-start monday --value stay='{"start":"2026-03-01"}'
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, log, err := setup()
			if err != nil {
				return out.HandleError(err)
			}
			if len(args) == 0 {
				args = []string{po.Variant}
			}
			seeds := map[picker.ComponentID]string{}
			for _, kv := range values {
				id, value, ok := strings.Cut(kv, "=")
				if !ok {
					return out.HandleError(fmt.Errorf("value %q: want id=value", kv))
				}
				seeds[picker.ComponentID(id)] = value
			}

			p := pick.Pick{Logger: log, Debug: debug.Debug}
			for _, arg := range args {
				id, variant, err := pick.ParseField(arg)
				if err != nil {
					return out.HandleError(err)
				}
				v, pc, err := po.ResolveVariant(cfg, variant)
				if err != nil {
					return out.HandleError(err)
				}
				p.Fields = append(p.Fields, pick.Field{ID: id, Variant: v, Config: pc, Value: seeds[id]})
			}
			if !noRecents {
				if p.Recents, err = store.Load(cfg, log); err != nil {
					return out.HandleError(err)
				}
			}
			if p.Printer, err = out.Printer(); err != nil {
				return err
			}
			return out.HandleError(p.Do(ctx))
		},
	}

	cmd.Flags().StringArrayVar(&values, "value", nil,
		`Initial committed value as id=attribute.`)
	cmd.Flags().BoolVar(&noRecents, "no-recents", false,
		"Neither offer nor remember earlier values.")
	options.AddPickerArgs(cmd, po)
	options.AddOutputArg(cmd, out)
	topLevel.AddCommand(cmd)
}
