package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/picker"
	"tableflip.dev/tempo/pkg/runner/recent"
	"tableflip.dev/tempo/pkg/store"
	"tableflip.dev/tempo/pkg/timeutil"
)

func addRecent(topLevel *cobra.Command) {
	out := &options.OutputOptions{}
	var since string

	cmd := &cobra.Command{
		Use:   "recent [id]",
		Short: "List the values remembered for a picker, or for all of them.",
		Example: `
tempo recent
tempo recent check-in -o json
tempo recent --since 1w2d
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := timeutil.ParseWindow(since)
			if err != nil {
				return out.HandleError(err)
			}
			ctx, cfg, log, err := setup()
			if err != nil {
				return out.HandleError(err)
			}
			rs, err := store.Load(cfg, log)
			if err != nil {
				return out.HandleError(err)
			}
			pp, err := out.Printer()
			if err != nil {
				return err
			}
			r := recent.Recent{Recents: rs, Since: window, Printer: pp}
			if len(args) > 0 {
				r.ID = picker.ComponentID(args[0])
			}
			return out.HandleError(r.Do(ctx))
		},
	}
	options.AddOutputArg(cmd, out)
	cmd.Flags().StringVar(&since, "since", "", "Only show values remembered within this window, e.g. 1w, 3d, 1w2d6h.")

	clearOut := &options.OutputOptions{}
	clearCmd := &cobra.Command{
		Use:   "clear [id]",
		Short: "Forget the values remembered for a picker, or for all of them.",
		Example: `
tempo recent clear check-in
tempo recent clear
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, log, err := setup()
			if err != nil {
				return clearOut.HandleError(err)
			}
			rs, err := store.Load(cfg, log)
			if err != nil {
				return clearOut.HandleError(err)
			}
			pp, err := clearOut.Printer()
			if err != nil {
				return err
			}
			c := recent.Clear{Recents: rs, Printer: pp}
			if len(args) > 0 {
				c.ID = picker.ComponentID(args[0])
			}
			return clearOut.HandleError(c.Do(ctx))
		},
	}
	options.AddOutputArg(clearCmd, clearOut)

	cmd.AddCommand(clearCmd)
	topLevel.AddCommand(cmd)
}
