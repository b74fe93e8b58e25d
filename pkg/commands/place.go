package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/overlay"
	"tableflip.dev/tempo/pkg/runner/place"
)

func addPlace(topLevel *cobra.Command) {
	out := &options.OutputOptions{}
	var (
		anchor, panel, viewport, scroll string
		defaults                        = overlay.DefaultOptions()
		opts                            = defaults
		breakpoint                      float64
	)

	cmd := &cobra.Command{
		Use:   "place",
		Short: base.Wrap80("Compute where an anchored panel opens: below the anchor, or flipped above it when it does not fit."),
		Example: `
tempo place --anchor 100,20,200,32 --panel 300,320 --viewport 1024,768
tempo place --anchor 700,20,200,32 --panel 300,320 --viewport 1024,768 --scroll 0,400
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, _, err := setup()
			if err != nil {
				return out.HandleError(err)
			}
			p := place.Place{Options: opts, Breakpoint: breakpoint}
			if p.Anchor, err = place.ParseRect(anchor); err != nil {
				return out.HandleError(err)
			}
			if p.Panel, err = place.ParseSize(panel); err != nil {
				return out.HandleError(err)
			}
			if p.Viewport, err = place.ParseSize(viewport); err != nil {
				return out.HandleError(err)
			}
			if p.Scroll, err = place.ParsePoint(scroll); err != nil {
				return out.HandleError(err)
			}
			if p.Printer, err = out.Printer(); err != nil {
				return err
			}
			return out.HandleError(p.Do(ctx))
		},
	}

	cmd.Flags().StringVar(&anchor, "anchor", "",
		`Anchor box as top,left,width,height in viewport coordinates.`)
	cmd.Flags().StringVar(&panel, "panel", "",
		`Panel size as width,height.`)
	cmd.Flags().StringVar(&viewport, "viewport", "1024,768",
		`Viewport size as width,height.`)
	cmd.Flags().StringVar(&scroll, "scroll", "0,0",
		`Document scroll offset as x,y.`)
	cmd.Flags().Float64Var(&opts.Padding, "padding", defaults.Padding,
		"Distance kept from the viewport edges.")
	cmd.Flags().Float64Var(&opts.Gap, "gap", defaults.Gap,
		"Distance between the anchor and the panel.")
	cmd.Flags().Float64Var(&breakpoint, "sheet-breakpoint", overlay.DefaultSheetBreakpoint,
		"Viewport width below which the panel becomes a sheet.")
	_ = cmd.MarkFlagRequired("anchor")
	_ = cmd.MarkFlagRequired("panel")
	options.AddOutputArg(cmd, out)
	topLevel.AddCommand(cmd)
}
