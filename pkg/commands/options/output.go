package options

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/tempo/pkg/printers"
)

// OutputOptions adds --output to the cli-base --json flag.
type OutputOptions struct {
	base.OutputOptions
	Output string
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	base.AddOutputArg(cmd, &po.OutputOptions)
	cmd.Flags().StringVarP(&po.Output, "output", "o", "",
		"Output format. One of 'table', 'json' or 'yaml'.")
}

// Printer resolves the flags into a printer. --json wins over --output.
func (o *OutputOptions) Printer() (*printers.PrettyPrint, error) {
	if o.JSON {
		return &printers.PrettyPrint{Format: printers.FormatJSON}, nil
	}
	f, err := printers.ParseFormat(o.Output)
	if err != nil {
		return nil, err
	}
	return &printers.PrettyPrint{Format: f}, nil
}
