package commands

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
	goversion "go.hein.dev/go-version"
)

// Set with -ldflags "-X tableflip.dev/tempo/pkg/commands.version=..." on
// release builds.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion falls back to the module version and vcs stamp of a
// go install build.
func buildVersion() (string, string, string) {
	v, c, d := version, commit, date
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return v, c, d
	}
	if v == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		v = info.Main.Version
	}
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && c == "none":
			c = s.Value
		case s.Key == "vcs.time" && d == "unknown":
			d = s.Value
		}
	}
	return v, c, d
}

func addVersion(topLevel *cobra.Command) {
	var (
		short  bool
		output string
	)
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the tempo version.",
		Example: `
tempo version
tempo version -s
tempo version -o yaml
`,
		Run: func(cmd *cobra.Command, _ []string) {
			v, c, d := buildVersion()
			fmt.Fprint(cmd.OutOrStdout(), goversion.FuncWithOutput(short, v, c, d, output))
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print just the version number.")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format. One of 'yaml' or 'json'.")

	topLevel.AddCommand(cmd)
}
