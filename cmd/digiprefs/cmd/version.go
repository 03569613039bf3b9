package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iiroan/digiprefs/internal/ui"
	"github.com/iiroan/digiprefs/internal/version"
)

var versionShort bool
var versionYAML bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information about digiprefs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Current()
		out := cmd.OutOrStdout()

		switch {
		case versionShort:
			fmt.Fprintln(out, info.Short())
		case versionYAML:
			data, err := info.YAML()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, data)
		default:
			fmt.Fprintln(out, ui.Banner())
			for _, field := range info.Fields() {
				fmt.Fprintf(out, "%s %s\n", ui.KeyStyle.Render(fmt.Sprintf("%-11s", field[0]+":")), field[1])
			}
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version")
	versionCmd.Flags().BoolVar(&versionYAML, "yaml", false, "Print version information as YAML")
}
