package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xplane-tools/xplconf/builder/emit"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the complete build configuration for the target platform",
	Long: `show prints every derived list (include directories, definitions,
compiler flags, libraries, linker arguments) together with the configuration
fingerprint.  Use --format cgo to generate a Go file carrying #cgo directives,
or --format msbuild for a Visual Studio property sheet.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := load(cmd); err != nil {
			return err
		}
		cfg, err := buildConfig()
		if err != nil {
			return fmt.Errorf("show: %w", err)
		}
		return render(cmd, cfg, emit.All)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	addRootFlags(showCmd)
	showCmd.Flags().String("format", string(emit.YAML), "output format (lines, shell, make, cgo, json, yaml, toml, msbuild)")
	showCmd.Flags().String("package", "xplm", "package name for --format cgo")
	showCmd.Flags().String("output", "", "write to this file instead of stdout")
}
