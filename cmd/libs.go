package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xplane-tools/xplconf/builder/emit"
)

// libsCmd represents the libs command
var libsCmd = &cobra.Command{
	Use:   "libs",
	Short: "Print the libraries to link for the target platform",
	Long: `libs prints the ordered link library list.  Plain entries are library
names; on macOS the OpenGL entry is a framework reference ("framework=OpenGL").
With --linker-args the list is rendered as -l/-framework arguments instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := load(cmd); err != nil {
			return err
		}
		cfg, err := buildConfig()
		if err != nil {
			return fmt.Errorf("libs: %w", err)
		}
		return render(cmd, cfg, emit.Libs)
	},
}

func init() {
	rootCmd.AddCommand(libsCmd)

	addRootFlags(libsCmd)

	libsCmd.Flags().String("format", string(emit.Lines), "output format (lines, shell, make, cgo, json, yaml, toml, msbuild)")
	libsCmd.Flags().Bool("linker-args", false, "print -l/-framework linker arguments instead of library names")
	libsCmd.Flags().String("output", "", "write to this file instead of stdout")
}
