package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xplane-tools/xplconf/builder/emit"
)

// cflagsCmd represents the cflags command
var cflagsCmd = &cobra.Command{
	Use:   "cflags",
	Short: "Print the compiler flags for the target platform",
	Long: `cflags prints the include, language, platform and SDK definition flags a
plugin needs, in the order the compiler should receive them.

Examples:
  # One flag per line, target taken from the build environment:
  CARGO_CFG_TARGET_OS=linux xplconf cflags --acfutils /opt/libacfutils --sdk /opt/SDK

  # Bare NAME=VALUE definitions for a bindings generator:
  xplconf cflags --target macos --defs-only

  # A single shell-quoted line:
  xplconf cflags --target windows --format shell`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := load(cmd); err != nil {
			return err
		}
		cfg, err := buildConfig()
		if err != nil {
			return fmt.Errorf("cflags: %w", err)
		}
		return render(cmd, cfg, emit.CFlags)
	},
}

func init() {
	rootCmd.AddCommand(cflagsCmd)

	addRootFlags(cflagsCmd)
	cflagsCmd.Flags().String("format", string(emit.Lines), "output format (lines, shell, make, cgo, json, yaml, toml, msbuild)")
	cflagsCmd.Flags().Bool("defs-only", false, "print bare NAME=VALUE definitions instead of compiler flags")
	cflagsCmd.Flags().String("output", "", "write to this file instead of stdout")
}
