package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// platformCmd represents the platform command
var platformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Print the resolved target platform and its short tag",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := load(cmd); err != nil {
			return err
		}
		p, err := resolveTarget(c, os.LookupEnv, runtime.GOOS)
		if err != nil {
			return fmt.Errorf("platform: %w", err)
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", p, p.ShortTag())
		return err
	},
}

func init() {
	rootCmd.AddCommand(platformCmd)
}
