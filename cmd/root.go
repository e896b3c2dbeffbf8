package cmd

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xplane-tools/xplconf/config"
	"github.com/xplane-tools/xplconf/platform"
)

var cfgFile string
var c *config.Conf = &config.Conf{}

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "xplconf",
})

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "xplconf",
	Short: "Compiler and linker configuration for X-Plane plugins built on libacfutils",
	Long: `xplconf derives the compiler flags and link libraries an X-Plane plugin
needs for its target platform.  The target is taken from --target, from the
host with --host, or from the environment variable named by --target-env
(default ` + platform.TargetEnv + `), which the surrounding build sets.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("verbose") {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.xplconf.yaml)")
	rootCmd.PersistentFlags().String("target", "", "target platform (windows, macos, linux); overrides the environment")
	rootCmd.PersistentFlags().String("target-env", platform.TargetEnv, "environment variable naming the target platform")
	rootCmd.PersistentFlags().Bool("host", false, "target the platform xplconf is running on")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log resolution details to stderr")

	viper.BindPFlags(rootCmd.PersistentFlags())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".xplconf" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".xplconf")
	}

	viper.SetEnvPrefix("XPLCONF")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		logger.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}
