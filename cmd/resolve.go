package cmd

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	builder "github.com/xplane-tools/xplconf/builder"
	"github.com/xplane-tools/xplconf/builder/emit"
	"github.com/xplane-tools/xplconf/config"
	"github.com/xplane-tools/xplconf/platform"
)

// load binds the running command's flags and refreshes c.  Binding happens
// here rather than in init because several subcommands register flags with
// the same name and different defaults.
func load(cmd *cobra.Command) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	return viper.Unmarshal(c)
}

// resolveTarget picks the target platform.  An explicit --target wins, then
// --host, then the variable the surrounding build sets.  There is no silent
// fallback: if none of them yields a platform the error is returned.
func resolveTarget(conf *config.Conf, lookup platform.LookupFunc, goos string) (platform.Platform, error) {
	switch {
	case conf.Target != "":
		logger.Debug("resolving target from flag", "target", conf.Target)
		return platform.Resolve(conf.Target)
	case conf.Host:
		logger.Debug("resolving target from host", "goos", goos)
		return platform.FromGOOS(goos)
	}
	variable := conf.TargetEnv
	if variable == "" {
		variable = platform.TargetEnv
	}
	logger.Debug("resolving target from environment", "variable", variable)
	return platform.CurrentFrom(lookup, variable)
}

// buildConfig resolves the target and derives its Config from c.
func buildConfig() (builder.Config, error) {
	p, err := resolveTarget(c, os.LookupEnv, runtime.GOOS)
	if err != nil {
		return builder.Config{}, err
	}
	cfg := builder.New(c.AcfutilsDir, c.SdkDir).Build(p)
	logger.Debug("derived configuration",
		"platform", cfg.Platform,
		"tag", cfg.ShortTag,
		"flags", len(cfg.CompileFlags),
		"libraries", len(cfg.Libraries),
		"fingerprint", cfg.Fingerprint)
	return cfg, nil
}

// output returns the writer for --output, or the command's stdout when it is
// empty.  The returned close function must always be called.
func output(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, f.Close, nil
}

// render writes cfg in the configured format to the configured destination.
func render(cmd *cobra.Command, cfg builder.Config, section emit.Section) error {
	format, err := emit.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	w, closeOut, err := output(cmd, c.Output)
	if err != nil {
		return err
	}
	err = emit.Write(w, cfg, emit.Options{
		Format:          format,
		Section:         section,
		DefinitionsOnly: c.DefsOnly,
		LinkerArgs:      c.LinkerArgs,
		Package:         c.Package,
	})
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	if err == nil && c.Output != "" {
		logger.Info("wrote configuration", "path", c.Output, "format", format, "platform", cfg.Platform)
	}
	return err
}

// addRootFlags registers the install-root flags shared by the derivation
// commands.
func addRootFlags(cmd *cobra.Command) {
	cmd.Flags().String("acfutils", "libacfutils", "libacfutils redistributable root")
	cmd.Flags().String("sdk", "SDK", "X-Plane SDK root")
}
