// Package emit renders a derived build configuration in the formats build
// tools consume: plain argument lists, shell and make fragments, cgo
// directives, MSBuild property sheets and structured documents.
package emit

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/kballard/go-shellquote"
	toml "github.com/pelletier/go-toml/v2"
	builder "github.com/xplane-tools/xplconf/builder"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding accepted by Write.
type Format string

const (
	Lines   Format = "lines"
	Shell   Format = "shell"
	Make    Format = "make"
	Cgo     Format = "cgo"
	JSON    Format = "json"
	YAML    Format = "yaml"
	TOML    Format = "toml"
	MSBuild Format = "msbuild"
)

// Formats returns every supported format in a deterministic order.
func Formats() []Format {
	return []Format{Lines, Shell, Make, Cgo, JSON, YAML, TOML, MSBuild}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == s {
			return f, nil
		}
	}
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return "", fmt.Errorf("unknown format %q (want one of %s)", s, strings.Join(names, ", "))
}

// Section selects which half of a Config the flat formats print.  Structured
// formats (json, yaml, toml) always carry the whole Config.
type Section string

const (
	CFlags Section = "cflags"
	Libs   Section = "libs"
	All    Section = "all"
)

// Options controls Write.
type Options struct {
	Format  Format
	Section Section
	// DefinitionsOnly prints bare NAME=VALUE definitions instead of the full
	// compile flag list.
	DefinitionsOnly bool
	// LinkerArgs prints -l / -framework arguments instead of library names.
	LinkerArgs bool
	// Package is the package clause of cgo output.  Defaults to "xplm".
	Package string
}

// Write renders cfg to w.
func Write(w io.Writer, cfg builder.Config, opts Options) error {
	if opts.Section == "" {
		opts.Section = All
	}
	switch opts.Format {
	case Lines, "":
		return writeLines(w, tokens(cfg, opts))
	case Shell:
		_, err := fmt.Fprintln(w, shellquote.Join(tokens(cfg, opts)...))
		return err
	case Make:
		return writeMake(w, cfg, opts)
	case Cgo:
		return writeCgo(w, cfg, opts)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(cfg)
	case MSBuild:
		props, err := MSBuildProps(cfg)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, props+"\n")
		return err
	}
	return fmt.Errorf("emit: unsupported format %q", opts.Format)
}

func cflagTokens(cfg builder.Config, opts Options) []string {
	if opts.DefinitionsOnly {
		return cfg.Definitions
	}
	return cfg.CompileFlags
}

func libTokens(cfg builder.Config, opts Options) []string {
	if opts.LinkerArgs {
		return cfg.LinkerArgs
	}
	return cfg.Libraries
}

func tokens(cfg builder.Config, opts Options) []string {
	switch opts.Section {
	case CFlags:
		return cflagTokens(cfg, opts)
	case Libs:
		return libTokens(cfg, opts)
	}
	out := append([]string(nil), cflagTokens(cfg, opts)...)
	return append(out, libTokens(cfg, opts)...)
}

func writeLines(w io.Writer, toks []string) error {
	for _, t := range toks {
		if _, err := fmt.Fprintln(w, t); err != nil {
			return err
		}
	}
	return nil
}

// writeMake prints simply-expanded make variables.  Libraries are always
// rendered as linker arguments since make passes them straight to the linker.
func writeMake(w io.Writer, cfg builder.Config, opts Options) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# xplconf %s (%s)\n", cfg.Platform, cfg.Fingerprint)
	if opts.Section != Libs {
		fmt.Fprintf(&sb, "XPL_CFLAGS := %s\n", shellquote.Join(cflagTokens(cfg, opts)...))
	}
	if opts.Section != CFlags {
		fmt.Fprintf(&sb, "XPL_LDLIBS := %s\n", shellquote.Join(cfg.LinkerArgs...))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// writeCgo prints a Go source file whose preamble carries #cgo directives for
// the Config's platform, guarded by the matching build constraint.
func writeCgo(w io.Writer, cfg builder.Config, opts Options) error {
	if !cfg.Target().Valid() {
		return fmt.Errorf("emit: cgo output needs a Config built for a platform, got %s", cfg.Target())
	}
	pkg := opts.Package
	if pkg == "" {
		pkg = "xplm"
	}
	var sb strings.Builder
	sb.WriteString("// Code generated by xplconf; DO NOT EDIT.\n\n")
	fmt.Fprintf(&sb, "//go:build %s\n\n", cfg.Target().GOOS())
	fmt.Fprintf(&sb, "package %s\n\n", pkg)
	sb.WriteString("/*\n")
	if opts.Section != Libs {
		fmt.Fprintf(&sb, "#cgo CFLAGS: %s\n", shellquote.Join(cfg.CompileFlags...))
	}
	if opts.Section != CFlags {
		fmt.Fprintf(&sb, "#cgo LDFLAGS: %s\n", shellquote.Join(cfg.LinkerArgs...))
	}
	sb.WriteString("*/\n")
	sb.WriteString("import \"C\"\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
