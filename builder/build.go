package confbuilder

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/xplane-tools/xplconf/platform"
)

// fingerprintSpace is the namespace for Config fingerprints.  Changing it
// invalidates every fingerprint a build tool may have cached.
var fingerprintSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/xplane-tools/xplconf"))

// Config is every list derived for one platform and pair of install roots.
type Config struct {
	Platform     string   `json:"platform" yaml:"platform" toml:"platform"`
	ShortTag     string   `json:"short_tag" yaml:"short_tag" toml:"short_tag"`
	AcfutilsRoot string   `json:"acfutils_root" yaml:"acfutils_root" toml:"acfutils_root"`
	SDKRoot      string   `json:"sdk_root" yaml:"sdk_root" toml:"sdk_root"`
	IncludeDirs  []string `json:"include_dirs" yaml:"include_dirs" toml:"include_dirs"`
	Definitions  []string `json:"definitions" yaml:"definitions" toml:"definitions"`
	CompileFlags []string `json:"compile_flags" yaml:"compile_flags" toml:"compile_flags"`
	Libraries    []string `json:"libraries" yaml:"libraries" toml:"libraries"`
	LinkerArgs   []string `json:"linker_args" yaml:"linker_args" toml:"linker_args"`
	Fingerprint  string   `json:"fingerprint" yaml:"fingerprint" toml:"fingerprint"`

	target platform.Platform
}

// Target returns the platform the Config was built for.
func (c Config) Target() platform.Platform { return c.target }

// Builder derives Configs for one pair of install roots.  The zero value
// derives paths relative to empty roots.
type Builder struct {
	AcfutilsRoot string
	SDKRoot      string
}

// New returns a Builder for the given libacfutils and SDK install roots.
func New(acfutilsRoot, sdkRoot string) *Builder {
	return &Builder{
		AcfutilsRoot: acfutilsRoot,
		SDKRoot:      sdkRoot,
	}
}

// Build derives the complete Config for p.  It is a pure function of p and the
// Builder's roots.
func (b *Builder) Build(p platform.Platform) Config {
	cfg := Config{
		Platform:     p.String(),
		ShortTag:     p.ShortTag(),
		AcfutilsRoot: b.AcfutilsRoot,
		SDKRoot:      b.SDKRoot,
		IncludeDirs:  IncludeDirs(p, b.AcfutilsRoot, b.SDKRoot),
		Definitions:  Definitions(p),
		CompileFlags: CompileFlags(p, b.AcfutilsRoot, b.SDKRoot),
		Libraries:    LinkLibraries(p),
		LinkerArgs:   LinkerArgs(p),
		target:       p,
	}
	cfg.Fingerprint = Fingerprint(cfg.CompileFlags, cfg.Libraries)
	return cfg
}

// BuildAll builds a Config for every supported platform, in platform.All order.
func (b *Builder) BuildAll() []Config {
	var cfgs []Config
	for _, p := range platform.All() {
		cfgs = append(cfgs, b.Build(p))
	}
	return cfgs
}

// Fingerprint returns a name-based UUID over the compile flags and link
// libraries.  Equal inputs always produce the same fingerprint, so build tools
// can key caches on it.
func Fingerprint(compileFlags, libraries []string) string {
	// Each list is written as its length followed by length-prefixed entries,
	// so no two distinct pairs of lists share an encoding.
	var sb strings.Builder
	for _, list := range [][]string{compileFlags, libraries} {
		fmt.Fprintf(&sb, "%d;", len(list))
		for _, s := range list {
			fmt.Fprintf(&sb, "%d:%s", len(s), s)
		}
	}
	return uuid.NewSHA1(fingerprintSpace, []byte(sb.String())).String()
}
