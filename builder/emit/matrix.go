package emit

import (
	"fmt"
	"strings"

	builder "github.com/xplane-tools/xplconf/builder"
	"github.com/yosssi/gohtml"
	"gitlab.com/golang-commonmark/markdown"
)

func code(items []string) string {
	quoted := make([]string, 0, len(items))
	for _, it := range items {
		quoted = append(quoted, "`"+it+"`")
	}
	return strings.Join(quoted, " ")
}

// Matrix returns a Markdown document comparing the derived configuration of
// every supported platform for the given install roots.
func Matrix(b *builder.Builder) string {
	cfgs := b.BuildAll()

	var sb strings.Builder
	sb.WriteString("# X-Plane plugin build matrix\n\n")
	fmt.Fprintf(&sb, "libacfutils root: `%s`, SDK root: `%s`\n\n", b.AcfutilsRoot, b.SDKRoot)
	sb.WriteString("| Platform | Tag | Identity | Platform flags | Fingerprint |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, cfg := range cfgs {
		fmt.Fprintf(&sb, "| %s | `%s` | %s | %s | `%s` |\n",
			cfg.Platform, cfg.ShortTag,
			code(builder.IdentityDefinitions(cfg.Target())),
			code(builder.PlatformFlags(cfg.Target())),
			cfg.Fingerprint)
	}
	for _, cfg := range cfgs {
		fmt.Fprintf(&sb, "\n## %s\n\n", cfg.Platform)
		sb.WriteString("Compile flags:\n\n```\n")
		sb.WriteString(strings.Join(cfg.CompileFlags, "\n"))
		sb.WriteString("\n```\n\nLink libraries:\n\n```\n")
		sb.WriteString(strings.Join(cfg.Libraries, "\n"))
		sb.WriteString("\n```\n")
	}
	return sb.String()
}

// MatrixHTML renders Matrix as an indented XHTML fragment.
func MatrixHTML(b *builder.Builder) string {
	md := markdown.New(markdown.XHTMLOutput(true), markdown.Tables(true))
	return gohtml.Format(md.RenderToString([]byte(Matrix(b))))
}
