package emit

import (
	"encoding/xml"
	"strings"

	builder "github.com/xplane-tools/xplconf/builder"
)

type msbuildProject struct {
	XMLName      xml.Name          `xml:"http://schemas.microsoft.com/developer/msbuild/2003 Project"`
	ToolsVersion string            `xml:"ToolsVersion,attr"`
	Properties   msbuildProperties `xml:"PropertyGroup"`
	Items        msbuildItems      `xml:"ItemDefinitionGroup"`
}

type msbuildProperties struct {
	Label       string `xml:"Label,attr"`
	Platform    string `xml:"XplconfPlatform"`
	Fingerprint string `xml:"XplconfFingerprint"`
}

type msbuildItems struct {
	Compile msbuildCompile `xml:"ClCompile"`
	Link    msbuildLink    `xml:"Link"`
}

type msbuildCompile struct {
	IncludeDirs string `xml:"AdditionalIncludeDirectories"`
	Definitions string `xml:"PreprocessorDefinitions"`
	Options     string `xml:"AdditionalOptions,omitempty"`
}

type msbuildLink struct {
	Dependencies string `xml:"AdditionalDependencies"`
}

// msbuildList joins items MSBuild-style and appends the inherited value of
// the named metadata so the sheet extends rather than replaces project
// settings.
func msbuildList(items []string, inherit string) string {
	parts := append(append([]string(nil), items...), "%("+inherit+")")
	return strings.Join(parts, ";")
}

// MSBuildProps renders cfg as an MSBuild property sheet that a Visual Studio
// project can import.  -I flags become AdditionalIncludeDirectories, -D flags
// become PreprocessorDefinitions, remaining switches go to AdditionalOptions
// and plain libraries become <name>.lib dependencies.  Framework references
// have no MSBuild equivalent and are left out.
func MSBuildProps(cfg builder.Config) (string, error) {
	var defs, opts []string
	for _, f := range cfg.CompileFlags {
		switch {
		case strings.HasPrefix(f, "-I"):
			// emitted from cfg.IncludeDirs
		case strings.HasPrefix(f, "-D"):
			defs = append(defs, strings.TrimPrefix(f, "-D"))
		default:
			opts = append(opts, f)
		}
	}
	var deps []string
	for _, lib := range cfg.Libraries {
		if _, ok := builder.IsFramework(lib); ok {
			continue
		}
		deps = append(deps, lib+".lib")
	}

	proj := msbuildProject{
		ToolsVersion: "4.0",
		Properties: msbuildProperties{
			Label:       "xplconf",
			Platform:    cfg.Platform,
			Fingerprint: cfg.Fingerprint,
		},
		Items: msbuildItems{
			Compile: msbuildCompile{
				IncludeDirs: msbuildList(cfg.IncludeDirs, "AdditionalIncludeDirectories"),
				Definitions: msbuildList(defs, "PreprocessorDefinitions"),
			},
			Link: msbuildLink{
				Dependencies: msbuildList(deps, "AdditionalDependencies"),
			},
		},
	}
	if len(opts) > 0 {
		proj.Items.Compile.Options = strings.Join(opts, " ") + " %(AdditionalOptions)"
	}
	out, err := xml.MarshalIndent(proj, "", "  ")
	if err != nil {
		return "", err
	}
	return xml.Header + string(out), nil
}
