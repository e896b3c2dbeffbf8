package confbuilder

import (
	"strings"

	"github.com/xplane-tools/xplconf/platform"
)

// frameworkPrefix marks a library entry as a macOS framework reference rather
// than a plain library name.
const frameworkPrefix = "framework="

// commonLibs is the fixed head of every link list: libacfutils followed by the
// redistributable libraries it is built against.
var commonLibs = []string{
	"acfutils",
	"lzma",
	"iconv",
	"cairo",
	"pixman-1",
	"freetype",
	"png16",
	"shp",
	"proj",
}

// LinkLibraries returns the ordered list of libraries a plugin must link on p.
// Order follows what the static libraries need from one another; entries that
// do not apply to p are left out, never duplicated.
func LinkLibraries(p platform.Platform) []string {
	libs := append([]string(nil), commonLibs...)
	libs = append(libs, glew(p))
	libs = append(libs, "curl", "ssl", "crypto")
	if p == platform.Windows {
		libs = append(libs, "gdi32")
	}
	libs = append(libs, "z")
	if p == platform.Windows {
		libs = append(libs, "ws2_32", "crypt32")
	}
	if p == platform.Linux {
		libs = append(libs, "pthread")
	}
	libs = append(libs, "xml2", "pcre2-8")
	if p == platform.Windows {
		libs = append(libs, "dbghelp", "psapi", "ssp", "bcrypt", "winmm")
	}
	return append(libs, openGL(p))
}

// glew returns the multi-context GLEW build for p.
func glew(p platform.Platform) string {
	switch p {
	case platform.Windows:
		return "glew32mx"
	case platform.MacOs, platform.Linux:
		return "GLEWmx"
	}
	panic("confbuilder: invalid " + p.String())
}

func openGL(p platform.Platform) string {
	switch p {
	case platform.Windows:
		return "opengl32"
	case platform.MacOs:
		return frameworkPrefix + "OpenGL"
	case platform.Linux:
		return "GL"
	}
	panic("confbuilder: invalid " + p.String())
}

// IsFramework reports whether lib is a framework reference and returns the
// framework name.
func IsFramework(lib string) (string, bool) {
	if !strings.HasPrefix(lib, frameworkPrefix) {
		return "", false
	}
	return strings.TrimPrefix(lib, frameworkPrefix), true
}

// LinkerArgs renders LinkLibraries(p) as linker arguments: "-lname" for plain
// libraries and "-framework Name" for framework references.
func LinkerArgs(p platform.Platform) []string {
	var args []string
	for _, lib := range LinkLibraries(p) {
		if name, ok := IsFramework(lib); ok {
			args = append(args, "-framework", name)
			continue
		}
		args = append(args, "-l"+lib)
	}
	return args
}
