// Package confbuilder derives the compiler flags and link libraries an X-Plane
// plugin built on libacfutils needs for each target platform.
package confbuilder

import (
	"github.com/xplane-tools/xplconf/platform"
)

// apiVersions are the SDK API levels the plugin is compiled against.  Every
// platform gets all of them, in this order.
var apiVersions = []string{
	"XPLM200=1",
	"XPLM210=1",
	"XPLM300=1",
	"XPLM301=1",
	"XPLM302=1",
	"XPLM303=1",
}

// commonFlags are passed on every platform: the language standard, the static
// link markers for liblzma and PCRE2, and PCRE2's code-unit width.
var commonFlags = []string{
	"-std=c11",
	"-DLZMA_API_STATIC",
	"-DPCRE2_STATIC",
	"-DPCRE2_CODE_UNIT_WIDTH=8",
}

// IdentityDefinitions returns the IBM/LIN/APL triple the SDK headers switch
// on.  Exactly one of the three is "=1".
func IdentityDefinitions(p platform.Platform) []string {
	switch p {
	case platform.Windows:
		return []string{"IBM=1", "LIN=0", "APL=0"}
	case platform.MacOs:
		return []string{"IBM=0", "LIN=0", "APL=1"}
	case platform.Linux:
		return []string{"IBM=0", "LIN=1", "APL=0"}
	}
	panic("confbuilder: invalid " + p.String())
}

// APIVersionDefinitions returns the XPLM API-level definitions.
func APIVersionDefinitions() []string {
	return append([]string(nil), apiVersions...)
}

// Definitions returns the identity triple followed by the API-level
// definitions in bare NAME=VALUE form, for consumers that add -D themselves.
func Definitions(p platform.Platform) []string {
	defs := IdentityDefinitions(p)
	return append(defs, apiVersions...)
}

// CommonFlags returns the platform-independent compiler switches.
func CommonFlags() []string {
	return append([]string(nil), commonFlags...)
}

// PlatformFlags returns the compiler switches only one platform needs.
//
//	windows: minimum Windows version (Vista) and static libxml2
//	macos:   libacfutils' thread-local storage override
//	linux:   GNU extensions
func PlatformFlags(p platform.Platform) []string {
	switch p {
	case platform.Windows:
		return []string{"-D_WIN32_WINNT=0x0600", "-DLIBXML_STATIC"}
	case platform.MacOs:
		return []string{"-DLACF_NO_THREAD_LOCAL=1"}
	case platform.Linux:
		return []string{"-D_GNU_SOURCE"}
	}
	panic("confbuilder: invalid " + p.String())
}

// IncludeDirs returns the four header search directories, in the order the
// compiler should search them.  The roots are joined with "/" as given and are
// never checked for existence.
func IncludeDirs(p platform.Platform, acfutilsRoot, sdkRoot string) []string {
	return []string{
		acfutilsRoot + "/include",
		acfutilsRoot + "/" + p.ShortTag() + "/include",
		sdkRoot + "/CHeaders/XPLM",
		sdkRoot + "/CHeaders/Widgets",
	}
}

// CompileFlags returns the complete compiler argument list for p: include
// flags, common flags, platform flags, the identity triple and the API-level
// definitions.
//
// Example (macos, "/acfutils", "/xplane_sdk"):
//
//	-I/acfutils/include -I/acfutils/mac64/include
//	-I/xplane_sdk/CHeaders/XPLM -I/xplane_sdk/CHeaders/Widgets
//	-std=c11 ... -DLACF_NO_THREAD_LOCAL=1
//	-DIBM=0 -DLIN=0 -DAPL=1 -DXPLM200=1 ... -DXPLM303=1
func CompileFlags(p platform.Platform, acfutilsRoot, sdkRoot string) []string {
	var flags []string
	for _, dir := range IncludeDirs(p, acfutilsRoot, sdkRoot) {
		flags = append(flags, "-I"+dir)
	}
	flags = append(flags, commonFlags...)
	flags = append(flags, PlatformFlags(p)...)
	for _, def := range Definitions(p) {
		flags = append(flags, "-D"+def)
	}
	return flags
}
