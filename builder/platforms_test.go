package confbuilder

import (
	"reflect"
	"strings"
	"testing"

	"github.com/xplane-tools/xplconf/platform"
)

// TestIdentityDefinitions verifies that exactly one of IBM/LIN/APL is enabled
// for each platform and that the triple always appears in IBM, LIN, APL order.
func TestIdentityDefinitions(t *testing.T) {
	tests := []struct {
		p    platform.Platform
		want []string
	}{
		{platform.Windows, []string{"IBM=1", "LIN=0", "APL=0"}},
		{platform.MacOs, []string{"IBM=0", "LIN=0", "APL=1"}},
		{platform.Linux, []string{"IBM=0", "LIN=1", "APL=0"}},
	}
	for _, tt := range tests {
		t.Run(tt.p.String(), func(t *testing.T) {
			got := IdentityDefinitions(tt.p)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("IdentityDefinitions(%v) = %v; want %v", tt.p, got, tt.want)
			}
			on := 0
			for _, d := range got {
				if strings.HasSuffix(d, "=1") {
					on++
				} else if !strings.HasSuffix(d, "=0") {
					t.Errorf("definition %q is neither =0 nor =1", d)
				}
			}
			if on != 1 {
				t.Errorf("IdentityDefinitions(%v) enables %d platforms; want exactly 1", tt.p, on)
			}
		})
	}
}

// TestCompileFlags_IdentityPresent checks that the -D form of the identity
// triple is part of every compile flag list.
func TestCompileFlags_IdentityPresent(t *testing.T) {
	for _, p := range platform.All() {
		flags := CompileFlags(p, "/a", "/s")
		for _, def := range IdentityDefinitions(p) {
			if indexOf(flags, "-D"+def) < 0 {
				t.Errorf("CompileFlags(%v) missing -D%s: %v", p, def, flags)
			}
		}
	}
}

// TestAPIVersions verifies that the six API-level definitions appear in the
// same relative order, identically, for every platform, and close the list.
func TestAPIVersions(t *testing.T) {
	want := []string{"XPLM200=1", "XPLM210=1", "XPLM300=1", "XPLM301=1", "XPLM302=1", "XPLM303=1"}
	if got := APIVersionDefinitions(); !reflect.DeepEqual(got, want) {
		t.Fatalf("APIVersionDefinitions() = %v; want %v", got, want)
	}
	for _, p := range platform.All() {
		flags := CompileFlags(p, "/a", "/s")
		tail := flags[len(flags)-len(want):]
		for i, def := range want {
			if tail[i] != "-D"+def {
				t.Errorf("CompileFlags(%v) API flag %d = %q; want %q", p, i, tail[i], "-D"+def)
			}
		}
		defs := Definitions(p)
		if !reflect.DeepEqual(defs[3:], want) {
			t.Errorf("Definitions(%v)[3:] = %v; want %v", p, defs[3:], want)
		}
	}
}

// TestAPIVersionDefinitions_Copy guards the package-level list against callers
// that mutate the returned slice.
func TestAPIVersionDefinitions_Copy(t *testing.T) {
	got := APIVersionDefinitions()
	got[0] = "XPLM999=1"
	if APIVersionDefinitions()[0] != "XPLM200=1" {
		t.Error("mutating the returned slice changed later results")
	}
	common := CommonFlags()
	common[0] = "-std=c89"
	if CommonFlags()[0] != "-std=c11" {
		t.Error("mutating CommonFlags() changed later results")
	}
}

// TestCompileFlags_IncludePrefix pins the first four flags for each platform.
func TestCompileFlags_IncludePrefix(t *testing.T) {
	tests := []struct {
		p   platform.Platform
		tag string
	}{
		{platform.Windows, "mingw64"},
		{platform.MacOs, "mac64"},
		{platform.Linux, "lin64"},
	}
	for _, tt := range tests {
		t.Run(tt.p.String(), func(t *testing.T) {
			got := CompileFlags(tt.p, "/acfutils", "/xplane_sdk")[:4]
			want := []string{
				"-I/acfutils/include",
				"-I/acfutils/" + tt.tag + "/include",
				"-I/xplane_sdk/CHeaders/XPLM",
				"-I/xplane_sdk/CHeaders/Widgets",
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("CompileFlags(%v)[:4] = %v; want %v", tt.p, got, want)
			}
		})
	}
}

// TestCompileFlags_Full pins the complete macOS list so any reordering shows
// up as a test failure.
func TestCompileFlags_Full(t *testing.T) {
	want := []string{
		"-I/acfutils/include",
		"-I/acfutils/mac64/include",
		"-I/xplane_sdk/CHeaders/XPLM",
		"-I/xplane_sdk/CHeaders/Widgets",
		"-std=c11",
		"-DLZMA_API_STATIC",
		"-DPCRE2_STATIC",
		"-DPCRE2_CODE_UNIT_WIDTH=8",
		"-DLACF_NO_THREAD_LOCAL=1",
		"-DIBM=0",
		"-DLIN=0",
		"-DAPL=1",
		"-DXPLM200=1",
		"-DXPLM210=1",
		"-DXPLM300=1",
		"-DXPLM301=1",
		"-DXPLM302=1",
		"-DXPLM303=1",
	}
	got := CompileFlags(platform.MacOs, "/acfutils", "/xplane_sdk")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CompileFlags(macos) =\n%v\nwant\n%v", got, want)
	}
}

// TestPlatformFlags covers the per-platform switches and checks that none of
// them leak into another platform's list.
func TestPlatformFlags(t *testing.T) {
	want := map[platform.Platform][]string{
		platform.Windows: {"-D_WIN32_WINNT=0x0600", "-DLIBXML_STATIC"},
		platform.MacOs:   {"-DLACF_NO_THREAD_LOCAL=1"},
		platform.Linux:   {"-D_GNU_SOURCE"},
	}
	for p, flags := range want {
		if got := PlatformFlags(p); !reflect.DeepEqual(got, flags) {
			t.Errorf("PlatformFlags(%v) = %v; want %v", p, got, flags)
		}
		for other := range want {
			if other == p {
				continue
			}
			all := CompileFlags(other, "/a", "/s")
			for _, f := range flags {
				if indexOf(all, f) >= 0 {
					t.Errorf("CompileFlags(%v) contains %v-only flag %q", other, p, f)
				}
			}
		}
	}
}

// TestCompileFlags_Idempotent calls every derivation twice with the same
// inputs and expects identical output.
func TestCompileFlags_Idempotent(t *testing.T) {
	for _, p := range platform.All() {
		first := CompileFlags(p, "/acfutils", "/xplane_sdk")
		second := CompileFlags(p, "/acfutils", "/xplane_sdk")
		if !reflect.DeepEqual(first, second) {
			t.Errorf("CompileFlags(%v) differs between calls:\n%v\n%v", p, first, second)
		}
		if !reflect.DeepEqual(Definitions(p), Definitions(p)) {
			t.Errorf("Definitions(%v) differs between calls", p)
		}
	}
}

// TestIncludeDirs_PathsNotValidated confirms that roots are joined verbatim,
// including relative and Windows-style roots that do not exist.
func TestIncludeDirs_PathsNotValidated(t *testing.T) {
	got := IncludeDirs(platform.Windows, `C:\libacfutils`, "sdk")
	want := []string{
		`C:\libacfutils/include`,
		`C:\libacfutils/mingw64/include`,
		"sdk/CHeaders/XPLM",
		"sdk/CHeaders/Widgets",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("IncludeDirs = %v; want %v", got, want)
	}
}

func TestInvalidPlatformPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("CompileFlags on zero Platform did not panic")
		}
	}()
	CompileFlags(0, "/a", "/s")
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
