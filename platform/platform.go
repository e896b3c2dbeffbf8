// Package platform resolves the build target operating system into the closed
// set of platforms the X-Plane SDK supports.
package platform

import (
	"fmt"
	"os"
)

// TargetEnv is the environment variable the surrounding build tool sets to the
// target operating system of the plugin being compiled.
const TargetEnv = "CARGO_CFG_TARGET_OS"

// Platform is one of the three operating systems a plugin can target.  The
// zero value is not a valid Platform; obtain one from Resolve, Current or
// FromGOOS.
type Platform int

const (
	Windows Platform = iota + 1
	MacOs
	Linux
)

// LookupFunc has the shape of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// All returns every supported platform in a deterministic order.
func All() []Platform {
	return []Platform{Windows, MacOs, Linux}
}

// Identifiers returns the identifier token of every supported platform, in the
// same order as All.
func Identifiers() []string {
	ids := make([]string, 0, 3)
	for _, p := range All() {
		ids = append(ids, p.String())
	}
	return ids
}

// Resolve maps an identifier token to its Platform.  Matching is exact and
// case-sensitive: "windows", "macos" and "linux" are the only accepted values.
// Anything else returns an *UnrecognizedPlatformError; Resolve never falls back
// to a default platform.
func Resolve(identifier string) (Platform, error) {
	switch identifier {
	case "windows":
		return Windows, nil
	case "macos":
		return MacOs, nil
	case "linux":
		return Linux, nil
	}
	return 0, &UnrecognizedPlatformError{Value: identifier}
}

// Current resolves the platform named by the TargetEnv environment variable.
func Current() (Platform, error) {
	return CurrentFrom(os.LookupEnv, TargetEnv)
}

// CurrentFrom resolves the platform named by variable, read through lookup.
// An unset variable is reported as *MissingTargetEnvironmentError.  A set but
// empty variable is handed to Resolve and rejected there.
func CurrentFrom(lookup LookupFunc, variable string) (Platform, error) {
	value, ok := lookup(variable)
	if !ok {
		return 0, &MissingTargetEnvironmentError{Variable: variable}
	}
	return Resolve(value)
}

// FromGOOS maps a runtime.GOOS value onto a Platform.  It is only used when a
// caller explicitly asks for the host platform.
func FromGOOS(goos string) (Platform, error) {
	switch goos {
	case "windows":
		return Windows, nil
	case "darwin":
		return MacOs, nil
	case "linux":
		return Linux, nil
	}
	return 0, &UnrecognizedPlatformError{Value: goos}
}

// Valid reports whether p is one of the declared platforms.
func (p Platform) Valid() bool {
	switch p {
	case Windows, MacOs, Linux:
		return true
	}
	return false
}

// String returns the identifier token Resolve accepts for p.
func (p Platform) String() string {
	switch p {
	case Windows:
		return "windows"
	case MacOs:
		return "macos"
	case Linux:
		return "linux"
	}
	return fmt.Sprintf("Platform(%d)", int(p))
}

// ShortTag returns the abbreviation libacfutils uses for the platform-specific
// directory of its redistributable tree.
func (p Platform) ShortTag() string {
	switch p {
	case Windows:
		return "mingw64"
	case MacOs:
		return "mac64"
	case Linux:
		return "lin64"
	}
	panic(invalid(p))
}

// GOOS returns the Go build-constraint name for p.
func (p Platform) GOOS() string {
	switch p {
	case Windows:
		return "windows"
	case MacOs:
		return "darwin"
	case Linux:
		return "linux"
	}
	panic(invalid(p))
}

func invalid(p Platform) string {
	return fmt.Sprintf("platform: invalid %s", p)
}
