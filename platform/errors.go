package platform

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

var (
	// ErrUnrecognizedPlatform is matched by every *UnrecognizedPlatformError.
	ErrUnrecognizedPlatform = errors.New("unrecognized platform")
	// ErrMissingTargetEnvironment is matched by every *MissingTargetEnvironmentError.
	ErrMissingTargetEnvironment = errors.New("target environment variable not set")
)

// UnrecognizedPlatformError is returned when an identifier does not name a
// supported platform.
type UnrecognizedPlatformError struct {
	Value string
}

func (e *UnrecognizedPlatformError) Error() string {
	msg := fmt.Sprintf("unsupported target %q (want one of %s)", e.Value, strings.Join(Identifiers(), ", "))
	if hint := e.Suggestion(); hint != "" {
		msg += fmt.Sprintf("; did you mean %q?", hint)
	}
	return msg
}

func (e *UnrecognizedPlatformError) Unwrap() error { return ErrUnrecognizedPlatform }

// Suggestion returns the identifier that matches Value when case is ignored,
// or "" when there is none.  "MacOS" suggests "macos"; "freebsd" suggests
// nothing.
func (e *UnrecognizedPlatformError) Suggestion() string {
	fold := cases.Fold()
	want := fold.String(strings.TrimSpace(e.Value))
	for _, id := range Identifiers() {
		if id != e.Value && fold.String(id) == want {
			return id
		}
	}
	return ""
}

// MissingTargetEnvironmentError is returned when the variable naming the target
// operating system is absent, which means the tool was run outside the build
// that is supposed to drive it.
type MissingTargetEnvironmentError struct {
	Variable string
}

func (e *MissingTargetEnvironmentError) Error() string {
	return fmt.Sprintf("%s not set", e.Variable)
}

func (e *MissingTargetEnvironmentError) Unwrap() error { return ErrMissingTargetEnvironment }
