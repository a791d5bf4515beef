package contract

import (
	"errors"
	"fmt"
	"strings"
)

// ConfigError reports malformed or missing configuration. It is fatal and
// aborts before any rendering happens.
type ConfigError struct {
	Field string
	Msg   string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration for %s: %s", e.Field, e.Msg)
}

// RepoAccessError reports that a configured repository path is invalid,
// inaccessible, or failed to fetch. It is recovered per repository: that
// repository's table is skipped with a notice while the others proceed.
type RepoAccessError struct {
	Repo string
	Err  error
}

// Error implements the error interface.
func (e *RepoAccessError) Error() string {
	return fmt.Sprintf("cannot access repository %s: %v", e.Repo, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *RepoAccessError) Unwrap() error {
	return e.Err
}

// RenderError reports a display option combination that cannot produce a
// table. It is fatal for the affected table only.
type RenderError struct {
	Msg string
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	return "cannot render table: " + e.Msg
}

// FormatError renders an error for the terminal. The default is a terse
// single line; with full detail enabled, every wrapped cause is printed on
// its own indented line.
func FormatError(err error, full bool) string {
	if err == nil {
		return ""
	}
	if !full {
		return err.Error()
	}
	var b strings.Builder
	b.WriteString(err.Error())
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		b.WriteString("\n  caused by: ")
		b.WriteString(cause.Error())
	}
	return b.String()
}
