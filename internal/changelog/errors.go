package changelog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoEntries is returned when a change entry directory holds no entries.
var ErrNoEntries = errors.New("no change entries found")

// ValidationError describes a single schema violation in one change entry.
type ValidationError struct {
	Filename string
	Message  string
}

func (e ValidationError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("[%s] %s", e.Filename, e.Message)
	}
	return e.Message
}

// SchemaError carries every violation found across a set of entries.
type SchemaError struct {
	Errors []ValidationError
}

func (e *SchemaError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	lines := make([]string, len(e.Errors))
	for i, ve := range e.Errors {
		lines[i] = ve.Error()
	}
	return fmt.Sprintf("%d validation errors:\n%s", len(e.Errors), strings.Join(lines, "\n"))
}

// ParseError is returned when a change entry cannot be decoded as YAML.
type ParseError struct {
	Filename string
	Line     int
	Err      error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parsing %s (line %d): %v", e.Filename, e.Line, e.Err)
	}
	return fmt.Sprintf("parsing %s: %v", e.Filename, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// VersionError is returned when the prior version is missing, malformed,
// or cannot be incremented.
type VersionError struct {
	Version string
	Source  string
	Err     error
}

func (e *VersionError) Error() string {
	var b strings.Builder
	b.WriteString("invalid previous version")
	if e.Version != "" {
		fmt.Fprintf(&b, " %q", e.Version)
	}
	if e.Source != "" {
		fmt.Fprintf(&b, " in %s", e.Source)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *VersionError) Unwrap() error {
	return e.Err
}
