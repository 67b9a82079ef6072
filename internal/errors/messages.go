package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"

	"github.com/ariel-frischer/changelog/internal/changelog"
)

// Common error messages for the changelog CLI.
// These templates ensure consistent, actionable error messages.

// NoChangeEntries creates an error for a change entry directory with no files.
func NoChangeEntries(dir string) *CLIError {
	return &CLIError{
		Category: Input,
		Message:  "No change entries found.",
		Remediation: []string{
			fmt.Sprintf("Add a YAML file to %s describing this pull request", dir),
			"Example content:  fix: [\"Describe the fix\"]",
		},
		Err: changelog.ErrNoEntries,
	}
}

// DirectoryNotFound creates an error for a missing change entry directory.
func DirectoryNotFound(path string, err error) *CLIError {
	return &CLIError{
		Category: Input,
		Message:  fmt.Sprintf("directory not found: %s", path),
		Remediation: []string{
			"Create the directory with: mkdir -p " + path,
			"Or check that the path is correct",
		},
		Err: err,
	}
}

// EntryParseFailure creates an error for a change entry that is not valid YAML.
func EntryParseFailure(err *changelog.ParseError) *CLIError {
	return WrapWithMessage(err, Input,
		"change entry is not valid YAML",
		fmt.Sprintf("Fix the YAML syntax in %s", err.Filename),
		"Each file must hold a single YAML document",
	)
}

// InvalidVersion creates an error for a missing or malformed previous version.
func InvalidVersion(err *changelog.VersionError) *CLIError {
	remediation := []string{"The version field must be a semantic version such as 1.2.3"}
	if err.Source != "" {
		remediation = append(remediation, fmt.Sprintf("Check the \"version\" field in %s", err.Source))
	}
	return Wrap(err, Version, remediation...)
}

// InvalidConfig creates an error for configuration that fails to load or validate.
func InvalidConfig(err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		"invalid configuration",
		"Check .changelog.yml and CHANGELOG_* environment variables",
		"Run 'changelog --help' to see the accepted flags",
	)
}

// FromError converts domain errors into CLIErrors with remediation.
// Errors that are already CLIErrors are returned as is; anything else
// becomes a Runtime error.
func FromError(err error) *CLIError {
	if err == nil {
		return nil
	}
	if cliErr := AsCLIError(err); cliErr != nil {
		return cliErr
	}

	var (
		parseErr   *changelog.ParseError
		versionErr *changelog.VersionError
		schemaErr  *changelog.SchemaError
	)

	switch {
	case stderrors.As(err, &parseErr):
		return EntryParseFailure(parseErr)
	case stderrors.As(err, &versionErr):
		return InvalidVersion(versionErr)
	case stderrors.As(err, &schemaErr):
		return Wrap(err, Schema, "Fix the change entries listed above")
	case stderrors.Is(err, changelog.ErrNoEntries):
		return NoChangeEntries(".")
	case stderrors.Is(err, fs.ErrNotExist):
		return Wrap(err, Input, "Check that the path is correct")
	default:
		return Wrap(err, Runtime)
	}
}
