package changelog

import (
	"fmt"

	"github.com/ariel-frischer/changelog/internal/yaml"
	yamlv3 "gopkg.in/yaml.v3"
)

const msgNotObject = "File contents were not parsed as an object."

// ValidateEntry checks a single entry against the change entry schema.
// A valid entry yields its decoded ChangeSet and no errors; an invalid one
// yields a nil ChangeSet and every violation found, in document order.
func ValidateEntry(e Entry) (ChangeSet, []ValidationError) {
	root := yaml.Resolve(e.Node)
	if root == nil || root.Kind != yamlv3.MappingNode {
		return nil, []ValidationError{{Filename: e.Filename, Message: msgNotObject}}
	}

	cs := make(ChangeSet)
	var errs []ValidationError
	fail := func(format string, args ...any) {
		errs = append(errs, ValidationError{Filename: e.Filename, Message: fmt.Sprintf(format, args...)})
	}

	for _, pair := range yaml.MappingPairs(root) {
		key := yaml.Resolve(pair.Key).Value
		value := yaml.Resolve(pair.Value)

		t := ChangeType(key)
		if !t.IsValid() {
			fail("Found unsupported change type %q. Supported keys: %s", key, supportedKeys())
			continue
		}
		if value == nil || value.Kind != yamlv3.SequenceNode {
			fail("Found non-array entry for %q key. Each change type entry must be an array of string messages.", key)
			continue
		}

		for idx, item := range value.Content {
			if !yaml.IsString(item) {
				fail("Found non-string array entry at \"%s.%d\". All array entries must be strings.", key, idx)
				continue
			}
			cs[t] = append(cs[t], yaml.Resolve(item).Value)
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return cs, nil
}

// Validate checks every entry and returns all violations, tagged with the
// file they came from. Entries are checked in order; an empty result means
// every entry is valid.
func Validate(entries []Entry) []ValidationError {
	var errs []ValidationError
	for _, e := range entries {
		_, entryErrs := ValidateEntry(e)
		errs = append(errs, entryErrs...)
	}
	return errs
}

// Condense merges the messages of all entries by change type, keeping the
// order in which files were loaded and then the order within each file.
// Returns a *SchemaError if any entry is invalid.
func Condense(entries []Entry) (ChangeSet, error) {
	condensed := make(ChangeSet)
	var errs []ValidationError

	for _, e := range entries {
		cs, entryErrs := ValidateEntry(e)
		if len(entryErrs) > 0 {
			errs = append(errs, entryErrs...)
			continue
		}
		condensed.Merge(cs)
	}

	if len(errs) > 0 {
		return nil, &SchemaError{Errors: errs}
	}
	return condensed, nil
}
