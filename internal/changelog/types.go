package changelog

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// ChangeType is the category of a change. The set is closed; any other key
// in a change entry is invalid.
type ChangeType string

const (
	Add       ChangeType = "add"
	Breaking  ChangeType = "breaking"
	Change    ChangeType = "change"
	Deprecate ChangeType = "deprecate"
	Fix       ChangeType = "fix"
	Remove    ChangeType = "remove"
	Security  ChangeType = "security"
)

// changeTypes is the declaration order, which is also the rendering order.
var changeTypes = []ChangeType{Add, Breaking, Change, Deprecate, Fix, Remove, Security}

// ChangeTypes returns every valid change type in rendering order.
func ChangeTypes() []ChangeType {
	out := make([]ChangeType, len(changeTypes))
	copy(out, changeTypes)
	return out
}

// IsValid returns true if t is one of the known change types.
func (t ChangeType) IsValid() bool {
	for _, ct := range changeTypes {
		if ct == t {
			return true
		}
	}
	return false
}

// Title returns the section title used in rendered markdown, e.g. "Deprecate".
func (t ChangeType) Title() string {
	return capitalizeFirst(string(t))
}

// supportedKeys lists the valid change types for error messages.
func supportedKeys() string {
	names := make([]string, len(changeTypes))
	for i, ct := range changeTypes {
		names[i] = string(ct)
	}
	return strings.Join(names, ", ")
}

// ChangeSet groups messages by change type. It is used both for the data of
// a single entry and for the condensed view across all entries.
type ChangeSet map[ChangeType][]string

// Has returns true if the set holds at least one message of type t.
func (cs ChangeSet) Has(t ChangeType) bool {
	return len(cs[t]) > 0
}

// Count returns the total number of messages across all types.
func (cs ChangeSet) Count() int {
	n := 0
	for _, msgs := range cs {
		n += len(msgs)
	}
	return n
}

// Merge appends the messages of other to cs, type by type.
func (cs ChangeSet) Merge(other ChangeSet) {
	for _, t := range changeTypes {
		if msgs := other[t]; len(msgs) > 0 {
			cs[t] = append(cs[t], msgs...)
		}
	}
}

// Entry is one change entry file as loaded from disk.
// Node is the root of the decoded YAML document, or nil for an empty file.
type Entry struct {
	Filename string
	Node     *yaml.Node
}

// ReleaseCategory is the semantic version bump implied by a change set.
type ReleaseCategory string

const (
	Major ReleaseCategory = "major"
	Minor ReleaseCategory = "minor"
	Patch ReleaseCategory = "patch"
)

// String implements fmt.Stringer.
func (c ReleaseCategory) String() string {
	return string(c)
}
