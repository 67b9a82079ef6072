package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := map[string]struct {
		changes  ChangeSet
		expected ReleaseCategory
	}{
		"breaking alone": {
			changes:  ChangeSet{Breaking: {"Drop v1 API"}},
			expected: Major,
		},
		"breaking wins over everything": {
			changes: ChangeSet{
				Add: {"a", "b", "c"}, Fix: {"f"}, Breaking: {"x"}, Security: {"s"},
			},
			expected: Major,
		},
		"add without breaking": {
			changes:  ChangeSet{Add: {"New flag"}, Fix: {"f1", "f2"}},
			expected: Minor,
		},
		"fix only": {
			changes:  ChangeSet{Fix: {"f"}},
			expected: Patch,
		},
		"security and remove are patch level": {
			changes:  ChangeSet{Security: {"s"}, Remove: {"r"}, Deprecate: {"d"}, Change: {"c"}},
			expected: Patch,
		},
		"empty breaking list does not count": {
			changes:  ChangeSet{Breaking: {}, Add: {}, Fix: {"f"}},
			expected: Patch,
		},
		"empty set": {
			changes:  ChangeSet{},
			expected: Patch,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.changes))
		})
	}
}

func TestBump(t *testing.T) {
	tests := map[string]struct {
		prior    string
		category ReleaseCategory
		expected string
	}{
		"minor":                       {prior: "1.2.3", category: Minor, expected: "1.3.0"},
		"major":                       {prior: "1.2.3", category: Major, expected: "2.0.0"},
		"patch":                       {prior: "1.2.3", category: Patch, expected: "1.2.4"},
		"v prefix accepted":           {prior: "v0.9.1", category: Minor, expected: "0.10.0"},
		"from zero":                   {prior: "0.0.0", category: Patch, expected: "0.0.1"},
		"prerelease patch":            {prior: "1.3.0-rc.1", category: Patch, expected: "1.3.0"},
		"prerelease minor":            {prior: "1.3.0-rc.1", category: Minor, expected: "1.3.0"},
		"prerelease major":            {prior: "2.0.0-rc.1", category: Major, expected: "2.0.0"},
		"prerelease minor with patch": {prior: "1.3.1-rc.1", category: Minor, expected: "1.4.0"},
		"prerelease major with minor": {prior: "2.1.0-beta", category: Major, expected: "3.0.0"},
		"build metadata":              {prior: "1.0.0+build.5", category: Major, expected: "2.0.0"},
		"leading space":               {prior: " 1.2.3", category: Patch, expected: "1.2.4"},
		"trailing newline":            {prior: "1.2.3\n", category: Minor, expected: "1.3.0"},
		"padded v prefix":             {prior: "\tv1.2.3 ", category: Major, expected: "2.0.0"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Bump(tt.prior, tt.category)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBump_Errors(t *testing.T) {
	tests := map[string]struct {
		prior    string
		category ReleaseCategory
		isEmpty  bool
	}{
		"empty":            {prior: "", category: Patch, isEmpty: true},
		"whitespace":       {prior: "  ", category: Patch, isEmpty: true},
		"two components":   {prior: "1.2", category: Minor},
		"garbage":          {prior: "not-a-version", category: Minor},
		"unknown category": {prior: "1.2.3", category: "huge"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Bump(tt.prior, tt.category)
			assert.Empty(t, got)
			require.Error(t, err)

			var ve *VersionError
			require.ErrorAs(t, err, &ve)
			if tt.isEmpty {
				assert.ErrorIs(t, err, ErrEmptyVersion)
			} else {
				assert.Equal(t, tt.prior, ve.Version)
			}
		})
	}
}

func TestParseReleaseCategory(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected ReleaseCategory
		wantErr  bool
	}{
		"lower": {input: "minor", expected: Minor},
		"mixed": {input: " Major ", expected: Major},
		"patch": {input: "PATCH", expected: Patch},
		"bogus": {input: "epic", wantErr: true},
		"empty": {input: "", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseReleaseCategory(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
