package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	entries := []Entry{
		mustEntry(t, "a.yml", "fix: [f1, f2]\nadd: [a1]\n"),
		mustEntry(t, "b.yml", "fix: [f3]\nremove: []\n"),
		mustEntry(t, "c.yml", "security: [s1]\n"),
	}

	s, err := Summarize(entries)
	require.NoError(t, err)

	assert.Equal(t, 3, s.Files)
	assert.Equal(t, Minor, s.Category)
	assert.Equal(t, 5, s.Messages())
	assert.Equal(t, []TypeSummary{
		{Type: Add, Messages: 1, Files: 1},
		{Type: Fix, Messages: 3, Files: 2},
		{Type: Security, Messages: 1, Files: 1},
	}, s.Types)
}

func TestSummarize_Errors(t *testing.T) {
	_, err := Summarize(nil)
	assert.ErrorIs(t, err, ErrNoEntries)

	_, err = Summarize([]Entry{mustEntry(t, "bad.yml", "- nope\n")})
	var se *SchemaError
	assert.ErrorAs(t, err, &se)
}
