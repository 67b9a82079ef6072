package yaml

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestValidateSyntax_ValidYAML(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "simple key-value",
			input: "key: value",
		},
		{
			name:  "nested structure",
			input: "parent:\n  child: value",
		},
		{
			name:  "array",
			input: "items:\n  - one\n  - two",
		},
		{
			name:  "empty document",
			input: "",
		},
		{
			name:  "document with comment",
			input: "# comment\nkey: value",
		},
		{
			name: "multi-document",
			input: `---
doc1: value1
---
doc2: value2`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSyntax(strings.NewReader(tt.input))
			assert.NoError(t, err, "valid YAML should not error")
		})
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yml")
	require.NoError(t, os.WriteFile(good, []byte("line_width: 72\n"), 0o644))
	assert.NoError(t, ValidateFile(good))

	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("parent:\n child: value\n  grandchild: bad\n"), 0o644))
	err := ValidateFile(bad)
	require.Error(t, err)

	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, bad, se.File)
	assert.Greater(t, se.Line, 0)
	assert.Contains(t, err.Error(), bad+":")

	assert.Error(t, ValidateFile(filepath.Join(dir, "missing.yml")))
}

func TestDecodeDocument(t *testing.T) {
	tests := map[string]struct {
		input    string
		wantNil  bool
		wantKind yaml.Kind
	}{
		"empty stream": {
			input:   "",
			wantNil: true,
		},
		"mapping": {
			input:    "add:\n  - one\n",
			wantKind: yaml.MappingNode,
		},
		"sequence": {
			input:    "- one\n- two\n",
			wantKind: yaml.SequenceNode,
		},
		"scalar": {
			input:    "hello\n",
			wantKind: yaml.ScalarNode,
		},
		"explicit start marker": {
			input:    "---\nfix: [x]\n",
			wantKind: yaml.MappingNode,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			n, err := DecodeDocument(strings.NewReader(tt.input))
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, n)
				return
			}
			require.NotNil(t, n)
			assert.Equal(t, tt.wantKind, n.Kind)
		})
	}
}

func TestDecodeDocument_Errors(t *testing.T) {
	t.Run("multiple documents", func(t *testing.T) {
		_, err := DecodeDocument(strings.NewReader("a: 1\n---\nb: 2\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMultipleDocuments)
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := DecodeDocument(strings.NewReader("key: [unclosed\n"))
		require.Error(t, err)
		var se *SyntaxError
		assert.ErrorAs(t, err, &se)
	})

	t.Run("duplicate key", func(t *testing.T) {
		_, err := DecodeDocument(strings.NewReader("add:\n  - one\nfix: []\nadd:\n  - two\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateKey)

		var se *SyntaxError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, 4, se.Line)
		assert.Equal(t, `line 4: mapping key "add" already defined at line 1`, se.Error())
	})

	t.Run("nested duplicate key", func(t *testing.T) {
		_, err := DecodeDocument(strings.NewReader("outer:\n  - a: 1\n    a: 2\n"))
		assert.ErrorIs(t, err, ErrDuplicateKey)
	})

	t.Run("syntax error in second document", func(t *testing.T) {
		_, err := DecodeDocument(strings.NewReader("a: 1\n---\nb: [\n"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrMultipleDocuments)
	})
}

func TestDecodeDocument_RepeatedKeysAllowed(t *testing.T) {
	tests := map[string]string{
		"same key in sibling mappings": "- fix: [a]\n- fix: [b]\n",
		"repeated merge keys":          "<<: {add: [a]}\n<<: {fix: [b]}\n",
		"alias to anchored mapping":    "a: &m {fix: [x]}\nb: *m\n",
	}

	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeDocument(strings.NewReader(src))
			assert.NoError(t, err)
		})
	}
}

func TestMappingPairs(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected []string
	}{
		"plain mapping": {
			input:    "add: 1\nfix: 2\n",
			expected: []string{"add=1", "fix=2"},
		},
		"merge expands in place": {
			input:    "add: 1\n<<: {fix: 2, remove: 3}\nsecurity: 4\n",
			expected: []string{"add=1", "fix=2", "remove=3", "security=4"},
		},
		"explicit key wins over merged": {
			input:    "<<: {fix: merged}\nfix: own\n",
			expected: []string{"fix=own"},
		},
		"explicit key before merge wins": {
			input:    "fix: own\n<<: {fix: merged}\n",
			expected: []string{"fix=own"},
		},
		"first merged mapping wins": {
			input:    "<<: [{fix: first}, {fix: second, add: x}]\n",
			expected: []string{"fix=first", "add=x"},
		},
		"nested merge": {
			input:    "<<: {<<: {add: inner}, fix: outer}\n",
			expected: []string{"add=inner", "fix=outer"},
		},
		"scalar merge value kept": {
			input:    "<<: nope\n",
			expected: []string{"<<=nope"},
		},
		"quoted merge key is a plain key": {
			input:    "'<<': {fix: 1}\n",
			expected: []string{"<<="},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			n, err := DecodeDocument(strings.NewReader(tt.input))
			require.NoError(t, err)

			got := make([]string, 0, len(tt.expected))
			for _, p := range MappingPairs(n) {
				got = append(got, Resolve(p.Key).Value+"="+Resolve(p.Value).Value)
			}
			assert.Equal(t, tt.expected, got)
		})
	}

	assert.Nil(t, MappingPairs(nil))
}

func TestMappingPairs_MergeThroughAlias(t *testing.T) {
	n, err := DecodeDocument(strings.NewReader("base: &b {fix: 1, add: 2}\nlist:\n  add: 3\n  <<: *b\n"))
	require.NoError(t, err)

	pairs := MappingPairs(n)
	require.Len(t, pairs, 2)

	var got []string
	for _, p := range MappingPairs(pairs[1].Value) {
		got = append(got, Resolve(p.Key).Value+"="+Resolve(p.Value).Value)
	}
	assert.Equal(t, []string{"add=3", "fix=1"}, got)
}

func TestSyntaxError_Error(t *testing.T) {
	tests := map[string]struct {
		err      SyntaxError
		expected string
	}{
		"file and line": {
			err:      SyntaxError{File: "a.yml", Line: 3, Message: "boom"},
			expected: "a.yml:3: boom",
		},
		"file only": {
			err:      SyntaxError{File: "a.yml", Message: "boom"},
			expected: "a.yml: boom",
		},
		"line only": {
			err:      SyntaxError{Line: 7, Message: "boom"},
			expected: "line 7: boom",
		},
		"message only": {
			err:      SyntaxError{Message: "boom"},
			expected: "boom",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestIsString(t *testing.T) {
	n, err := DecodeDocument(strings.NewReader("- plain\n- 'quoted'\n- 12\n- true\n- ~\n- &a anchored\n- *a\n"))
	require.NoError(t, err)
	require.Len(t, n.Content, 7)

	expected := []bool{true, true, false, false, false, true, true}
	for i, want := range expected {
		assert.Equal(t, want, IsString(n.Content[i]), "item %d", i)
	}
	assert.False(t, IsString(nil))
}
