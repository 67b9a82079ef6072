package yaml

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrMultipleDocuments is returned when a stream expected to hold a single
// document contains more than one.
var ErrMultipleDocuments = errors.New("expected a single YAML document")

// ErrDuplicateKey is wrapped when a mapping defines the same key twice.
var ErrDuplicateKey = errors.New("duplicate mapping key")

// mergeTag is the tag yaml.v3 gives a plain "<<" key.
const mergeTag = "!!merge"

// lineRe extracts the line number yaml.v3 embeds in its error messages.
var lineRe = regexp.MustCompile(`line (\d+)`)

// ValidateSyntax validates YAML syntax by streaming through the document.
// It uses yaml.Decoder to efficiently process large files without loading
// the entire content into memory.
//
// Returns nil if the YAML is syntactically valid, or an error with line
// information if syntax errors are found.
func ValidateSyntax(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	for {
		var n yaml.Node
		if err := dec.Decode(&n); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

// ValidateFile validates the YAML syntax of a file at the given path.
// Returns nil if valid, or a *SyntaxError with line information on failure.
func ValidateFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	if err := ValidateSyntax(f); err != nil {
		return newSyntaxError(path, err)
	}
	return nil
}

// DecodeDocument decodes exactly one YAML document from r and returns its
// root node with aliases left in place. An empty stream yields a nil node.
// Failures are returned as *SyntaxError; a second document in the stream
// wraps ErrMultipleDocuments and a repeated mapping key wraps ErrDuplicateKey.
func DecodeDocument(r io.Reader) (*yaml.Node, error) {
	dec := yaml.NewDecoder(r)

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, newSyntaxError("", err)
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); err != io.EOF {
		if err != nil {
			return nil, newSyntaxError("", err)
		}
		return nil, &SyntaxError{
			Line:    extra.Line,
			Message: ErrMultipleDocuments.Error(),
			Err:     ErrMultipleDocuments,
		}
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil
	}
	if err := checkDuplicateKeys(doc.Content[0]); err != nil {
		return nil, err
	}
	return doc.Content[0], nil
}

// checkDuplicateKeys walks n and fails on the first mapping that repeats a
// scalar key. Aliases are not followed since their anchors are checked
// where they are defined. Merge keys may repeat.
func checkDuplicateKeys(n *yaml.Node) error {
	if n == nil || n.Kind == yaml.AliasNode {
		return nil
	}

	if n.Kind == yaml.MappingNode {
		seen := make(map[string]int, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := Resolve(n.Content[i])
			if key == nil || key.Kind != yaml.ScalarNode || key.ShortTag() == mergeTag {
				continue
			}
			if line, ok := seen[key.Value]; ok {
				return &SyntaxError{
					Line:    n.Content[i].Line,
					Message: fmt.Sprintf("mapping key %q already defined at line %d", key.Value, line),
					Err:     ErrDuplicateKey,
				}
			}
			seen[key.Value] = n.Content[i].Line
		}
	}

	for _, child := range n.Content {
		if err := checkDuplicateKeys(child); err != nil {
			return err
		}
	}
	return nil
}

// SyntaxError represents a YAML syntax error with location info.
type SyntaxError struct {
	File    string
	Line    int
	Message string
	Err     error
}

func (e *SyntaxError) Error() string {
	switch {
	case e.File != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
	case e.File != "":
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	default:
		return e.Message
	}
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// newSyntaxError wraps a decoder error, pulling out the line number if present.
func newSyntaxError(path string, err error) *SyntaxError {
	se := &SyntaxError{File: path, Message: err.Error(), Err: err}
	if m := lineRe.FindStringSubmatch(err.Error()); m != nil {
		se.Line, _ = strconv.Atoi(m[1])
	}
	return se
}

// Resolve follows alias nodes until a concrete node is reached.
func Resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

// IsString reports whether n is a scalar that resolves to a YAML string.
func IsString(n *yaml.Node) bool {
	n = Resolve(n)
	return n != nil && n.Kind == yaml.ScalarNode && n.ShortTag() == "!!str"
}

// Pair is one key/value entry of a mapping node.
type Pair struct {
	Key   *yaml.Node
	Value *yaml.Node
}

// MappingPairs returns the entries of mapping node n in document order with
// "<<" merge keys expanded in place. Keys written in n win over merged ones,
// and among merged mappings the first to define a key wins. A merge key
// whose value is not a mapping or a list of mappings is returned unchanged.
func MappingPairs(n *yaml.Node) []Pair {
	n = Resolve(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}

	pairs := make([]Pair, 0, len(n.Content)/2)
	index := make(map[string]int)
	add := func(p Pair, explicit bool) {
		key := Resolve(p.Key)
		if key == nil || key.Kind != yaml.ScalarNode {
			pairs = append(pairs, p)
			return
		}
		if i, ok := index[key.Value]; ok {
			if explicit {
				pairs[i].Value = p.Value
			}
			return
		}
		index[key.Value] = len(pairs)
		pairs = append(pairs, p)
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		p := Pair{Key: n.Content[i], Value: n.Content[i+1]}
		merged, ok := mergeSources(p)
		if !ok {
			add(p, true)
			continue
		}
		for _, src := range merged {
			for _, mp := range MappingPairs(src) {
				add(mp, false)
			}
		}
	}
	return pairs
}

// mergeSources returns the mappings a "<<" pair pulls in. ok is false when p
// is not a merge key or its value cannot be merged.
func mergeSources(p Pair) (sources []*yaml.Node, ok bool) {
	key := Resolve(p.Key)
	if key == nil || key.Kind != yaml.ScalarNode || key.ShortTag() != mergeTag {
		return nil, false
	}

	value := Resolve(p.Value)
	switch {
	case value == nil:
		return nil, false
	case value.Kind == yaml.MappingNode:
		return []*yaml.Node{value}, true
	case value.Kind == yaml.SequenceNode:
		for _, item := range value.Content {
			item = Resolve(item)
			if item == nil || item.Kind != yaml.MappingNode {
				return nil, false
			}
			sources = append(sources, item)
		}
		return sources, true
	default:
		return nil, false
	}
}
