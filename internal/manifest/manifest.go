// Package manifest reads the current release version from a project
// manifest such as package.json. JSON and YAML manifests are supported; the
// format is chosen by file extension.
package manifest

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ariel-frischer/changelog/internal/changelog"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON string

// Manifest holds the fields of a version manifest that are used here.
type Manifest struct {
	Path    string
	Name    string
	Version string
}

// FieldError represents a single schema violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every schema violation found in a manifest.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "manifest does not match schema: " + strings.Join(parts, "; ")
}

// Load reads the manifest at path. Any failure, from a missing file to a
// missing or non-string version field, is returned as a
// *changelog.VersionError naming the file.
func Load(path string) (*Manifest, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
		return nil, &changelog.VersionError{Source: path, Err: err}
	}

	if err := validate(k.Raw()); err != nil {
		return nil, &changelog.VersionError{Source: path, Err: err}
	}

	return &Manifest{
		Path:    path,
		Name:    k.String("name"),
		Version: k.String("version"),
	}, nil
}

// ReadVersion returns the version recorded in the manifest at path.
func ReadVersion(path string) (string, error) {
	m, err := Load(path)
	if err != nil {
		return "", err
	}
	return m.Version, nil
}

// parserFor picks a koanf parser from the file extension. Anything that is
// not YAML is read as JSON, matching package.json and composer.json.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yaml.Parser()
	default:
		return json.Parser()
	}
}

// validate checks the decoded manifest against the embedded JSON Schema.
func validate(doc map[string]any) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaJSON),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("validating manifest: %w", err)
	}

	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		verr.Errors = append(verr.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return verr
}
