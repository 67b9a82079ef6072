package changelog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ariel-frischer/changelog/internal/logging"
	"github.com/ariel-frischer/changelog/internal/yaml"
)

// LoadOptions controls how a change entry directory is read.
type LoadOptions struct {
	// Exclude holds filepath.Match patterns matched against base names.
	// Matching files are skipped (e.g. ".gitkeep", "README.md").
	Exclude []string
	// Logger receives debug output for each loaded file (default: discard).
	Logger *slog.Logger
}

func (o LoadOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logging.Discard()
}

// LoadDir reads every file in dir as a change entry.
// Files are returned in directory iteration order; the listing is not sorted.
// Subdirectories are skipped. A file that cannot be parsed aborts the load
// with a *ParseError.
func LoadDir(dir string, opts LoadOptions) ([]Entry, error) {
	d, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("opening change entry directory: %w", err)
	}
	defer d.Close()

	dirEntries, err := d.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("reading change entry directory %s: %w", dir, err)
	}

	log := opts.logger()
	entries := make([]Entry, 0, len(dirEntries))

	for _, de := range dirEntries {
		if de.IsDir() {
			log.Debug("skipping subdirectory", "dir", de.Name())
			continue
		}

		skip, err := isExcluded(de.Name(), opts.Exclude)
		if err != nil {
			return nil, err
		}
		if skip {
			log.Debug("skipping excluded file", "file", de.Name())
			continue
		}

		entry, err := LoadFile(filepath.Join(dir, de.Name()))
		if err != nil {
			return nil, err
		}
		log.Debug("loaded change entry", "file", entry.Filename, "empty", entry.Node == nil)
		entries = append(entries, entry)
	}

	return entries, nil
}

// LoadFile reads and decodes a single change entry file.
// The entry's Filename is the base name of path.
func LoadFile(path string) (Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return Entry{}, fmt.Errorf("opening change entry: %w", err)
	}
	defer f.Close()

	return LoadFromReader(filepath.Base(path), f)
}

// LoadFromReader decodes a change entry from an io.Reader.
// This is useful for testing and for entries that do not live on disk.
func LoadFromReader(filename string, r io.Reader) (Entry, error) {
	node, err := yaml.DecodeDocument(r)
	if err != nil {
		return Entry{}, newParseError(filename, err)
	}
	return Entry{Filename: filename, Node: node}, nil
}

// newParseError wraps a decode failure, keeping line info when available.
func newParseError(filename string, err error) *ParseError {
	pe := &ParseError{Filename: filename, Err: err}
	var se *yaml.SyntaxError
	if errors.As(err, &se) {
		pe.Line = se.Line
	}
	return pe
}

// isExcluded reports whether name matches any of the exclude patterns.
func isExcluded(name string, patterns []string) (bool, error) {
	for _, p := range patterns {
		ok, err := filepath.Match(p, name)
		if err != nil {
			return false, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
