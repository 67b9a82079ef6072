package changelog

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultLineWidth is the column at which messages wrap when unset.
	DefaultLineWidth = 80
	// DateLayout is the ISO 8601 calendar date used for the default date.
	DateLayout = "2006-01-02"
)

var validate = validator.New()

// RenderOptions controls markdown rendering.
type RenderOptions struct {
	// PreviousVersion is the version being released from, e.g. "1.2.3".
	PreviousVersion string
	// LineWidth is the wrap column for messages (0 = DefaultLineWidth).
	LineWidth int `validate:"gte=0"`
	// Date is printed verbatim in the version header (default: today, UTC).
	Date string
	// Now supplies the current time for the default date (default: time.Now).
	Now func() time.Time
	// Release forces the bump category instead of classifying the entries.
	Release ReleaseCategory `validate:"omitempty,oneof=major minor patch"`
}

// withDefaults fills unset fields.
func (o RenderOptions) withDefaults() RenderOptions {
	if o.LineWidth == 0 {
		o.LineWidth = DefaultLineWidth
	}
	if o.Date == "" {
		now := o.Now
		if now == nil {
			now = time.Now
		}
		o.Date = now().UTC().Format(DateLayout)
	}
	return o
}

// Release is the outcome of condensing a set of entries against the
// previous version.
type Release struct {
	Previous string
	Version  string
	Category ReleaseCategory
	Changes  ChangeSet
}

// NewRelease condenses entries and computes the next version.
// Returns ErrNoEntries for an empty input, a *SchemaError when any entry is
// invalid, and a *VersionError when previous cannot be bumped.
func NewRelease(entries []Entry, previous string) (*Release, error) {
	return NewReleaseWithCategory(entries, previous, "")
}

// NewReleaseWithCategory is NewRelease with the bump category fixed to
// category. An empty category classifies the entries as usual.
func NewReleaseWithCategory(entries []Entry, previous string, category ReleaseCategory) (*Release, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	changes, err := Condense(entries)
	if err != nil {
		return nil, err
	}

	if category == "" {
		category = Classify(changes)
	}
	next, err := Bump(previous, category)
	if err != nil {
		return nil, err
	}

	return &Release{
		Previous: previous,
		Version:  next,
		Category: category,
		Changes:  changes,
	}, nil
}

// Render writes the markdown section for entries to w.
//
// The function is idempotent - given the same input, it produces identical output.
func Render(w io.Writer, entries []Entry, opts RenderOptions) error {
	if err := validate.Struct(opts); err != nil {
		return fmt.Errorf("invalid render options: %w", err)
	}
	opts = opts.withDefaults()

	release, err := NewReleaseWithCategory(entries, opts.PreviousVersion, opts.Release)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, release.Markdown(opts.Date, opts.LineWidth))
	return err
}

// Markdown formats the release as a markdown section. Change types appear
// in declaration order and empty types are omitted. The result has no
// leading or trailing blank lines.
func (r *Release) Markdown(date string, lineWidth int) string {
	var b strings.Builder
	b.WriteString(formatVersionHeader(r.Version, date))

	for _, t := range changeTypes {
		if !r.Changes.Has(t) {
			continue
		}
		b.WriteString(formatTypeHeader(t))
		for _, msg := range r.Changes[t] {
			b.WriteString(formatMessage(msg, lineWidth))
			b.WriteString("\n")
		}
	}

	return strings.TrimSpace(b.String())
}

// formatVersionHeader formats the version header line.
func formatVersionHeader(version, date string) string {
	return fmt.Sprintf("# %s (%s)\n", version, date)
}

// formatTypeHeader formats a change type section header.
func formatTypeHeader(t ChangeType) string {
	return "\n## " + t.Title() + ":\n\n"
}
