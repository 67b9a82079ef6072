package changelog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrEmptyVersion is wrapped by a VersionError when no prior version is set.
var ErrEmptyVersion = errors.New("version is empty")

// Classify returns the release category implied by a change set.
// Priority is strict and independent of counts: any breaking change is a
// major release, otherwise any addition is minor, otherwise patch.
func Classify(cs ChangeSet) ReleaseCategory {
	switch {
	case cs.Has(Breaking):
		return Major
	case cs.Has(Add):
		return Minor
	default:
		return Patch
	}
}

// ParseReleaseCategory converts user input such as "Minor" to a category.
func ParseReleaseCategory(s string) (ReleaseCategory, error) {
	switch c := ReleaseCategory(strings.ToLower(strings.TrimSpace(s))); c {
	case Major, Minor, Patch:
		return c, nil
	default:
		return "", fmt.Errorf("unknown release category %q (expected: major, minor, patch)", s)
	}
}

// Bump increments prior by the given category and returns the new version.
// Surrounding whitespace and a single leading "v" are accepted on input; the
// result never carries a "v". Build metadata is dropped. A prerelease whose
// lower components are already zero is released as is: a major bump of
// "2.0.0-rc.1" yields "2.0.0" and a minor bump of "1.3.0-rc.1" yields "1.3.0".
func Bump(prior string, c ReleaseCategory) (string, error) {
	trimmed := strings.TrimSpace(prior)
	if trimmed == "" {
		return "", &VersionError{Err: ErrEmptyVersion}
	}

	v, err := semver.StrictNewVersion(strings.TrimPrefix(trimmed, "v"))
	if err != nil {
		return "", &VersionError{Version: prior, Err: err}
	}

	pre := v.Prerelease() != ""
	var next semver.Version
	switch c {
	case Major:
		if pre && v.Minor() == 0 && v.Patch() == 0 {
			next = release(v)
		} else {
			next = v.IncMajor()
		}
	case Minor:
		if pre && v.Patch() == 0 {
			next = release(v)
		} else {
			next = v.IncMinor()
		}
	case Patch:
		next = v.IncPatch()
	default:
		return "", &VersionError{Version: prior, Err: fmt.Errorf("unknown release category %q", c)}
	}

	return next.String(), nil
}

// release strips the prerelease and metadata from v.
func release(v *semver.Version) semver.Version {
	return *semver.New(v.Major(), v.Minor(), v.Patch(), "", "")
}
