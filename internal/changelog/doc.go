// Package changelog condenses per-pull-request change entries into a single
// release section.
//
// This package implements:
//   - Loading a directory of YAML change entries, one document per file
//   - Schema validation that reports every violation in every file
//   - Release classification (major, minor, patch) and the version bump
//   - Markdown rendering with wrapped bullets in a fixed section order
//
// A change entry maps change types to lists of messages:
//
//	add:
//	  - Support reading versions from YAML manifests
//	fix:
//	  - Wrap long messages at word boundaries
package changelog
