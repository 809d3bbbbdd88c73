// Package semver implements the strict three-component version model
// used across the gbf workspace. Versions are plain numeric triples:
// no "v" prefix, no pre-release label, no build metadata.
package semver

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Version represents a semantic version triple (major.minor.patch).
// Values are immutable; Bump returns a new Version.
type Version struct {
	Major int
	Minor int
	Patch int
}

// versionRegex matches strict "major.minor.patch" strings. Each
// component must be a plain decimal number; prefixes and suffixes are
// rejected so that malformed manifest values fail loudly.
var versionRegex = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)

// ErrInvalidVersion is returned when a string does not conform to the
// major.minor.patch format.
var ErrInvalidVersion = errors.New("invalid version format")

// maxVersionLength is the maximum allowed length for a version string.
const maxVersionLength = 64

// Parse parses a version string into a Version.
//
// Only the strict "1.2.3" form is accepted. Returns ErrInvalidVersion
// (wrapped) for anything else, including "v"-prefixed strings and
// pre-release or build suffixes.
func Parse(s string) (Version, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) > maxVersionLength {
		return Version{}, fmt.Errorf("%w: version string exceeds maximum length of %d", ErrInvalidVersion, maxVersionLength)
	}

	matches := versionRegex.FindStringSubmatch(trimmed)
	if matches == nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	major, err := strconv.Atoi(matches[1])
	if err != nil {
		return Version{}, fmt.Errorf("%w: invalid major version: %s", ErrInvalidVersion, err.Error())
	}
	minor, err := strconv.Atoi(matches[2])
	if err != nil {
		return Version{}, fmt.Errorf("%w: invalid minor version: %s", ErrInvalidVersion, err.Error())
	}
	patch, err := strconv.Atoi(matches[3])
	if err != nil {
		return Version{}, fmt.Errorf("%w: invalid patch version: %s", ErrInvalidVersion, err.Error())
	}

	return Version{Major: major, Minor: minor, Patch: patch}, nil
}

// String returns the "major.minor.patch" representation.
func (v Version) String() string {
	var sb strings.Builder
	sb.Grow(12)
	sb.WriteString(strconv.Itoa(v.Major))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Minor))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Patch))
	return sb.String()
}

// Compare compares two versions lexicographically on (major, minor, patch).
// It returns -1 if v < other, 0 if v == other, and +1 if v > other.
func (v Version) Compare(other Version) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	return compareInt(v.Patch, other.Patch)
}

// Kind selects which component a bump increments.
type Kind string

const (
	KindMajor Kind = "major"
	KindMinor Kind = "minor"
	KindPatch Kind = "patch"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is a known bump kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindMajor, KindMinor, KindPatch:
		return true
	default:
		return false
	}
}

// ParseKind converts a string to a Kind, failing for unknown values.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid bump kind %q: use major, minor, or patch", s)
	}
	return k, nil
}

// Bump returns the next version for the given kind.
//
//   - major: (major+1, 0, 0)
//   - minor: (major, minor+1, 0)
//   - patch: (major, minor, patch+1)
//
// Returns an error for any other kind.
func Bump(v Version, kind Kind) (Version, error) {
	switch kind {
	case KindMajor:
		return Version{Major: v.Major + 1, Minor: 0, Patch: 0}, nil
	case KindMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1, Patch: 0}, nil
	case KindPatch:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil
	default:
		return Version{}, fmt.Errorf("invalid bump kind %q: use major, minor, or patch", kind)
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
