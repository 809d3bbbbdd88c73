package sources

import (
	"errors"
	"fmt"
	"regexp"
)

// Format represents the supported source formats.
type Format string

const (
	// FormatTOML is for Cargo-style manifest files.
	FormatTOML Format = "toml"

	// FormatJSON is for package.json-style descriptor files.
	FormatJSON Format = "json"

	// FormatReadme is for free-text files holding a dependency
	// declaration line matching `<name> = "<version>"`.
	FormatReadme Format = "readme"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatTOML, FormatJSON, FormatReadme:
		return true
	default:
		return false
	}
}

// Source is a named location holding a version string.
type Source struct {
	// Name identifies the source in logs and error messages.
	Name string

	// Path is the file path, relative to the working tree root.
	Path string

	// Format specifies how the version is extracted.
	Format Format

	// Field is the dot-notation path to the version field
	// (TOML and JSON formats).
	Field string

	// Pattern is the extraction regex for the readme format. It must
	// contain exactly one capturing group around the version.
	Pattern string
}

// Sentinel errors distinguishing why a source could not produce a version.
var (
	// ErrSourceUnreadable covers missing files, failed remote fetches,
	// and documents that cannot be parsed at all.
	ErrSourceUnreadable = errors.New("source unreadable")

	// ErrVersionFieldMissing covers readable documents where the
	// version field or pattern is absent.
	ErrVersionFieldMissing = errors.New("version field missing")
)

// Manifest returns a Source for a Cargo-style manifest with the version
// under package.version.
func Manifest(name, path string) Source {
	return Source{Name: name, Path: path, Format: FormatTOML, Field: "package.version"}
}

// Descriptor returns a Source for a package.json-style descriptor with
// a top-level version field.
func Descriptor(name, path string) Source {
	return Source{Name: name, Path: path, Format: FormatJSON, Field: "version"}
}

// Readme returns a Source matching a dependency declaration line of the
// form `<pkg> = "<version>"` in a free-text document.
func Readme(name, path, pkg string) Source {
	pattern := fmt.Sprintf(`%s = "(.*?)"`, regexp.QuoteMeta(pkg))
	return Source{Name: name, Path: path, Format: FormatReadme, Pattern: pattern}
}
