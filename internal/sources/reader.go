// Package sources reads and writes version strings across the fixed set
// of files the gbf workspace keeps in sync: Cargo-style manifests, a
// package.json descriptor, and a README dependency snippet.
package sources

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/gbf-rs/relver/internal/core"
	"github.com/gbf-rs/relver/internal/semver"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
)

// Reader extracts versions from local source files.
type Reader struct {
	fs core.FileSystem
}

// NewReader creates a new Reader with the given filesystem.
func NewReader(fs core.FileSystem) *Reader {
	return &Reader{fs: fs}
}

// ReadVersion reads and parses the version held by a source.
//
// Failures are classified: a missing or unparsable file wraps
// ErrSourceUnreadable, an absent field or pattern wraps
// ErrVersionFieldMissing, and a malformed version string wraps
// semver.ErrInvalidVersion.
func (r *Reader) ReadVersion(ctx context.Context, src Source) (semver.Version, error) {
	raw, err := r.ReadRaw(ctx, src)
	if err != nil {
		return semver.Version{}, err
	}

	v, err := semver.Parse(raw)
	if err != nil {
		return semver.Version{}, fmt.Errorf("source %s (%s): %w", src.Name, src.Path, err)
	}
	return v, nil
}

// ReadRaw reads the version string held by a source without parsing it.
func (r *Reader) ReadRaw(ctx context.Context, src Source) (string, error) {
	data, err := r.fs.ReadFile(ctx, src.Path)
	if err != nil {
		return "", fmt.Errorf("%w: source %s: failed to read %q: %w", ErrSourceUnreadable, src.Name, src.Path, err)
	}
	return ExtractVersion(data, src)
}

// ExtractVersion pulls the version string out of raw document bytes
// according to the source's format. It is shared by the local reader and
// the remote branch reader.
func ExtractVersion(data []byte, src Source) (string, error) {
	switch src.Format {
	case FormatTOML:
		return extractTOML(data, src)
	case FormatJSON:
		return extractJSON(data, src)
	case FormatReadme:
		return extractReadme(data, src)
	default:
		return "", fmt.Errorf("source %s: unsupported format %q", src.Name, src.Format)
	}
}

func extractTOML(data []byte, src Source) (string, error) {
	var obj map[string]any
	if err := toml.Unmarshal(data, &obj); err != nil {
		return "", fmt.Errorf("%w: source %s: failed to parse TOML in %q: %w", ErrSourceUnreadable, src.Name, src.Path, err)
	}

	value, err := getNestedValue(obj, src.Field)
	if err != nil {
		return "", fmt.Errorf("%w: source %s: %w", ErrVersionFieldMissing, src.Name, err)
	}

	version, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: source %s: field %q in %q is not a string", ErrVersionFieldMissing, src.Name, src.Field, src.Path)
	}
	return version, nil
}

func extractJSON(data []byte, src Source) (string, error) {
	if !gjson.ValidBytes(data) {
		return "", fmt.Errorf("%w: source %s: failed to parse JSON in %q", ErrSourceUnreadable, src.Name, src.Path)
	}

	result := gjson.GetBytes(data, src.Field)
	if !result.Exists() {
		return "", fmt.Errorf("%w: source %s: field %q not found in %q", ErrVersionFieldMissing, src.Name, src.Field, src.Path)
	}
	if result.Type != gjson.String {
		return "", fmt.Errorf("%w: source %s: field %q in %q is not a string", ErrVersionFieldMissing, src.Name, src.Field, src.Path)
	}
	return result.String(), nil
}

func extractReadme(data []byte, src Source) (string, error) {
	re, err := regexp.Compile(src.Pattern)
	if err != nil {
		return "", fmt.Errorf("source %s: invalid pattern %q: %w", src.Name, src.Pattern, err)
	}

	matches := re.FindSubmatch(data)
	if len(matches) < 2 {
		return "", fmt.Errorf("%w: source %s: no match for pattern %q in %q", ErrVersionFieldMissing, src.Name, src.Pattern, src.Path)
	}
	return string(matches[1]), nil
}

// getNestedValue retrieves a value from a nested map using dot notation.
// Example: "package.version" accesses obj["package"]["version"].
func getNestedValue(obj map[string]any, field string) (any, error) {
	if field == "" {
		return nil, fmt.Errorf("field path cannot be empty")
	}

	parts := strings.Split(field, ".")
	current := any(obj)

	for i, part := range parts {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q is not a table at %q", strings.Join(parts[:i], "."), part)
		}

		value, exists := currentMap[part]
		if !exists {
			return nil, fmt.Errorf("field %q not found", field)
		}

		current = value
	}

	return current, nil
}
