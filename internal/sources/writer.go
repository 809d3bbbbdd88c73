package sources

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/gbf-rs/relver/internal/core"
	"github.com/gbf-rs/relver/internal/semver"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/sjson"
)

// Writer rewrites the version field of source files in place.
//
// Writes are independent per file: there is no transactional guarantee
// across sources, and a failure partway through a multi-file update
// leaves the earlier writes on disk.
type Writer struct {
	fs core.FileSystem
}

// NewWriter creates a new Writer with the given filesystem.
func NewWriter(fs core.FileSystem) *Writer {
	return &Writer{fs: fs}
}

// WriteVersion rewrites only the version held by a source, leaving the
// rest of the document intact (JSON and readme formats preserve the
// surrounding text byte-for-byte; TOML is re-serialized).
func (w *Writer) WriteVersion(ctx context.Context, src Source, v semver.Version) error {
	switch src.Format {
	case FormatTOML:
		return w.writeTOML(ctx, src, v)
	case FormatJSON:
		return w.writeJSON(ctx, src, v)
	case FormatReadme:
		return w.writeReadme(ctx, src, v)
	default:
		return fmt.Errorf("source %s: unsupported format %q", src.Name, src.Format)
	}
}

func (w *Writer) writeTOML(ctx context.Context, src Source, v semver.Version) error {
	data, err := w.fs.ReadFile(ctx, src.Path)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", src.Path, err)
	}

	var obj map[string]any
	if err := toml.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("failed to parse TOML in %q: %w", src.Path, err)
	}

	if err := setNestedValue(obj, src.Field, v.String()); err != nil {
		return fmt.Errorf("in file %q: %w", src.Path, err)
	}

	updated, err := toml.Marshal(obj)
	if err != nil {
		return fmt.Errorf("failed to marshal TOML for %q: %w", src.Path, err)
	}

	if err := w.fs.WriteFile(ctx, src.Path, updated, core.PermStandard); err != nil {
		return fmt.Errorf("failed to write %q: %w", src.Path, err)
	}
	return nil
}

func (w *Writer) writeJSON(ctx context.Context, src Source, v semver.Version) error {
	data, err := w.fs.ReadFile(ctx, src.Path)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", src.Path, err)
	}

	// sjson updates only the target field, preserving structure and
	// key order.
	updated, err := sjson.SetBytes(data, src.Field, v.String())
	if err != nil {
		return fmt.Errorf("failed to set version in %q: %w", src.Path, err)
	}

	if len(updated) > 0 && updated[len(updated)-1] != '\n' {
		updated = append(updated, '\n')
	}

	if err := w.fs.WriteFile(ctx, src.Path, updated, core.PermStandard); err != nil {
		return fmt.Errorf("failed to write %q: %w", src.Path, err)
	}
	return nil
}

func (w *Writer) writeReadme(ctx context.Context, src Source, v semver.Version) error {
	data, err := w.fs.ReadFile(ctx, src.Path)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", src.Path, err)
	}

	re, err := regexp.Compile(src.Pattern)
	if err != nil {
		return fmt.Errorf("invalid pattern %q: %w", src.Pattern, err)
	}

	if !re.Match(data) {
		return fmt.Errorf("pattern %q does not match contents of %q", src.Pattern, src.Path)
	}

	// Replace the captured group inside every match, keeping the
	// surrounding declaration text.
	updated := re.ReplaceAllFunc(data, func(match []byte) []byte {
		submatches := re.FindSubmatch(match)
		if len(submatches) < 2 {
			return match
		}
		return bytes.Replace(match, submatches[1], []byte(v.String()), 1)
	})

	if err := w.fs.WriteFile(ctx, src.Path, updated, core.PermStandard); err != nil {
		return fmt.Errorf("failed to write %q: %w", src.Path, err)
	}
	return nil
}

// setNestedValue sets a value in a nested map using dot notation.
// Example: "package.version" sets obj["package"]["version"] = value.
func setNestedValue(obj map[string]any, field string, value any) error {
	if field == "" {
		return fmt.Errorf("field path cannot be empty")
	}

	parts := strings.Split(field, ".")
	current := obj

	for i := 0; i < len(parts)-1; i++ {
		part := parts[i]

		next, exists := current[part]
		if !exists {
			newMap := make(map[string]any)
			current[part] = newMap
			current = newMap
			continue
		}

		nextMap, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("field %q is not a table at %q", strings.Join(parts[:i+1], "."), part)
		}

		current = nextMap
	}

	current[parts[len(parts)-1]] = value
	return nil
}
