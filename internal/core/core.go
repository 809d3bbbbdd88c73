// Package core holds the small shared abstractions used across relver:
// the filesystem interface, file permission constants, and timeouts for
// external process calls.
package core

import (
	"context"
	"os"
	"time"
)

// File permission constants.
const (
	// PermOwnerRW is owner read/write (0600), used for files relver rewrites.
	PermOwnerRW os.FileMode = 0o600

	// PermStandard is the conventional 0644 for files shared with other tools.
	PermStandard os.FileMode = 0o644
)

// TimeoutShort bounds quick local git invocations (rev-parse, show).
const TimeoutShort = 10 * time.Second

// TimeoutNetwork bounds git operations that touch the remote (fetch).
const TimeoutNetwork = 60 * time.Second

// FileSystem abstracts file operations for testability.
type FileSystem interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, data []byte, perm os.FileMode) error
	Stat(ctx context.Context, path string) (os.FileInfo, error)
}

// OSFileSystem implements FileSystem using the os package.
type OSFileSystem struct{}

// NewOSFileSystem returns the production FileSystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

var _ FileSystem = (*OSFileSystem)(nil)

func (fs *OSFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func (fs *OSFileSystem) WriteFile(ctx context.Context, path string, data []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, perm)
}

func (fs *OSFileSystem) Stat(ctx context.Context, path string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Stat(path)
}
