// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/koagen/internal/ports/secondary"
)

// FileSystemAdapter implements secondary.FileSystem on the local disk,
// resolving every path against a root directory.
type FileSystemAdapter struct {
	root string
}

// NewFileSystemAdapter creates a new filesystem adapter rooted at root.
// An empty root means the current working directory.
func NewFileSystemAdapter(root string) (*FileSystemAdapter, error) {
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output root: %w", err)
	}
	return &FileSystemAdapter{root: abs}, nil
}

// Root returns the absolute output root.
func (a *FileSystemAdapter) Root() string {
	return a.root
}

// Exists reports whether anything is present at path.
func (a *FileSystemAdapter) Exists(ctx context.Context, path string) (bool, error) {
	full, err := a.resolve(path)
	if err != nil {
		return false, err
	}
	_, err = os.Lstat(full)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check file: %w", err)
	}
	return true, nil
}

// WriteFile creates path with content, failing if it already exists.
func (a *FileSystemAdapter) WriteFile(ctx context.Context, path, content string) error {
	full, err := a.resolve(path)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}

// MakeDirectories creates a directory with all parent directories.
func (a *FileSystemAdapter) MakeDirectories(ctx context.Context, path string) error {
	full, err := a.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(full, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// resolve maps a slash-separated relative path onto the root. Paths that
// would leave the root are refused.
func (a *FileSystemAdapter) resolve(path string) (string, error) {
	local := filepath.FromSlash(path)
	if !filepath.IsLocal(local) {
		return "", fmt.Errorf("path %q escapes output root", path)
	}
	return filepath.Join(a.root, local), nil
}

// Ensure FileSystemAdapter implements the interface
var _ secondary.FileSystem = (*FileSystemAdapter)(nil)
