// Package secondary defines the secondary ports (driven adapters) for the application.
package secondary

import "context"

// FileSystem defines the secondary port for writing generated files.
// Paths are slash-separated and relative to the adapter's root.
type FileSystem interface {
	// Exists reports whether anything is present at path.
	Exists(ctx context.Context, path string) (bool, error)

	// WriteFile creates path with content. It must fail if path already
	// exists; an existing file is never replaced.
	WriteFile(ctx context.Context, path, content string) error

	// MakeDirectories creates path and any missing parents.
	MakeDirectories(ctx context.Context, path string) error
}
