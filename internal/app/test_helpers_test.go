package app

import (
	"context"
	"errors"
	"sync"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockFileSystem implements secondary.FileSystem in memory for testing.
type mockFileSystem struct {
	mu       sync.Mutex
	files    map[string]string
	dirs     map[string]bool
	writes   []string // paths in write order
	mkdirErr error
	writeErr map[string]error // per-path write failures
}

func newMockFileSystem() *mockFileSystem {
	return &mockFileSystem{
		files:    make(map[string]string),
		dirs:     make(map[string]bool),
		writeErr: make(map[string]error),
	}
}

func (m *mockFileSystem) Exists(ctx context.Context, path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[path]
	return ok || m.dirs[path], nil
}

func (m *mockFileSystem) WriteFile(ctx context.Context, path, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.writeErr[path]; err != nil {
		return err
	}
	if _, ok := m.files[path]; ok {
		return errors.New("file exists")
	}
	m.files[path] = content
	m.writes = append(m.writes, path)
	return nil
}

func (m *mockFileSystem) MakeDirectories(ctx context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.mkdirErr != nil {
		return m.mkdirErr
	}
	m.dirs[path] = true
	return nil
}
