package core

import (
	"context"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"time"
)

// MockFileSystem is an in-memory FileSystem for tests. Files are stored by
// slash-separated path; directories are synthesized from file paths, so
// ReadDir works for arbitrarily nested trees.
type MockFileSystem struct {
	files map[string][]byte
}

// NewMockFileSystem creates an empty in-memory filesystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{files: make(map[string][]byte)}
}

// SetFile stores a file at the given path, creating implicit parents.
func (m *MockFileSystem) SetFile(p string, data []byte) {
	m.files[path.Clean(p)] = data
}

// File returns the stored content for a path and whether it exists.
func (m *MockFileSystem) File(p string) ([]byte, bool) {
	data, ok := m.files[path.Clean(p)]
	return data, ok
}

func (m *MockFileSystem) Stat(ctx context.Context, p string) (fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p = path.Clean(p)
	if data, ok := m.files[p]; ok {
		return mockFileInfo{name: path.Base(p), size: int64(len(data))}, nil
	}
	if m.isDir(p) {
		return mockFileInfo{name: path.Base(p), dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: p, Err: os.ErrNotExist}
}

func (m *MockFileSystem) ReadFile(ctx context.Context, p string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p = path.Clean(p)
	data, ok := m.files[p]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: p, Err: os.ErrNotExist}
	}
	return data, nil
}

func (m *MockFileSystem) WriteFile(ctx context.Context, p string, data []byte, _ fs.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.files[path.Clean(p)] = data
	return nil
}

func (m *MockFileSystem) ReadDir(ctx context.Context, p string) ([]fs.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p = path.Clean(p)
	if !m.isDir(p) {
		return nil, &fs.PathError{Op: "open", Path: p, Err: os.ErrNotExist}
	}

	prefix := p + "/"
	if p == "/" {
		prefix = "/"
	}

	seen := make(map[string]bool)
	var entries []fs.DirEntry
	for fp := range m.files {
		if !strings.HasPrefix(fp, prefix) {
			continue
		}
		rest := strings.TrimPrefix(fp, prefix)
		name, _, nested := strings.Cut(rest, "/")
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		entries = append(entries, mockDirEntry{name: name, dir: nested})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

// isDir reports whether any stored file lives beneath p.
func (m *MockFileSystem) isDir(p string) bool {
	if p == "/" || p == "." {
		return true
	}
	prefix := p + "/"
	for fp := range m.files {
		if strings.HasPrefix(fp, prefix) {
			return true
		}
	}
	return false
}

type mockFileInfo struct {
	name string
	size int64
	dir  bool
}

func (fi mockFileInfo) Name() string       { return fi.name }
func (fi mockFileInfo) Size() int64        { return fi.size }
func (fi mockFileInfo) Mode() fs.FileMode  { return fi.modeBits() }
func (fi mockFileInfo) ModTime() time.Time { return time.Time{} }
func (fi mockFileInfo) IsDir() bool        { return fi.dir }
func (fi mockFileInfo) Sys() any           { return nil }

func (fi mockFileInfo) modeBits() fs.FileMode {
	if fi.dir {
		return fs.ModeDir | PermDir
	}
	return PermOwnerRW
}

type mockDirEntry struct {
	name string
	dir  bool
}

func (e mockDirEntry) Name() string      { return e.name }
func (e mockDirEntry) IsDir() bool       { return e.dir }
func (e mockDirEntry) Type() fs.FileMode { return mockFileInfo{name: e.name, dir: e.dir}.modeBits().Type() }

func (e mockDirEntry) Info() (fs.FileInfo, error) {
	return mockFileInfo{name: e.name, dir: e.dir}, nil
}
