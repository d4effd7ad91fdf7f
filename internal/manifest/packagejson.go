package manifest

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"

	"github.com/indaco/tauripack/internal/core"
)

// PackageJSON is the subset of a JavaScript package manifest this tool
// consumes. Every field is optional.
type PackageJSON struct {
	Name            string            `json:"name"`
	DisplayName     string            `json:"displayName"`
	ProductName     string            `json:"productName"`
	Version         string            `json:"version"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// HasDependency reports whether the manifest declares the given package in
// dependencies or devDependencies.
func (p *PackageJSON) HasDependency(name string) bool {
	if p == nil {
		return false
	}
	if _, ok := p.Dependencies[name]; ok {
		return true
	}
	_, ok := p.DevDependencies[name]
	return ok
}

// LoadPackageJSON reads and parses a package.json. A missing file is
// reported as *NotFoundError; malformed JSON as *ParseError.
func LoadPackageJSON(ctx context.Context, fsys core.FileSystem, path string) (*PackageJSON, error) {
	data, err := fsys.ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, err
	}

	var p PackageJSON
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return &p, nil
}
