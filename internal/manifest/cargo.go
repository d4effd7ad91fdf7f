package manifest

import (
	"context"
	"errors"
	"io/fs"

	"github.com/indaco/tauripack/internal/core"
	"github.com/pelletier/go-toml/v2"
)

// CargoPackage holds the [package] section of a Cargo.toml.
type CargoPackage struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// CargoWorkspace holds the [workspace] section of a Cargo.toml.
type CargoWorkspace struct {
	Members []string `toml:"members"`
}

// CargoManifest is the subset of Cargo.toml this tool consumes.
type CargoManifest struct {
	Package   *CargoPackage   `toml:"package"`
	Workspace *CargoWorkspace `toml:"workspace"`
}

// LoadCargo reads and parses a Cargo.toml. A missing file is reported as
// *NotFoundError; malformed TOML as *ParseError.
func LoadCargo(ctx context.Context, fsys core.FileSystem, path string) (*CargoManifest, error) {
	data, err := fsys.ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, err
	}

	var m CargoManifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return &m, nil
}

// UnmarshalTOML parses TOML data into v. Exposed so sibling packages share
// a single TOML decoder.
func UnmarshalTOML(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}
