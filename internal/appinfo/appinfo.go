package appinfo

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/indaco/tauripack/internal/core"
	"github.com/indaco/tauripack/internal/lookup"
	"github.com/indaco/tauripack/internal/manifest"
	"github.com/indaco/tauripack/internal/tauriconf"
)

// Defaults applied when no source provides a value.
const (
	DefaultName        = "app"
	DefaultVersion     = "0.1.0"
	DefaultWixLanguage = "en-US"
)

// ErrUnresolvedMetadata is returned when a native project exists but neither
// the configuration nor the Cargo manifest yields a name and a version.
// The operation cannot proceed without both; callers map this to a non-zero
// exit.
var ErrUnresolvedMetadata = errors.New("app name and version could not be resolved")

// Options configures Resolve.
type Options struct {
	// ConfigPath is an explicit path to the native configuration file.
	// When empty, <projectDir>/tauri.conf.json is used.
	ConfigPath string
}

// Info is the canonical project metadata record. ProjectDir is empty when no
// native project is present, which is a valid terminal state.
type Info struct {
	ProjectDir  string
	Name        string
	Version     string
	WixLanguage string
}

// Resolve produces the canonical Info for the repository at root.
//
// Precedence: the native configuration wins, the Cargo manifest fills gaps,
// and a field is never overwritten once set. A version ending in ".json" is
// treated as a relative pointer to a JSON manifest whose "version" field is
// read instead. Without a native project, the JavaScript package manifest
// (or built-in defaults) supplies everything.
func Resolve(ctx context.Context, fsys core.FileSystem, root string, opts Options) (*Info, error) {
	projectDir, found, err := lookup.NewService(fsys).FindProjectDir(ctx, root)
	if err != nil {
		return nil, err
	}
	if !found {
		return resolveWithoutProject(ctx, fsys, root)
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = filepath.Join(projectDir, tauriconf.Filename)
	}
	doc, err := tauriconf.Load(ctx, fsys, configPath)
	if err != nil {
		return nil, err
	}

	name, _ := doc.ProductName()
	version, _ := doc.Version()

	if strings.HasSuffix(version, ".json") {
		version, err = readVersionPointer(ctx, fsys, projectDir, version)
		if err != nil {
			return nil, err
		}
	}

	if name == "" || version == "" {
		cargo, err := manifest.LoadCargo(ctx, fsys, filepath.Join(projectDir, "Cargo.toml"))
		if err != nil {
			var notFound *manifest.NotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		} else if cargo.Package != nil {
			if name == "" {
				name = cargo.Package.Name
			}
			if version == "" {
				version = cargo.Package.Version
			}
		}
	}

	if name == "" || version == "" {
		return nil, fmt.Errorf("in %q: %w", projectDir, ErrUnresolvedMetadata)
	}

	wixLanguage, ok := doc.WixLanguage()
	if !ok {
		wixLanguage = DefaultWixLanguage
	}

	return &Info{
		ProjectDir:  projectDir,
		Name:        name,
		Version:     version,
		WixLanguage: wixLanguage,
	}, nil
}

// readVersionPointer follows a version value of the form "sub/package.json":
// a path relative to the project directory whose "version" field holds the
// actual version. This lets the native config delegate version tracking to
// the JS manifest.
func readVersionPointer(ctx context.Context, fsys core.FileSystem, projectDir, rel string) (string, error) {
	path := filepath.Join(projectDir, rel)
	pkg, err := manifest.LoadPackageJSON(ctx, fsys, path)
	if err != nil {
		return "", fmt.Errorf("failed to follow version pointer %q: %w", rel, err)
	}
	if pkg.Version == "" {
		return "", fmt.Errorf("version pointer %q has no version field: %w", rel, ErrUnresolvedMetadata)
	}
	return pkg.Version, nil
}

// resolveWithoutProject falls back entirely to the JS package manifest.
// Its absence is also handled: built-in defaults apply.
func resolveWithoutProject(ctx context.Context, fsys core.FileSystem, root string) (*Info, error) {
	info := &Info{
		Name:        DefaultName,
		Version:     DefaultVersion,
		WixLanguage: DefaultWixLanguage,
	}

	pkg, err := manifest.LoadPackageJSON(ctx, fsys, filepath.Join(root, "package.json"))
	if err != nil {
		var notFound *manifest.NotFoundError
		if errors.As(err, &notFound) {
			return info, nil
		}
		return nil, err
	}

	name := pkg.DisplayName
	if name == "" {
		name = pkg.Name
	}
	if name != "" {
		info.Name = strings.ReplaceAll(name, " ", "-")
	}
	if pkg.Version != "" {
		info.Version = pkg.Version
	}

	return info, nil
}
