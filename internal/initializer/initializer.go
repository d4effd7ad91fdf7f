package initializer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/indaco/tauripack/internal/appinfo"
	"github.com/indaco/tauripack/internal/core"
	"github.com/indaco/tauripack/internal/lookup"
	"github.com/indaco/tauripack/internal/manifest"
	"github.com/indaco/tauripack/internal/runner"
	"github.com/indaco/tauripack/internal/tauriconf"
)

// ErrProjectNotFound is returned when no native project directory exists
// after the init command ran. At that stage absence is fatal, not a
// recoverable fallback.
var ErrProjectNotFound = errors.New("native project directory not found after init")

// Options carries the optional build inputs.
type Options struct {
	IconPath         string
	BundleIdentifier string
}

// Application is the runtime result of initialization, owned by the caller
// for the remainder of the build pipeline.
type Application struct {
	ProjectDir  string
	Runner      runner.Runner
	Name        string
	Version     string
	WixLanguage string
}

// Initializer performs the project initialization sequence.
type Initializer struct {
	fs   core.FileSystem
	exec runner.Executor
	run  runner.Runner
}

// New creates an Initializer using the given filesystem, executor and runner.
func New(fs core.FileSystem, exec runner.Executor, run runner.Runner) *Initializer {
	return &Initializer{fs: fs, exec: exec, run: run}
}

// Run executes the initialization sequence in root. Each step is awaited to
// completion; any external command failure aborts the whole operation.
func (i *Initializer) Run(ctx context.Context, root string, info *appinfo.Info, opts Options) (*Application, error) {
	initArgs := append(append([]string{}, i.run.Args...), "init", "--ci", "--app-name", info.Name)
	if err := i.exec.Run(ctx, i.run.Command, initArgs, root); err != nil {
		return nil, err
	}

	// The init command may have just created the project directory.
	projectDir, found, err := lookup.NewService(i.fs).FindProjectDir(ctx, root)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("in %q: %w", root, ErrProjectNotFound)
	}

	doc, err := tauriconf.Load(ctx, i.fs, filepath.Join(projectDir, tauriconf.Filename))
	if err != nil {
		return nil, err
	}

	if err := doc.SetVersion(info.Version); err != nil {
		return nil, err
	}
	if err := i.applyProductName(ctx, root, doc); err != nil {
		return nil, err
	}
	if opts.BundleIdentifier != "" {
		if err := doc.SetBundleIdentifier(opts.BundleIdentifier); err != nil {
			return nil, err
		}
	}

	if err := doc.Save(ctx, i.fs); err != nil {
		return nil, err
	}

	if opts.IconPath != "" {
		iconArgs := append(append([]string{}, i.run.Args...), "icon", opts.IconPath)
		if err := i.exec.Run(ctx, i.run.Command, iconArgs, root); err != nil {
			return nil, err
		}
	}

	return &Application{
		ProjectDir:  projectDir,
		Runner:      i.run,
		Name:        info.Name,
		Version:     info.Version,
		WixLanguage: info.WixLanguage,
	}, nil
}

// applyProductName overrides the generated productName with the one the JS
// manifest declares, when it declares one.
func (i *Initializer) applyProductName(ctx context.Context, root string, doc *tauriconf.Document) error {
	pkg, err := manifest.LoadPackageJSON(ctx, i.fs, filepath.Join(root, "package.json"))
	if err != nil {
		var notFound *manifest.NotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	if pkg.ProductName == "" {
		return nil
	}
	return doc.SetProductName(pkg.ProductName)
}
