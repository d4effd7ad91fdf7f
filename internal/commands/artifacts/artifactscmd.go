// Package artifacts implements the "artifacts" command: discover installer
// outputs under the bundle directory and print their canonical names.
package artifacts

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/indaco/tauripack/internal/actions"
	"github.com/indaco/tauripack/internal/artifact"
	"github.com/indaco/tauripack/internal/config"
	"github.com/indaco/tauripack/internal/core"
	"github.com/indaco/tauripack/internal/lookup"
	"github.com/indaco/tauripack/internal/printer"
	"github.com/urfave/cli/v3"
)

// ErrNoProject is returned when artifact discovery runs without a native
// project directory to anchor the target dir.
var ErrNoProject = errors.New("no native project directory found")

// Run returns the "artifacts" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "artifacts",
		Usage:     "List build artifacts with canonical names",
		UsageText: "tauripack artifacts [--root dir] [--debug] [--target-dir dir]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "Repository root to inspect",
				Value:   cfg.ProjectPath,
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Look under the debug profile instead of release",
				Value: cfg.Debug,
			},
			&cli.StringFlag{
				Name:    "target-dir",
				Usage:   "Cargo target directory override",
				Sources: cli.EnvVars("CARGO_TARGET_DIR"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runArtifactsCmd(ctx, cmd)
		},
	}
}

func runArtifactsCmd(ctx context.Context, cmd *cli.Command) error {
	fsys := core.NewOSFileSystem()
	svc := lookup.NewService(fsys)

	projectDir, found, err := svc.FindProjectDir(ctx, cmd.String("root"))
	if err != nil {
		return err
	}
	if !found {
		return ErrNoProject
	}

	targetDir, err := svc.ResolveTargetDir(ctx, projectDir, lookup.TargetDirOptions{
		TargetDirEnv: cmd.String("target-dir"),
	})
	if err != nil {
		return err
	}

	profile := "release"
	if cmd.Bool("debug") {
		profile = "debug"
	}
	bundleDir := filepath.Join(targetDir, profile, "bundle")

	arts, err := artifact.Find(ctx, fsys, bundleDir)
	if err != nil {
		return err
	}
	if len(arts) == 0 {
		printer.PrintFaint("No artifacts found under " + bundleDir)
		return nil
	}

	paths := make([]string, 0, len(arts))
	for _, a := range arts {
		printer.PrintInfo(a.Path + " -> " + a.Name)
		paths = append(paths, a.Path)
	}
	actions.SetOutput("artifacts", strings.Join(paths, "\n"))

	return nil
}
