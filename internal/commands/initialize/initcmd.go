// Package initialize implements the "init" command: run the external
// initializer and reconcile the generated configuration.
package initialize

import (
	"context"

	"github.com/indaco/tauripack/internal/actions"
	"github.com/indaco/tauripack/internal/appinfo"
	"github.com/indaco/tauripack/internal/config"
	"github.com/indaco/tauripack/internal/core"
	"github.com/indaco/tauripack/internal/initializer"
	"github.com/indaco/tauripack/internal/printer"
	"github.com/indaco/tauripack/internal/runner"
	"github.com/urfave/cli/v3"
)

// Run returns the "init" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Initialize the native project and merge resolved metadata",
		UsageText: "tauripack init [--root dir] [--runner spec] [--icon path] [--bundle-identifier id]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "Repository root to operate on",
				Value:   cfg.ProjectPath,
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Explicit path to the native configuration file",
				Value: cfg.ConfigPath,
			},
			&cli.StringFlag{
				Name:  "runner",
				Usage: "External CLI invocation (default: auto-detect)",
				Value: cfg.Runner,
			},
			&cli.StringFlag{
				Name:  "icon",
				Usage: "Source icon path for icon generation",
				Value: cfg.IconPath,
			},
			&cli.StringFlag{
				Name:  "bundle-identifier",
				Usage: "Bundle identifier to set on the merged configuration",
				Value: cfg.BundleIdentifier,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runInitCmd(ctx, cmd)
		},
	}
}

func runInitCmd(ctx context.Context, cmd *cli.Command) error {
	fsys := core.NewOSFileSystem()
	root := cmd.String("root")

	info, err := appinfo.Resolve(ctx, fsys, root, appinfo.Options{
		ConfigPath: cmd.String("config"),
	})
	if err != nil {
		return err
	}

	run := runner.Detect(ctx, fsys, root)
	if spec := cmd.String("runner"); spec != "" {
		run = runner.Parse(spec)
	}
	printer.PrintFaint("Using runner: " + run.String())

	app, err := initializer.New(fsys, runner.ExecExecutor{}, run).Run(ctx, root, info, initializer.Options{
		IconPath:         cmd.String("icon"),
		BundleIdentifier: cmd.String("bundle-identifier"),
	})
	if err != nil {
		return err
	}

	printer.PrintSuccess("Initialized " + app.Name + " v" + app.Version + " in " + app.ProjectDir)
	actions.SetOutput("projectDir", app.ProjectDir)
	actions.SetOutput("appName", app.Name)
	actions.SetOutput("appVersion", app.Version)

	return nil
}
