// Package info implements the "info" command: resolve project metadata and
// export it for later pipeline steps.
package info

import (
	"context"

	"github.com/indaco/tauripack/internal/actions"
	"github.com/indaco/tauripack/internal/appinfo"
	"github.com/indaco/tauripack/internal/config"
	"github.com/indaco/tauripack/internal/core"
	"github.com/indaco/tauripack/internal/printer"
	"github.com/urfave/cli/v3"
)

// Run returns the "info" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "Resolve app name, version and installer language",
		UsageText: "tauripack info [--root dir] [--config path]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "Repository root to inspect",
				Value:   cfg.ProjectPath,
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Explicit path to the native configuration file",
				Value: cfg.ConfigPath,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runInfoCmd(ctx, cmd)
		},
	}
}

func runInfoCmd(ctx context.Context, cmd *cli.Command) error {
	fsys := core.NewOSFileSystem()

	info, err := appinfo.Resolve(ctx, fsys, cmd.String("root"), appinfo.Options{
		ConfigPath: cmd.String("config"),
	})
	if err != nil {
		return err
	}

	printer.PrintInfo("App name: " + info.Name)
	printer.PrintInfo("App version: " + info.Version)
	printer.PrintInfo("Installer language: " + info.WixLanguage)
	if info.ProjectDir != "" {
		printer.PrintInfo("Project directory: " + info.ProjectDir)
	} else {
		printer.PrintFaint("No native project directory present")
	}

	actions.SetOutput("appName", info.Name)
	actions.SetOutput("appVersion", info.Version)
	actions.SetOutput("wixLanguage", info.WixLanguage)
	actions.SetOutput("projectDir", info.ProjectDir)

	return nil
}
