// Package cli assembles the root command for the tauripack binary.
package cli

import (
	"context"
	"fmt"

	"github.com/indaco/tauripack/internal/commands/artifacts"
	"github.com/indaco/tauripack/internal/commands/info"
	"github.com/indaco/tauripack/internal/commands/initialize"
	"github.com/indaco/tauripack/internal/config"
	"github.com/indaco/tauripack/internal/printer"
	"github.com/indaco/tauripack/internal/term"
	"github.com/indaco/tauripack/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

var noColorFlag bool

// New builds and returns the root CLI command,
// configuring all subcommands and flags for the tauripack cli.
func New(cfg *config.Config) *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "tauripack",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "CI helper for initializing and packaging Tauri desktop shells",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(noColorFlag || term.NoColor())
			return ctx, nil
		},
		Commands: []*urfavecli.Command{
			info.Run(cfg),
			initialize.Run(cfg),
			artifacts.Run(cfg),
		},
	}
}
