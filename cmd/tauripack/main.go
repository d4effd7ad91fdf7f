package main

import (
	"context"
	"os"

	"github.com/indaco/tauripack/internal/cli"
	"github.com/indaco/tauripack/internal/config"
	"github.com/indaco/tauripack/internal/printer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		printer.PrintError(err.Error())
		os.Exit(1)
	}

	cmd := cli.New(cfg)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		printer.PrintError(err.Error())
		os.Exit(1)
	}
}
