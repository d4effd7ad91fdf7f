package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/indaco/tauripack/internal/core"
	"github.com/indaco/tauripack/internal/manifest"
)

// tauriCLIPackage is the npm package that provides the Tauri CLI.
const tauriCLIPackage = "@tauri-apps/cli"

// Runner describes how to invoke the external Tauri CLI: the command plus
// the argument prefix prepended before every subcommand.
type Runner struct {
	Command string
	Args    []string
}

// String returns the full invocation prefix for display.
func (r Runner) String() string {
	if len(r.Args) == 0 {
		return r.Command
	}
	return r.Command + " " + strings.Join(r.Args, " ")
}

// Parse builds a Runner from a space-separated invocation like
// "npm run tauri --". An empty string yields the cargo default.
func Parse(spec string) Runner {
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return Runner{Command: "cargo", Args: []string{"tauri"}}
	}
	return Runner{Command: fields[0], Args: fields[1:]}
}

// Detect picks a Runner for the repository at root. When package.json
// declares @tauri-apps/cli, the JS package manager owns the CLI; lockfiles
// disambiguate which one. Otherwise the cargo subcommand is assumed.
func Detect(ctx context.Context, fsys core.FileSystem, root string) Runner {
	pkg, err := manifest.LoadPackageJSON(ctx, fsys, filepath.Join(root, "package.json"))
	if err != nil || !pkg.HasDependency(tauriCLIPackage) {
		return Runner{Command: "cargo", Args: []string{"tauri"}}
	}

	if _, err := fsys.Stat(ctx, filepath.Join(root, "yarn.lock")); err == nil {
		return Runner{Command: "yarn", Args: []string{"tauri"}}
	}
	if _, err := fsys.Stat(ctx, filepath.Join(root, "pnpm-lock.yaml")); err == nil {
		return Runner{Command: "pnpm", Args: []string{"tauri"}}
	}
	return Runner{Command: "npm", Args: []string{"run", "tauri", "--"}}
}

// CommandError reports a failed external command invocation.
type CommandError struct {
	Command string
	Args    []string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q failed: %v", e.Command+" "+strings.Join(e.Args, " "), e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit status, or -1 when the command did not
// run at all.
func (e *CommandError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// Executor runs external commands to completion. Standard streams are
// inherited so build output stays visible in CI logs.
type Executor interface {
	Run(ctx context.Context, command string, args []string, dir string) error
}

// ExecExecutor is the production Executor backed by os/exec.
type ExecExecutor struct{}

// Run executes the command in dir and waits for it. Color output is forced
// off so captured logs stay deterministic.
func (ExecExecutor) Run(ctx context.Context, command string, args []string, dir string) error {
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), "NO_COLOR=1", "FORCE_COLOR=0")

	if err := cmd.Run(); err != nil {
		return &CommandError{Command: command, Args: args, Err: err}
	}
	return nil
}
