// Package actions writes step outputs when running inside GitHub Actions
// and degrades to plain printing elsewhere.
package actions

import (
	"os"

	"github.com/indaco/tauripack/internal/printer"
	"github.com/sethvargo/go-githubactions"
)

// Available reports whether we are running inside a GitHub Actions job.
func Available() bool {
	return os.Getenv("GITHUB_ACTIONS") == "true"
}

// SetOutput exports a step output. Outside of Actions the pair is printed
// so local runs stay inspectable.
func SetOutput(key, value string) {
	if Available() {
		githubactions.SetOutput(key, value)
		return
	}
	printer.PrintFaint(key + "=" + value)
}
