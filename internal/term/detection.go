// Package term answers the only terminal question this tool asks: whether
// styled output should be suppressed.
package term

import (
	"os"

	"github.com/muesli/termenv"
)

// NoColor reports whether colored output should be disabled. CI environments
// and the conventional NO_COLOR/CLICOLOR variables both turn color off.
func NoColor() bool {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return true
	}
	return termenv.EnvNoColor()
}
