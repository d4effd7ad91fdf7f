// Package runner resolves and executes the external Tauri CLI through
// whichever toolchain the project declares (cargo, npm, yarn or pnpm).
package runner
