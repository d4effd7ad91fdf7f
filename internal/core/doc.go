// Package core provides shared primitives used across the application,
// most notably the FileSystem abstraction that keeps file access testable.
package core
