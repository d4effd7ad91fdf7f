// Package artifact derives canonical, architecture-qualified display names
// for build output files and discovers them under the bundle directory.
package artifact
