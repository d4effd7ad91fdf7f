// Package lookup locates the native project directory inside a repository
// tree and resolves Cargo workspace roots and build target directories.
package lookup
