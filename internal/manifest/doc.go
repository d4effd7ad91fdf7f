// Package manifest reads the declarative manifests surrounding a native
// project: Cargo.toml and the JavaScript package.json.
package manifest
