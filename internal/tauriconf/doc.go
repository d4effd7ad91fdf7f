// Package tauriconf reads and rewrites the native project configuration
// file (tauri.conf.json). The file may be strict JSON, a relaxed variant
// with comments and trailing commas, or live in a .json5 sibling. The
// parsed document keeps its raw bytes so unknown fields survive a rewrite
// untouched.
package tauriconf
