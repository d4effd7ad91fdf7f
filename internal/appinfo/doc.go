// Package appinfo reconciles application name, version and installer locale
// from the native configuration, the Cargo manifest and the JavaScript
// package manifest under a fixed precedence.
package appinfo
