package tauriconf

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/indaco/tauripack/internal/core"
	"github.com/tailscale/hujson"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Filename is the canonical native configuration filename.
const Filename = "tauri.conf.json"

// ParseError indicates the configuration could not be parsed by any of the
// fallback parsers. Err is the original strict-JSON parse error.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse config at %q: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Document is a parsed native configuration. It wraps normalized JSON bytes
// so field access tolerates any missing key and a rewrite passes unknown
// fields through unmodified.
type Document struct {
	path string
	raw  []byte
}

// Load reads and parses the configuration at path. The parse chain is:
// strict JSON, then the relaxed variant (comments, trailing commas) of the
// same contents, then the relaxed variant of a .json5 sibling. When all
// three fail, the original strict-JSON error is propagated.
func Load(ctx context.Context, fsys core.FileSystem, path string) (*Document, error) {
	data, err := fsys.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	var probe any
	strictErr := json.Unmarshal(data, &probe)
	if strictErr == nil {
		return &Document{path: path, raw: data}, nil
	}

	if std, err := hujson.Standardize(data); err == nil {
		return &Document{path: path, raw: std}, nil
	}

	sibling := siblingJSON5(path)
	if data5, err := fsys.ReadFile(ctx, sibling); err == nil {
		if std, err := hujson.Standardize(data5); err == nil {
			return &Document{path: sibling, raw: std}, nil
		}
	}

	return nil, &ParseError{Path: path, Err: strictErr}
}

// siblingJSON5 maps tauri.conf.json to tauri.conf.json5 in the same directory.
func siblingJSON5(path string) string {
	if strings.HasSuffix(path, ".json") {
		return path + "5"
	}
	return path + ".json5"
}

// Path returns the file the document was loaded from.
func (d *Document) Path() string {
	return d.path
}

// field reads a string value at a gjson path, reporting presence.
func (d *Document) field(path string) (string, bool) {
	res := gjson.GetBytes(d.raw, path)
	if !res.Exists() {
		return "", false
	}
	return res.String(), true
}

// ProductName returns package.productName if set.
func (d *Document) ProductName() (string, bool) {
	return d.field("package.productName")
}

// Version returns package.version if set.
func (d *Document) Version() (string, bool) {
	return d.field("package.version")
}

// BundleIdentifier returns bundle.identifier if set.
func (d *Document) BundleIdentifier() (string, bool) {
	return d.field("bundle.identifier")
}

// WixLanguage returns bundle.windows.wix.language if set.
func (d *Document) WixLanguage() (string, bool) {
	return d.field("bundle.windows.wix.language")
}

// set updates a single field, leaving the rest of the document untouched.
func (d *Document) set(path, value string) error {
	updated, err := sjson.SetBytes(d.raw, path, value)
	if err != nil {
		return fmt.Errorf("failed to set %q in %q: %w", path, d.path, err)
	}
	d.raw = updated
	return nil
}

// SetVersion sets package.version.
func (d *Document) SetVersion(version string) error {
	return d.set("package.version", version)
}

// SetProductName sets package.productName.
func (d *Document) SetProductName(name string) error {
	return d.set("package.productName", name)
}

// SetBundleIdentifier sets bundle.identifier. Sibling bundle fields are
// preserved: this is a structural merge, not a replacement.
func (d *Document) SetBundleIdentifier(identifier string) error {
	return d.set("bundle.identifier", identifier)
}

// Save rewrites the document to its file as pretty-printed JSON with 2-space
// indentation. The prior contents are fully replaced; comments from a
// relaxed-JSON original do not survive.
func (d *Document) Save(ctx context.Context, fsys core.FileSystem) error {
	out := pretty.PrettyOptions(d.raw, &pretty.Options{Width: 80, Indent: "  "})
	if len(out) > 0 && out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	if err := fsys.WriteFile(ctx, d.path, out, core.PermOwnerRW); err != nil {
		return fmt.Errorf("failed to write config %q: %w", d.path, err)
	}
	return nil
}
