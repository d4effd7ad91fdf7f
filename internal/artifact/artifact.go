package artifact

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/indaco/tauripack/internal/core"
)

// knownSuffixes lists installer suffixes in match order, most specific
// first, so ".app.tar.gz.sig" wins over ".app.tar.gz".
var knownSuffixes = []string{
	".app.tar.gz.sig",
	".app.tar.gz",
	".AppImage.tar.gz.sig",
	".AppImage.tar.gz",
	".msi.zip.sig",
	".msi.zip",
	".nsis.zip.sig",
	".nsis.zip",
	".app",
	".AppImage",
	".dmg",
	".msi",
	".deb",
	".rpm",
	".exe",
}

// Architecture tags appended to app-bundle archive names.
const (
	archUniversal = "_universal"
	archARM64     = "_aarch64"
	archX64       = "_x64"
)

// Artifact pairs a raw build output path with its canonical display name.
type Artifact struct {
	Path string
	Name string
	Arch string
}

// Rename derives the canonical display filename for a raw artifact path.
//
// The basename is matched against the known suffix table; without a match
// the filesystem extension is used. App-bundle archives get an architecture
// tag derived from target markers in the path, and a "-debug" marker is
// inserted for debug builds.
func Rename(path string) string {
	base := filepath.Base(path)

	suffix := matchSuffix(base)
	if suffix == "" {
		suffix = filepath.Ext(base)
	}
	stem := strings.TrimSuffix(base, suffix)

	var marker string
	if hasDebugSegment(path) {
		marker = "-debug"
	}

	var arch string
	if suffix == ".app.tar.gz" || suffix == ".app.tar.gz.sig" {
		arch = archTag(path)
	}

	return stem + marker + arch + suffix
}

// archTag derives the architecture tag from target markers in the path.
func archTag(path string) string {
	switch {
	case strings.Contains(path, "universal-apple-darwin"):
		return archUniversal
	case strings.Contains(path, "aarch64"):
		return archARM64
	default:
		return archX64
	}
}

// matchSuffix returns the first known suffix matching the basename.
func matchSuffix(base string) string {
	for _, suffix := range knownSuffixes {
		if strings.HasSuffix(base, suffix) {
			return suffix
		}
	}
	return ""
}

// hasDebugSegment reports whether the path contains a debug build directory.
func hasDebugSegment(path string) bool {
	for _, seg := range strings.Split(filepath.ToSlash(path), "/") {
		if seg == "debug" {
			return true
		}
	}
	return false
}

// arch returns the tag recorded on an Artifact for app-bundle archives,
// empty otherwise.
func arch(path, suffix string) string {
	if suffix == ".app.tar.gz" || suffix == ".app.tar.gz.sig" {
		return archTag(path)
	}
	return ""
}

// Find walks bundleDir collecting files with known installer suffixes and
// derives their canonical names. Results are sorted by path so output is
// stable across runs.
func Find(ctx context.Context, fsys core.FileSystem, bundleDir string) ([]Artifact, error) {
	var artifacts []Artifact
	if err := walk(ctx, fsys, bundleDir, &artifacts); err != nil {
		return nil, err
	}
	sort.Slice(artifacts, func(i, j int) bool { return artifacts[i].Path < artifacts[j].Path })
	return artifacts, nil
}

func walk(ctx context.Context, fsys core.FileSystem, dir string, artifacts *[]Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := fsys.ReadDir(ctx, dir)
	if err != nil {
		// A missing bundle directory just means no artifacts.
		return nil
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if err := walk(ctx, fsys, path, artifacts); err != nil {
				return err
			}
			continue
		}
		suffix := matchSuffix(entry.Name())
		if suffix == "" {
			continue
		}
		*artifacts = append(*artifacts, Artifact{
			Path: path,
			Name: Rename(path),
			Arch: arch(path, suffix),
		})
	}

	return nil
}
