package lookup

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/indaco/tauripack/internal/core"
	"github.com/indaco/tauripack/internal/manifest"
	ignore "github.com/sabhiram/go-gitignore"
)

const (
	// ConfigFilename is the native project configuration file we search for.
	ConfigFilename = "tauri.conf.json"

	// IgnoreFilename is the optional root-level ignore-spec file.
	IgnoreFilename = ".taurignore"
)

// defaultExcludes are directory names skipped when no ignore-spec file is
// present. Hidden directories are skipped as well.
var defaultExcludes = []string{"node_modules", "target", "dist", "build", "vendor"}

// Service provides project directory lookup functionality.
type Service struct {
	fs core.FileSystem
}

// NewService creates a new lookup Service.
func NewService(fs core.FileSystem) *Service {
	return &Service{fs: fs}
}

// FindProjectDir searches beneath root for a directory containing
// tauri.conf.json, honoring .taurignore rules when present. Absence is a
// legitimate state reported via the bool, not an error. When several
// candidates exist the shallowest path wins, with a lexicographic tie-break,
// so the result is deterministic for a given tree.
func (s *Service) FindProjectDir(ctx context.Context, root string) (string, bool, error) {
	matcher, err := s.loadMatcher(ctx, root)
	if err != nil {
		return "", false, err
	}

	var matches []string
	if err := s.walk(ctx, root, root, matcher, &matches); err != nil {
		return "", false, err
	}
	if len(matches) == 0 {
		return "", false, nil
	}

	sort.Slice(matches, func(i, j int) bool {
		di := strings.Count(matches[i], string(filepath.Separator))
		dj := strings.Count(matches[j], string(filepath.Separator))
		if di != dj {
			return di < dj
		}
		return matches[i] < matches[j]
	})

	return filepath.Dir(matches[0]), true, nil
}

// excludeFunc reports whether a directory entry should be skipped.
// name is the entry basename, rel the slash-separated path relative to root.
type excludeFunc func(name, rel string, isDir bool) bool

// loadMatcher builds the exclusion rules: .taurignore when present,
// otherwise the built-in default set.
func (s *Service) loadMatcher(ctx context.Context, root string) (excludeFunc, error) {
	ignorePath := filepath.Join(root, IgnoreFilename)
	if _, err := s.fs.Stat(ctx, ignorePath); err == nil {
		data, err := s.fs.ReadFile(ctx, ignorePath)
		if err != nil {
			return nil, err
		}
		gi := ignore.CompileIgnoreLines(strings.Split(string(data), "\n")...)
		return func(_, rel string, _ bool) bool {
			return gi.MatchesPath(rel)
		}, nil
	}

	return func(name, _ string, isDir bool) bool {
		if !isDir {
			return false
		}
		if strings.HasPrefix(name, ".") {
			return true
		}
		for _, skip := range defaultExcludes {
			if name == skip {
				return true
			}
		}
		return false
	}, nil
}

// walk recursively collects tauri.conf.json paths beneath dir.
func (s *Service) walk(ctx context.Context, root, dir string, exclude excludeFunc, matches *[]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := s.fs.ReadDir(ctx, dir)
	if err != nil {
		// Skip directories we can't read.
		return nil
	}

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if exclude(name, rel, entry.IsDir()) {
			continue
		}

		if entry.IsDir() {
			if err := s.walk(ctx, root, path, exclude, matches); err != nil {
				return err
			}
		} else if name == ConfigFilename {
			*matches = append(*matches, path)
		}
	}

	return nil
}

// FindWorkspaceRoot walks upward from start looking for a Cargo.toml whose
// [workspace] members list contains start. The walk terminates at the
// filesystem root; when no declaring workspace is found, start is returned.
func (s *Service) FindWorkspaceRoot(ctx context.Context, start string) (string, error) {
	start = filepath.Clean(start)
	dir := start
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		manifestPath := filepath.Join(dir, "Cargo.toml")
		if _, err := s.fs.Stat(ctx, manifestPath); err == nil {
			m, err := manifest.LoadCargo(ctx, s.fs, manifestPath)
			if err == nil && m.Workspace != nil && s.isMember(dir, start, m.Workspace.Members) {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return start, nil
		}
		dir = parent
	}
}

// isMember reports whether start matches one of the workspace member globs
// declared relative to dir.
func (s *Service) isMember(dir, start string, members []string) bool {
	if dir == start {
		return true
	}
	rel, err := filepath.Rel(dir, start)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, member := range members {
		member = filepath.ToSlash(filepath.Clean(member))
		if member == rel {
			return true
		}
		if ok, err := filepath.Match(member, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// TargetDirOptions carries explicit inputs for ResolveTargetDir.
type TargetDirOptions struct {
	// TargetDirEnv is the CARGO_TARGET_DIR override. The caller reads the
	// environment so resolution itself stays pure.
	TargetDirEnv string
}

// cargoBuildConfig is the subset of .cargo/config.toml we consult.
type cargoBuildConfig struct {
	Build struct {
		TargetDir string `toml:"target-dir"`
	} `toml:"build"`
}

// ResolveTargetDir determines the Cargo build output directory for a project.
// Precedence: build.target-dir from a local .cargo/config.toml (project dir
// first, then workspace root), the explicit environment override, then
// <workspaceRoot>/target.
func (s *Service) ResolveTargetDir(ctx context.Context, projectDir string, opts TargetDirOptions) (string, error) {
	wsRoot, err := s.FindWorkspaceRoot(ctx, projectDir)
	if err != nil {
		return "", err
	}

	for _, dir := range []string{projectDir, wsRoot} {
		for _, name := range []string{"config.toml", "config"} {
			path := filepath.Join(dir, ".cargo", name)
			targetDir, ok := s.readTargetDir(ctx, path)
			if !ok {
				continue
			}
			if !filepath.IsAbs(targetDir) {
				targetDir = filepath.Join(dir, targetDir)
			}
			return targetDir, nil
		}
		if dir == wsRoot {
			break
		}
	}

	if opts.TargetDirEnv != "" {
		return opts.TargetDirEnv, nil
	}

	return filepath.Join(wsRoot, "target"), nil
}

// readTargetDir reads build.target-dir from a cargo config file.
// Missing or malformed files resolve to "not set".
func (s *Service) readTargetDir(ctx context.Context, path string) (string, bool) {
	data, err := s.fs.ReadFile(ctx, path)
	if err != nil {
		return "", false
	}
	var cfg cargoBuildConfig
	if err := manifest.UnmarshalTOML(data, &cfg); err != nil {
		return "", false
	}
	if cfg.Build.TargetDir == "" {
		return "", false
	}
	return cfg.Build.TargetDir, true
}
