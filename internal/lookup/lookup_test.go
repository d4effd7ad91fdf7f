package lookup

import (
	"context"
	"testing"

	"github.com/indaco/tauripack/internal/core"
)

func TestService_FindProjectDir(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/repo/package.json", []byte(`{}`))
	fs.SetFile("/repo/src-tauri/tauri.conf.json", []byte(`{}`))

	svc := NewService(fs)
	dir, found, err := svc.FindProjectDir(context.Background(), "/repo")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatal("found = false, want true")
	}
	if dir != "/repo/src-tauri" {
		t.Errorf("dir = %q, want %q", dir, "/repo/src-tauri")
	}
}

func TestService_FindProjectDir_NotFound(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/repo/package.json", []byte(`{}`))

	svc := NewService(fs)
	_, found, err := svc.FindProjectDir(context.Background(), "/repo")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("found = true, want false")
	}
}

func TestService_FindProjectDir_DefaultExcludes(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/repo/node_modules/pkg/tauri.conf.json", []byte(`{}`))
	fs.SetFile("/repo/target/bundle/tauri.conf.json", []byte(`{}`))

	svc := NewService(fs)
	_, found, err := svc.FindProjectDir(context.Background(), "/repo")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("found config under excluded directory, want none")
	}
}

func TestService_FindProjectDir_IgnoreSpec(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/repo/.taurignore", []byte("build-output/\n"))
	fs.SetFile("/repo/build-output/src-tauri/tauri.conf.json", []byte(`{}`))
	fs.SetFile("/repo/shell/tauri.conf.json", []byte(`{}`))

	svc := NewService(fs)
	dir, found, err := svc.FindProjectDir(context.Background(), "/repo")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatal("found = false, want true")
	}
	if dir != "/repo/shell" {
		t.Errorf("dir = %q, want %q", dir, "/repo/shell")
	}
}

func TestService_FindProjectDir_ShallowestWins(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/repo/deep/nested/src-tauri/tauri.conf.json", []byte(`{}`))
	fs.SetFile("/repo/src-tauri/tauri.conf.json", []byte(`{}`))

	svc := NewService(fs)
	dir, _, err := svc.FindProjectDir(context.Background(), "/repo")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != "/repo/src-tauri" {
		t.Errorf("dir = %q, want shallowest %q", dir, "/repo/src-tauri")
	}
}

func TestService_FindProjectDir_LexicographicTieBreak(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/repo/beta/tauri.conf.json", []byte(`{}`))
	fs.SetFile("/repo/alpha/tauri.conf.json", []byte(`{}`))

	svc := NewService(fs)
	dir, _, err := svc.FindProjectDir(context.Background(), "/repo")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != "/repo/alpha" {
		t.Errorf("dir = %q, want %q", dir, "/repo/alpha")
	}
}

func TestService_FindWorkspaceRoot(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/ws/Cargo.toml", []byte("[workspace]\nmembers = [\"src-tauri\", \"crates/*\"]\n"))
	fs.SetFile("/ws/src-tauri/Cargo.toml", []byte("[package]\nname = \"shell\"\nversion = \"0.1.0\"\n"))

	svc := NewService(fs)
	root, err := svc.FindWorkspaceRoot(context.Background(), "/ws/src-tauri")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root != "/ws" {
		t.Errorf("root = %q, want %q", root, "/ws")
	}
}

func TestService_FindWorkspaceRoot_GlobMember(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/ws/Cargo.toml", []byte("[workspace]\nmembers = [\"crates/*\"]\n"))
	fs.SetFile("/ws/crates/shell/Cargo.toml", []byte("[package]\nname = \"shell\"\n"))

	svc := NewService(fs)
	root, err := svc.FindWorkspaceRoot(context.Background(), "/ws/crates/shell")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root != "/ws" {
		t.Errorf("root = %q, want %q", root, "/ws")
	}
}

func TestService_FindWorkspaceRoot_NoWorkspace(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/repo/src-tauri/Cargo.toml", []byte("[package]\nname = \"shell\"\n"))

	svc := NewService(fs)
	root, err := svc.FindWorkspaceRoot(context.Background(), "/repo/src-tauri")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root != "/repo/src-tauri" {
		t.Errorf("root = %q, want start dir %q", root, "/repo/src-tauri")
	}
}

func TestService_ResolveTargetDir_CargoConfig(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/ws/Cargo.toml", []byte("[workspace]\nmembers = [\"src-tauri\"]\n"))
	fs.SetFile("/ws/.cargo/config.toml", []byte("[build]\ntarget-dir = \"out\"\n"))
	fs.SetFile("/ws/src-tauri/Cargo.toml", []byte("[package]\nname = \"shell\"\n"))

	svc := NewService(fs)
	dir, err := svc.ResolveTargetDir(context.Background(), "/ws/src-tauri", TargetDirOptions{})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != "/ws/out" {
		t.Errorf("dir = %q, want %q", dir, "/ws/out")
	}
}

func TestService_ResolveTargetDir_EnvOverride(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/ws/src-tauri/Cargo.toml", []byte("[package]\nname = \"shell\"\n"))

	svc := NewService(fs)
	dir, err := svc.ResolveTargetDir(context.Background(), "/ws/src-tauri", TargetDirOptions{
		TargetDirEnv: "/custom/target",
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != "/custom/target" {
		t.Errorf("dir = %q, want env override %q", dir, "/custom/target")
	}
}

func TestService_ResolveTargetDir_Default(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/ws/Cargo.toml", []byte("[workspace]\nmembers = [\"src-tauri\"]\n"))
	fs.SetFile("/ws/src-tauri/Cargo.toml", []byte("[package]\nname = \"shell\"\n"))

	svc := NewService(fs)
	dir, err := svc.ResolveTargetDir(context.Background(), "/ws/src-tauri", TargetDirOptions{})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != "/ws/target" {
		t.Errorf("dir = %q, want %q", dir, "/ws/target")
	}
}
