package artifact

import (
	"context"
	"testing"

	"github.com/indaco/tauripack/internal/core"
)

func TestRename(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "debug arm64 app bundle",
			path: "/w/target/aarch64-apple-darwin/debug/bundle/macos/MyApp.app.tar.gz",
			want: "MyApp-debug_aarch64.app.tar.gz",
		},
		{
			name: "release universal app bundle",
			path: "/w/target/universal-apple-darwin/release/bundle/macos/MyApp.app.tar.gz",
			want: "MyApp_universal.app.tar.gz",
		},
		{
			name: "release default arch app bundle",
			path: "/w/target/release/bundle/macos/MyApp.app.tar.gz",
			want: "MyApp_x64.app.tar.gz",
		},
		{
			name: "signature keeps full suffix",
			path: "/w/target/release/bundle/macos/MyApp.app.tar.gz.sig",
			want: "MyApp_x64.app.tar.gz.sig",
		},
		{
			name: "msi without arch tag",
			path: "MyApp.msi",
			want: "MyApp.msi",
		},
		{
			name: "msi in debug build",
			path: "/w/target/debug/bundle/msi/MyApp.msi",
			want: "MyApp-debug.msi",
		},
		{
			name: "appimage without arch tag",
			path: "/w/target/release/bundle/appimage/my-app_1.0.0_amd64.AppImage",
			want: "my-app_1.0.0_amd64.AppImage",
		},
		{
			name: "deb package",
			path: "/w/target/release/bundle/deb/my-app_1.0.0_amd64.deb",
			want: "my-app_1.0.0_amd64.deb",
		},
		{
			name: "unknown suffix falls back to extension",
			path: "/w/out/MyApp.custom",
			want: "MyApp.custom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rename(tt.path); got != tt.want {
				t.Errorf("Rename(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestRename_DebugSegmentIsExact(t *testing.T) {
	// A directory merely containing "debug" in its name is not a debug build.
	got := Rename("/w/debugger/bundle/macos/MyApp.app.tar.gz")
	if got != "MyApp_x64.app.tar.gz" {
		t.Errorf("Rename() = %q, want %q", got, "MyApp_x64.app.tar.gz")
	}
}

func TestFind(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/t/release/bundle/macos/MyApp.app.tar.gz", []byte("x"))
	fs.SetFile("/t/release/bundle/macos/MyApp.app.tar.gz.sig", []byte("x"))
	fs.SetFile("/t/release/bundle/msi/MyApp.msi", []byte("x"))
	fs.SetFile("/t/release/bundle/msi/notes.txt", []byte("x"))

	arts, err := Find(context.Background(), fs, "/t/release/bundle")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(arts) != 3 {
		t.Fatalf("len(artifacts) = %d, want 3", len(arts))
	}
	if arts[0].Name != "MyApp_x64.app.tar.gz" {
		t.Errorf("Name = %q, want %q", arts[0].Name, "MyApp_x64.app.tar.gz")
	}
	if arts[0].Arch != "_x64" {
		t.Errorf("Arch = %q, want %q", arts[0].Arch, "_x64")
	}
	if arts[2].Arch != "" {
		t.Errorf("msi Arch = %q, want empty", arts[2].Arch)
	}
}

func TestFind_MissingDir(t *testing.T) {
	fs := core.NewMockFileSystem()

	arts, err := Find(context.Background(), fs, "/t/release/bundle")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(arts) != 0 {
		t.Errorf("len(artifacts) = %d, want 0", len(arts))
	}
}
