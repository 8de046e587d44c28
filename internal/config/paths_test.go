package config

import (
	"path/filepath"
	"testing"
)

func TestPathsUnderHome(t *testing.T) {
	home := isolateEnv(t)

	dataDir, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir: %v", err)
	}
	if want := filepath.Join(home, ".phonepad"); dataDir != want {
		t.Fatalf("unexpected data dir: got=%q want=%q", dataDir, want)
	}

	cfgPath, err := CoreConfigPath()
	if err != nil {
		t.Fatalf("CoreConfigPath: %v", err)
	}
	if want := filepath.Join(home, ".phonepad", "config.toml"); cfgPath != want {
		t.Fatalf("unexpected config path: got=%q want=%q", cfgPath, want)
	}

	charsets, err := CharsetsDir()
	if err != nil {
		t.Fatalf("CharsetsDir: %v", err)
	}
	if want := filepath.Join(home, ".phonepad", "charsets"); charsets != want {
		t.Fatalf("unexpected charsets dir: got=%q want=%q", charsets, want)
	}
}

func TestPathsHonorOverrides(t *testing.T) {
	isolateEnv(t)
	root := t.TempDir()
	t.Setenv(envHome, root)
	t.Setenv(envConfig, filepath.Join(root, "elsewhere.toml"))

	cfgPath, err := CoreConfigPath()
	if err != nil {
		t.Fatalf("CoreConfigPath: %v", err)
	}
	if want := filepath.Join(root, "elsewhere.toml"); cfgPath != want {
		t.Fatalf("unexpected config path: got=%q want=%q", cfgPath, want)
	}
	charsets, err := CharsetsDir()
	if err != nil {
		t.Fatalf("CharsetsDir: %v", err)
	}
	if want := filepath.Join(root, "charsets"); charsets != want {
		t.Fatalf("unexpected charsets dir: got=%q want=%q", charsets, want)
	}
}

func TestResolveConfigPath(t *testing.T) {
	home := isolateEnv(t)
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "~/layouts", want: filepath.Join(home, "layouts")},
		{raw: "/abs/de.toml", want: "/abs/de.toml"},
		{raw: "rel/de.toml", want: filepath.Join(home, ".phonepad", "rel", "de.toml")},
	}
	for _, tt := range tests {
		got, err := resolveConfigPath(tt.raw)
		if err != nil {
			t.Fatalf("resolveConfigPath(%q): %v", tt.raw, err)
		}
		if got != tt.want {
			t.Fatalf("resolveConfigPath(%q): got=%q want=%q", tt.raw, got, tt.want)
		}
	}
	if _, err := resolveConfigPath("  "); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
