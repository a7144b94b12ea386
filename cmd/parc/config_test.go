package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "parc.toml")
	content := `
[output]
color = "off"
context = 5

[check]
jobs = 3
`
	if err := os.WriteFile(manifest, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, ok, err := loadConfig(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("manifest not found")
	}
	if cfg.Output.Color != "off" || cfg.Output.Context != 5 || cfg.Check.Jobs != 3 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfigSearchesUpward(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "parc.toml"), []byte("[check]\njobs = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, ok, err := loadConfig(nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || cfg.Check.Jobs != 2 {
		t.Fatalf("upward search failed: ok=%v cfg=%+v", ok, cfg)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	// A temp dir has no parc.toml anywhere above it in practice, but the
	// search may still escape into the real filesystem; only assert the
	// not-found path when nothing was discovered.
	cfg, ok, err := loadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok && cfg != nil {
		t.Fatal("missing manifest must return nil config")
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "parc.toml"), []byte("not toml ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := loadConfig(dir); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"b.json", "a.json", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(sub, "c.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	files, err := collectFiles([]string{dir, filepath.Join(dir, "a.json")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("got %d files (%v), want 3", len(files), files)
	}
	for i := 1; i < len(files); i++ {
		if files[i-1] >= files[i] {
			t.Fatalf("files not sorted: %v", files)
		}
	}
}

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(good, []byte(`{"ok": true}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte(`{"ok": }`), 0o644); err != nil {
		t.Fatal(err)
	}

	if res := checkFile(good); res.Err != nil || res.ReadErr != nil {
		t.Fatalf("good file: %+v", res)
	}
	if res := checkFile(bad); res.Err == nil {
		t.Fatal("bad file must produce a parse error")
	}
	if res := checkFile(filepath.Join(dir, "absent.json")); res.ReadErr == nil {
		t.Fatal("missing file must produce a read error")
	}
}
