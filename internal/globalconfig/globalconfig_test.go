package globalconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	root := filepath.Join(home, "dumps")
	cfg := &PersistentConfig{
		StorageRoot: root,
		Languages:   []string{"en", "de"},
		DumpURL:     "https://mirror.example.org/%swiki/latest/%swiki-latest-pages-articles.xml.bz2",
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// paths under $HOME are stored in ~ form
	data, err := os.ReadFile(filepath.Join(home, configDir, configFile))
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), "~/dumps") {
		t.Errorf("expected ~ form in config, got:\n%s", data)
	}

	loaded, err := LoadPersistentConfig()
	if err != nil {
		t.Fatalf("LoadPersistentConfig: %v", err)
	}
	if loaded.StorageRoot != root {
		t.Errorf("expected storage root %s, got %s", root, loaded.StorageRoot)
	}
	if len(loaded.Languages) != 2 || loaded.Languages[0] != "en" {
		t.Errorf("unexpected languages: %v", loaded.Languages)
	}
	if loaded.DumpURL != cfg.DumpURL {
		t.Errorf("unexpected dump_url: %s", loaded.DumpURL)
	}
}

func TestLoadWithoutConfigFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := LoadPersistentConfig(); err == nil {
		t.Fatal("expected error without config file")
	}
}

func TestLoadRejectsInsecureDumpURL(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, configDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := "storage_root: ~/dumps\nlanguages: [en]\ndump_url: http://dumps.wikimedia.org/%swiki/latest/%swiki-latest-pages-articles.xml.bz2\n"
	if err := os.WriteFile(filepath.Join(dir, configFile), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := LoadPersistentConfig(); err == nil {
		t.Fatal("expected error for plain http dump_url")
	}
}

func TestLoadRejectsMissingStorageRoot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, configDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, configFile), []byte("languages: [en]\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := LoadPersistentConfig(); err == nil {
		t.Fatal("expected error for missing storage_root")
	}
}
