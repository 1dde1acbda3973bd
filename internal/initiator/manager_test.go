package initiator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wikisync/wikisync/internal/globalconfig"
	"github.com/wikisync/wikisync/internal/logger"
)

type scriptedPrompter struct {
	confirm bool
	answer  string
}

func (s *scriptedPrompter) Confirm(string) (bool, error) { return s.confirm, nil }

func (s *scriptedPrompter) Prompt(string) (string, error) { return s.answer, nil }

func TestExecuteCreatesConfigAndStorageRoot(t *testing.T) {
	logger.UseTestMode()
	home := t.TempDir()
	t.Setenv("HOME", home)

	root := filepath.Join(home, "dumps")
	if err := New(root, []string{"en", "de"}, &scriptedPrompter{}).Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if _, err := os.Stat(root); err != nil {
		t.Fatalf("storage root not created: %v", err)
	}

	cfg, err := globalconfig.LoadPersistentConfig()
	if err != nil {
		t.Fatalf("LoadPersistentConfig: %v", err)
	}
	if cfg.StorageRoot != root {
		t.Errorf("expected storage root %s, got %s", root, cfg.StorageRoot)
	}
	if len(cfg.Languages) != 2 {
		t.Errorf("unexpected languages: %v", cfg.Languages)
	}
}

func TestExecutePromptsForStorageRootWhenUnset(t *testing.T) {
	logger.UseTestMode()
	home := t.TempDir()
	t.Setenv("HOME", home)

	p := &scriptedPrompter{answer: "~/elsewhere"}
	if err := New("", []string{"en"}, p).Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if _, err := os.Stat(filepath.Join(home, "elsewhere")); err != nil {
		t.Fatalf("prompted storage root not created: %v", err)
	}
}

func TestExecuteDefaultsStorageRootOnEmptyAnswer(t *testing.T) {
	logger.UseTestMode()
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := New("", nil, &scriptedPrompter{}).Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if _, err := os.Stat(filepath.Join(home, "wikisync")); err != nil {
		t.Fatalf("default storage root not created: %v", err)
	}
}

func TestExecuteKeepsExistingConfigOnDecline(t *testing.T) {
	logger.UseTestMode()
	home := t.TempDir()
	t.Setenv("HOME", home)

	first := filepath.Join(home, "first")
	if err := New(first, []string{"en"}, &scriptedPrompter{}).Execute(); err != nil {
		t.Fatalf("first Execute: %v", err)
	}

	second := filepath.Join(home, "second")
	if err := New(second, []string{"de"}, &scriptedPrompter{confirm: false}).Execute(); err != nil {
		t.Fatalf("second Execute: %v", err)
	}

	cfg, err := globalconfig.LoadPersistentConfig()
	if err != nil {
		t.Fatalf("LoadPersistentConfig: %v", err)
	}
	if cfg.StorageRoot != first {
		t.Errorf("expected config to keep %s, got %s", first, cfg.StorageRoot)
	}
}

func TestExecuteOverwritesConfigOnConfirm(t *testing.T) {
	logger.UseTestMode()
	home := t.TempDir()
	t.Setenv("HOME", home)

	first := filepath.Join(home, "first")
	if err := New(first, []string{"en"}, &scriptedPrompter{}).Execute(); err != nil {
		t.Fatalf("first Execute: %v", err)
	}

	second := filepath.Join(home, "second")
	if err := New(second, []string{"de"}, &scriptedPrompter{confirm: true}).Execute(); err != nil {
		t.Fatalf("second Execute: %v", err)
	}

	cfg, err := globalconfig.LoadPersistentConfig()
	if err != nil {
		t.Fatalf("LoadPersistentConfig: %v", err)
	}
	if cfg.StorageRoot != second {
		t.Errorf("expected config to switch to %s, got %s", second, cfg.StorageRoot)
	}
}
