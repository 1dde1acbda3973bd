package internal

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/wikisync/wikisync/internal/globalconfig"
)

func TestSyncCmd_FlagValidation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := &globalconfig.PersistentConfig{
		StorageRoot: filepath.Join(home, "dumps"),
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("save config: %v", err)
	}

	tests := []struct {
		name string
		args []string
	}{
		{
			name: "--all with named languages",
			args: []string{"sync", "en", "--all", "--offline"},
		},
		{
			name: "--all with empty tracked list",
			args: []string{"sync", "--all", "--offline"},
		},
		{
			name: "full locale instead of language code",
			args: []string{"sync", "en_US", "--offline"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := NewRootCmd()
			root.SetArgs(tt.args)
			_, err := root.ExecuteC()

			if err == nil {
				t.Fatalf("expected error, got nil")
			}

			if !strings.Contains(err.Error(), "already logged") {
				t.Errorf("expected sentinel error, got: %v", err)
			}
		})
	}
}

func TestSyncCmd_MissingConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	root := NewRootCmd()
	root.SetArgs([]string{"sync", "en", "--offline"})
	_, err := root.ExecuteC()

	if err == nil || !strings.Contains(err.Error(), "missing config") {
		t.Fatalf("expected missing config error, got: %v", err)
	}
}
