package initiator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wikisync/wikisync/internal/globalconfig"
	"github.com/wikisync/wikisync/internal/logger"
	"github.com/wikisync/wikisync/internal/prompter"
	"github.com/wikisync/wikisync/internal/utils"
	"github.com/wikisync/wikisync/internal/utils/pathutils"
)

type Initiator struct {
	StorageRoot string
	Languages   []string
	Prompter    prompter.Prompter
}

func New(storageRoot string, languages []string, p prompter.Prompter) *Initiator {
	if p == nil {
		p = prompter.New(os.Stdin, os.Stdout)
	}

	return &Initiator{
		StorageRoot: storageRoot,
		Languages:   languages,
		Prompter:    p,
	}
}

func (i *Initiator) Execute() error {
	configDir, err := globalconfig.GetConfigDir()
	if err != nil {
		return err
	}

	exists, err := utils.FileExists(filepath.Join(configDir, "config.yml"))
	if err != nil {
		return err
	}
	if exists {
		ok, err := i.Prompter.Confirm("Configuration already exists, overwrite it?")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !ok {
			logger.Info("Keeping existing configuration")
			return nil
		}
	}

	if i.StorageRoot == "" {
		root, err := i.Prompter.Prompt("Storage root [~/wikisync]: ")
		if err != nil {
			return fmt.Errorf("failed to read storage root: %w", err)
		}
		if root == "" {
			root = "~/wikisync"
		}
		i.StorageRoot = root
	}

	absRoot, err := pathutils.ToAbsolutePath(i.StorageRoot)
	if err != nil {
		return fmt.Errorf("failed to resolve storage root: %w", err)
	}

	if err := os.MkdirAll(absRoot, 0o755); err != nil {
		return fmt.Errorf("failed to create storage root: %w", err)
	}
	logger.Info("Storage root at %s", absRoot)

	cfg := &globalconfig.PersistentConfig{
		StorageRoot: absRoot,
		Languages:   i.Languages,
	}

	return cfg.Save()
}
