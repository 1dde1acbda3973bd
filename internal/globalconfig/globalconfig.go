package globalconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wikisync/wikisync/internal/utils"
	"github.com/wikisync/wikisync/internal/utils/pathutils"

	"gopkg.in/yaml.v3"
)

type PersistentConfig struct {
	StorageRoot string   `yaml:"storage_root"`
	Languages   []string `yaml:"languages"`
	// DumpURL optionally overrides the dump mirror; a template with the
	// language substituted twice, https only.
	DumpURL string `yaml:"dump_url,omitempty"`
}

const (
	configDir  = ".config/wikisync"
	configFile = "config.yml"
)

func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, configDir), nil
}

func LoadPersistentConfig() (*PersistentConfig, error) {
	fullConfigDir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}
	configPath := filepath.Join(fullConfigDir, configFile)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("no configuration found. Please run 'wikisync init' first")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg PersistentConfig
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
	}

	if cfg.StorageRoot == "" {
		return nil, fmt.Errorf("storage_root missing from %s", configPath)
	}

	absRoot, err := pathutils.ToAbsolutePath(cfg.StorageRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage root: %w", err)
	}
	cfg.StorageRoot = absRoot

	if cfg.DumpURL != "" {
		// render the template first: a literal %s is not a valid URL escape
		if _, err := utils.ParseSecureURL(fmt.Sprintf(cfg.DumpURL, "en", "en")); err != nil {
			return nil, fmt.Errorf("invalid dump_url: %w", err)
		}
	}

	return &cfg, nil
}

func (c *PersistentConfig) Save() error {
	configDirRights := 0o755
	configFileRights := 0o644

	fullConfigDir, err := GetConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(fullConfigDir, os.FileMode(configDirRights)); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	homePath, err := pathutils.ToHomePathFormat(c.StorageRoot)
	if err != nil {
		return fmt.Errorf("failed to convert to home path format: %w", err)
	}
	c.StorageRoot = homePath

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(filepath.Join(fullConfigDir, configFile), data, os.FileMode(configFileRights))
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
