package config

import (
	"fmt"
	"time"
)

type Config struct {
	// DumpURLTemplate expects the language twice, e.g.
	// https://dumps.wikimedia.org/enwiki/latest/enwiki-latest-pages-articles.xml.bz2
	DumpURLTemplate string
	HTTPTimeout     time.Duration
	CopyBufferSize  int
	CheckRemote     bool
}

func baseConfig() Config {
	return Config{
		DumpURLTemplate: "https://dumps.wikimedia.org/%swiki/latest/%swiki-latest-pages-articles.xml.bz2",
		HTTPTimeout:     30 * time.Second,
		CopyBufferSize:  32 * 1024,
	}
}

func DefaultSyncConfig() Config {
	config := baseConfig()
	config.CheckRemote = true
	return config
}

func DefaultOfflineConfig() Config {
	config := baseConfig()
	config.CheckRemote = false
	return config
}

// DumpURL renders the template for one language.
func (c Config) DumpURL(lang string) string {
	return fmt.Sprintf(c.DumpURLTemplate, lang, lang)
}
