package status

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/wikisync/wikisync/internal/logger"
	"github.com/wikisync/wikisync/internal/printer"
	"github.com/wikisync/wikisync/internal/store"
	"github.com/wikisync/wikisync/internal/utils"
)

type Manager struct {
	Store     *store.FS
	Languages []string
}

func New(st *store.FS, languages []string) *Manager {
	return &Manager{
		Store:     st,
		Languages: languages,
	}
}

// Execute renders the local inventory table for every tracked language.
func (m *Manager) Execute() error {
	p := printer.NewColorPrinter()
	table := logger.CreateTable([]string{"Language", "Snapshot", "Modified", "Size"})

	for _, lang := range m.Languages {
		entries, err := m.Store.List(lang)
		if err != nil {
			logger.Debug("failed to list %s snapshots: %v", lang, err)
			entries = nil
		}

		if len(entries) == 0 {
			if err := table.Append([]string{lang, p.Warning("no snapshot"), "—", "—"}); err != nil {
				return fmt.Errorf("an error occurred while appending to the table: %w", err)
			}
			continue
		}

		latest, err := m.Store.Latest(lang)
		if err != nil {
			logger.Debug("failed to pick latest %s snapshot: %v", lang, err)
		}

		for _, e := range entries {
			name := filepath.Base(e.Path)
			if latest != nil && e.Path == latest.Path {
				name = p.Success("%s", name)
			}
			row := []string{lang, name, e.ModTime.Format(time.RFC1123), utils.HumanSize(e.Size)}
			if err := table.Append(row); err != nil {
				return fmt.Errorf("an error occurred while appending to the table: %w", err)
			}
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("an error occurred while rendering the table: %w", err)
	}

	return nil
}
