package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wikisync/wikisync/internal/config"
	"github.com/wikisync/wikisync/internal/fetch"
	"github.com/wikisync/wikisync/internal/logger"
	"github.com/wikisync/wikisync/internal/probe"
	"github.com/wikisync/wikisync/internal/service"
	"github.com/wikisync/wikisync/internal/store"
)

// ErrNoLocalSnapshot is returned when the remote check is disabled and the
// language has nothing stored locally. Callers must not hand an empty path to
// a batch job.
var ErrNoLocalSnapshot = errors.New("no local snapshot available")

type Prober interface {
	Check(ctx context.Context, lang string) probe.Result
}

type Fetcher interface {
	Execute(ctx context.Context, lang string, ts time.Time) (string, error)
}

type Inventory interface {
	Latest(lang string) (*store.Entry, error)
}

// Manager coordinates the inventory scan, the freshness probe and the fetch.
// Per invocation it performs at most one fetch and never deletes an entry.
type Manager struct {
	Config  *config.Config
	Store   Inventory
	Prober  Prober
	Fetcher Fetcher
}

func New(conf *config.Config, client service.HTTPClient, st *store.FS) *Manager {
	if conf == nil {
		def := config.DefaultSyncConfig()
		conf = &def
	}

	if client == nil {
		client = service.NewHTTPClient(conf.HTTPTimeout)
	}

	return &Manager{
		Config:  conf,
		Store:   st,
		Prober:  probe.New(conf, client),
		Fetcher: fetch.New(conf, client, st),
	}
}

// Execute ensures the freshest snapshot for one language is present locally
// and returns its path. With checkRemote=false the network is never touched
// and whatever is stored locally is returned as-is.
func (m *Manager) Execute(ctx context.Context, lang string, checkRemote bool) (string, error) {
	entry, err := m.Store.Latest(lang)
	if err != nil {
		// fail open toward re-fetching
		logger.Warn("Failed to scan local snapshots for %s: %v", lang, err)
		entry = nil
	}

	var chosen string
	if entry != nil {
		chosen = entry.Path
	}

	if !checkRemote {
		if chosen == "" {
			return "", fmt.Errorf("%w for %q (remote check disabled)", ErrNoLocalSnapshot, lang)
		}
		return chosen, nil
	}

	res := m.Prober.Check(ctx, lang)

	// With no local entry a fetch always happens, even after a failed probe:
	// the entry is then named with timestamp zero, matching what the dump
	// server could not tell us.
	if entry == nil || (res.OK && res.LastModified.After(entry.ModTime)) {
		path, err := m.Fetcher.Execute(ctx, lang, res.LastModified)
		if err != nil {
			return "", fmt.Errorf("failed to fetch %s snapshot: %w", lang, err)
		}
		return path, nil
	}

	logger.Debug("Local %s snapshot is up to date (%s)", lang, entry.ModTime.Format(time.RFC1123))
	return chosen, nil
}
