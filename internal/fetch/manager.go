package fetch

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/wikisync/wikisync/internal/config"
	"github.com/wikisync/wikisync/internal/logger"
	"github.com/wikisync/wikisync/internal/service"
	"github.com/wikisync/wikisync/internal/store"
	"github.com/wikisync/wikisync/internal/utils"
)

type Manager struct {
	Config config.Config
	Client service.HTTPClient
	Store  *store.FS
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
		Config: *conf,
		Client: client,
		Store:  st,
	}
}

// Execute streams the remote dump through a bzip2 decoder into a new snapshot
// entry named after the language and remote timestamp, and returns its path.
// Unlike the probe, any failure here is fatal to the sync run; a partially
// written entry is removed before returning.
func (m *Manager) Execute(ctx context.Context, lang string, ts time.Time) (string, error) {
	url := m.Config.DumpURL(lang)
	logger.Info("Fetching %s snapshot from %s", lang, url)

	resp, err := service.Get(ctx, m.Client, url)
	if err != nil {
		return "", fmt.Errorf("failed to open dump stream: %w", err)
	}

	stream, err := utils.MaybeBunzip2(resp.Body)
	if err != nil {
		_ = resp.Body.Close()
		return "", fmt.Errorf("failed to open bzip2 stream: %w", err)
	}
	defer utils.Close(stream)

	out, err := m.Store.Create(lang, ts)
	if err != nil {
		return "", err
	}
	path := out.Name()

	copyErr := copyWithBuffer(out, stream, m.Config.CopyBufferSize)
	closeErr := out.Close()

	if copyErr != nil || closeErr != nil {
		// a half-written snapshot must not survive to be scanned later
		_ = os.Remove(path)
		if copyErr != nil {
			return "", fmt.Errorf("failed to materialize snapshot: %w", copyErr)
		}
		return "", fmt.Errorf("failed to close snapshot entry: %w", closeErr)
	}

	logger.Success("Stored %s snapshot at %s", lang, path)
	return path, nil
}

func copyWithBuffer(dst io.Writer, src io.Reader, size int) error {
	if size <= 0 {
		size = 32 * 1024
	}
	buf := make([]byte, size)
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			return rerr
		}
	}
}
