package probe

import (
	"context"
	"net/http"
	"time"

	"github.com/wikisync/wikisync/internal/config"
	"github.com/wikisync/wikisync/internal/logger"
	"github.com/wikisync/wikisync/internal/service"
)

// Result reports what the remote dump server knows about a language's
// snapshot. OK distinguishes "no newer version" from "probe failed", so a
// legitimate epoch timestamp can never be mistaken for a failure.
type Result struct {
	LastModified time.Time
	OK           bool
}

type Prober struct {
	Config config.Config
	Client service.HTTPClient
}

func New(conf *config.Config, client service.HTTPClient) *Prober {
	if conf == nil {
		def := config.DefaultSyncConfig()
		conf = &def
	}

	if client == nil {
		client = service.NewHTTPClient(conf.HTTPTimeout)
	}

	return &Prober{
		Config: *conf,
		Client: client,
	}
}

// Check queries the Last-Modified header of a language's dump without
// downloading the body. It never returns an error: connection failures and
// malformed metadata are logged and reported as a not-OK result.
func (p *Prober) Check(ctx context.Context, lang string) Result {
	url := p.Config.DumpURL(lang)

	resp, err := service.Head(ctx, p.Client, url)
	if err != nil {
		logger.Debug("dump probe failed for %s: %v", lang, err)
		return Result{}
	}

	lastModified := resp.Header.Get("Last-Modified")
	if lastModified == "" {
		logger.Debug("dump probe for %s: no Last-Modified header", lang)
		return Result{}
	}

	ts, err := http.ParseTime(lastModified)
	if err != nil {
		logger.Debug("dump probe for %s: unparsable Last-Modified %q: %v", lang, lastModified, err)
		return Result{}
	}

	return Result{LastModified: ts, OK: true}
}
