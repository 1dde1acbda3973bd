package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Entry is one locally stored, decompressed snapshot.
type Entry struct {
	Path    string
	ModTime time.Time
	Size    int64
}

// FS keeps one subdirectory per language under a storage root,
// each holding the snapshots fetched for that language.
type FS struct {
	root string
}

func NewFS(root string) *FS {
	return &FS{root: root}
}

func (s *FS) Root() string { return s.root }

// Latest returns the entry with the greatest modification time, or nil when
// the language has no entries yet. The language directory is created on first
// use. Ties keep the first entry seen in listing order.
func (s *FS) Latest(lang string) (*Entry, error) {
	dir := filepath.Join(s.root, lang)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, mkErr)
		}
		return nil, nil
	}

	entries, err := s.List(lang)
	if err != nil {
		return nil, err
	}

	var latest *Entry
	for i := range entries {
		if latest == nil || entries[i].ModTime.After(latest.ModTime) {
			latest = &entries[i]
		}
	}
	return latest, nil
}

// List returns every entry stored for the language, in directory listing order.
func (s *FS) List(lang string) ([]Entry, error) {
	dir := filepath.Join(s.root, lang)

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var entries []Entry
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		info, err := de.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", de.Name(), err)
		}
		entries = append(entries, Entry{
			Path:    filepath.Join(dir, de.Name()),
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
	}
	return entries, nil
}

// EntryPath builds the canonical snapshot name for a language and remote
// timestamp: <root>/<lang>/<lang>wiki-latest-pages-articles.<unix>.xml.
// A zero timestamp (failed probe) maps to 0, not to time.Time{}.Unix().
func (s *FS) EntryPath(lang string, ts time.Time) string {
	name := fmt.Sprintf("%swiki-latest-pages-articles.%d.xml", lang, unixOrZero(ts))
	return filepath.Join(s.root, lang, name)
}

// Create opens a new snapshot entry for writing. Existing entries are never
// reopened or truncated through this path.
func (s *FS) Create(lang string, ts time.Time) (*os.File, error) {
	dir := filepath.Join(s.root, lang)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	f, err := os.OpenFile(s.EntryPath(lang, ts), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot entry: %w", err)
	}
	return f, nil
}

func unixOrZero(ts time.Time) int64 {
	if ts.IsZero() {
		return 0
	}
	return ts.Unix()
}
