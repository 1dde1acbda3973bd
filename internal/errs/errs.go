package errs

import "fmt"

type Code string

const (
	AllWithNamedLanguages Code = "ALL_WITH_NAMED_LANGUAGES"
	NoTrackedLanguages    Code = "NO_TRACKED_LANGUAGES"
	InvalidLanguageCode   Code = "INVALID_LANGUAGE_CODE"
)

var messages = map[Code]string{
	AllWithNamedLanguages: `Invalid flag combination: cannot use --all with named languages

Usage:
  - Sync every language tracked in your config:
      wikisync sync --all
  - Sync only specific languages:
      wikisync sync en de

Reason:
  --all targets every tracked language, named args target a subset.`,

	NoTrackedLanguages: `No languages tracked: your config has an empty language list

Usage:
  - Track languages first:
      wikisync init --storage-root ~/wikidumps --languages en,de
  - Or name languages directly:
      wikisync sync en`,

	InvalidLanguageCode: `Invalid language code: %q

A language is the short subtag of a locale ("en", "de", "fr"), not a full
locale like "en_US". The dump server only publishes per-language archives.`,
}

func Msg(code Code, a ...any) string {
	msg := messages[code]
	if msg == "" {
		msg = string(code)
	}
	return fmt.Sprintf(msg, a...)
}
