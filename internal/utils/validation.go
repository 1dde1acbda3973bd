package utils

// ValidLanguage accepts the short language subtag the dump server expects
// ("en", "de", "zh-min-nan"), not a full locale like "en_US".
func ValidLanguage(lang string) bool {
	if lang == "" {
		return false
	}
	for i := 0; i < len(lang); i++ {
		c := lang[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c == '-' && i > 0 && i < len(lang)-1:
		default:
			return false
		}
	}
	return true
}
