package utils

import "strings"

// SanitizeName reduces a user supplied name to an allowlisted character set
// for safe use in directory and file names. Disallowed runes become '_',
// consecutive path separators are collapsed and outer separators trimmed.
// Any input produces a (possibly empty) result, never an error.
func SanitizeName(name string) string {
	s := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return r
		case r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.' || r == '/':
			return r
		default:
			return '_'
		}
	}, name)

	for strings.Contains(s, "//") {
		s = strings.ReplaceAll(s, "//", "/")
	}

	return strings.Trim(s, "/")
}

// CleanURL strips a single leading http:// or https:// scheme, truncates at
// the first fragment or query marker and sanitizes the remainder. Used to
// build result file names from targets that may be URLs or bare hosts.
func CleanURL(rawURL string) string {
	s := strings.TrimPrefix(rawURL, "http://")
	if s == rawURL {
		s = strings.TrimPrefix(s, "https://")
	}
	if i := strings.Index(s, "#"); i >= 0 {
		s = s[:i]
	}
	if i := strings.Index(s, "?"); i >= 0 {
		s = s[:i]
	}
	return SanitizeName(s)
}
