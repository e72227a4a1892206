package storage

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// SanitizeFilename turns an arbitrary display filename into a storage-
// safe one: accents stripped, anything outside [a-z0-9_-] replaced by
// underscores, runs collapsed, no leading or trailing underscore,
// lowercased. The extension is kept, lowercased. Idempotent.
func SanitizeFilename(filename string) string {
	ext := ""
	if idx := strings.LastIndex(filename, "."); idx > 0 {
		ext = filename[idx:]
		filename = filename[:idx]
	}

	name := sanitizePart(filename)
	if name == "" {
		name = "file"
	}
	return name + sanitizeExt(ext)
}

func sanitizePart(s string) string {
	// NFD decomposition, then drop the combining marks: "é" -> "e".
	decomposed := norm.NFD.String(s)

	var b strings.Builder
	b.Grow(len(decomposed))
	lastUnderscore := false
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		r = unicode.ToLower(r)
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.Trim(b.String(), "_")
}

func sanitizeExt(ext string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(ext) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// StorageKey builds the collision-resistant object key for a campaign
// file: a millisecond timestamp prefix plus the sanitized name, under
// the campaign's folder.
func StorageKey(campaignID uint, filename string, now time.Time) string {
	return fmt.Sprintf("%d/%d_%s", campaignID, now.UnixMilli(), SanitizeFilename(filename))
}
