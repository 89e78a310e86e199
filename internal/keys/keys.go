package keys

import (
	"strings"
	"unicode"
)

// PresetKeyFromName produces a canonical key for a preset name.
// Behavior: trims, lower-cases, turns runs of spaces, dashes and other
// punctuation into single underscores and drops leading/trailing
// underscores. Suitable for stable DB keys and URL segments.
func PresetKeyFromName(name string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return b.String()
}
