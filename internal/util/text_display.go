package util

import (
	"strings"
	"unicode"
)

// Snippet collapses whitespace runs and caps the result at maxRunes,
// appending an ellipsis when truncated. Used to keep log lines readable
// when they quote free-form prompt or completion text.
func Snippet(s string, maxRunes int) string {
	var b strings.Builder
	space := false
	for _, ch := range s {
		if unicode.IsSpace(ch) {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(ch)
	}
	out := b.String()
	if maxRunes <= 0 {
		return out
	}
	runes := []rune(out)
	if len(runes) <= maxRunes {
		return out
	}
	return strings.TrimSpace(string(runes[:maxRunes])) + "..."
}
