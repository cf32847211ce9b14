package store

import (
	"strings"
	"unicode"

	"ai-companion-be/internal/constant"
)

// DeriveSessionTitle builds a session title from the text of the first user
// message: at most 30 runes, with "..." appended when truncated.
func DeriveSessionTitle(text string) string {
	title := sanitizeTitle(text)
	runes := []rune(title)
	if len(runes) > constant.SessionTitleMaxLen {
		return string(runes[:constant.SessionTitleMaxLen]) + "..."
	}
	return title
}

// sanitizeTitle strips non-printable runes that occasionally arrive in
// transcripts and pasted text.
func sanitizeTitle(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsPrint(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
