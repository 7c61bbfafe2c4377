package speech

import (
	"regexp"
	"strings"
)

// Host UI text arrives with rich-text markup and inline sprite
// references. Announcements must carry only the words a sighted player
// reads.
var (
	spriteTagRe = regexp.MustCompile(`<sprite[^>]*>`)
	markupTagRe = regexp.MustCompile(`</?[a-zA-Z][^<>]*>`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// CleanText strips markup and sprite tags and collapses runs of
// whitespace. Pure function; safe to call on already-clean text.
func CleanText(raw string) string {
	if raw == "" {
		return ""
	}
	out := spriteTagRe.ReplaceAllString(raw, " ")
	out = markupTagRe.ReplaceAllString(out, "")
	out = strings.ReplaceAll(out, " ", " ")
	out = whitespace.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}
