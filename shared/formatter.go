package shared

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Length of post content previews in logs and the publish log.
const PreviewLen = 80

func TruncateWithEllipsis(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	// https://stackoverflow.com/a/73939904/7479498
	lastSpaceIx := maxLen
	len := 0
	for i, r := range text {
		if unicode.IsSpace(r) {
			lastSpaceIx = i
		}
		len++
		if len > maxLen {
			return text[:lastSpaceIx] + "…"
		}
	}
	// If here, string is shorter or equal to maxLen
	return text
}

// OneLine collapses all runs of whitespace into single spaces.
func OneLine(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Preview returns a single-line, truncated version of post content for logs.
func Preview(text string) string {
	return TruncateWithEllipsis(OneLine(text), PreviewLen)
}

// CharCount counts characters the way the post's target platform does: by code points.
func CharCount(text string) int {
	return utf8.RuneCountInString(text)
}

// JoinUrl appends path to base, taking care of duplicate or missing slashes.
func JoinUrl(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// PathEscape escapes one path segment.
func PathEscape(segment string) string {
	return url.PathEscape(segment)
}
