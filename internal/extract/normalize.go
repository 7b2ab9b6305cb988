package extract

import (
	"regexp"
	"strings"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)
	reAnySpace   = regexp.MustCompile(`\s+`)
)

// NormalizeText cleans a whole OCR text blob while keeping its line
// structure: CRLF to LF, tabs and space runs collapsed, at most one blank
// line between blocks, trailing spaces trimmed. Line order is untouched; it
// is the primary positional signal for title scoring.
func NormalizeText(s string) string {
	if s == "" {
		return s
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTabs.ReplaceAllString(s, " ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// cleanText flattens a single candidate string: trimmed, all whitespace runs
// collapsed to one space.
func cleanText(s string) string {
	return strings.TrimSpace(reAnySpace.ReplaceAllString(s, " "))
}

func lowerTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// splitLines returns the trimmed, non-empty lines of a text blob in order.
func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if l := strings.TrimSpace(line); l != "" {
			out = append(out, l)
		}
	}
	return out
}
