package ocr

import (
	"regexp"
	"strings"
)

var (
	reDateish    = regexp.MustCompile(`\b20\d{2}\b|\b(?:january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec)\b`)
	reTimeish    = regexp.MustCompile(`\b\d{1,2}[:.]\d{2}\b|\b\d{1,2}\s*(?:am|pm)\b`)
	reContactish = regexp.MustCompile(`@|\bwww\.|\d{10,}`)
)

func hasDatePattern(s string) bool    { return reDateish.MatchString(s) }
func hasTimePattern(s string) bool    { return reTimeish.MatchString(s) }
func hasContactPattern(s string) bool { return reContactish.MatchString(s) }

// heuristicConfidence estimates OCR quality from decoded text shape alone.
// Posters that came through cleanly tend to carry at least one date-ish,
// time-ish or contact-ish token plus enough overall content.
func heuristicConfidence(txt string) float32 {
	txtL := strings.ToLower(txt)
	score := float32(0.2) // base
	if hasDatePattern(txtL) {
		score += 0.2
	}
	if hasTimePattern(txtL) {
		score += 0.15
	}
	if hasContactPattern(txtL) {
		score += 0.15
	}
	if len(txt) > 120 {
		score += 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
