package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Canonicalization tables. Keys are matched as whole words,
// case-insensitively; "feburary" covers the common OCR/author misspelling.
var monthTable = map[string]string{
	"jan": "January", "january": "January",
	"feb": "February", "february": "February", "feburary": "February",
	"mar": "March", "march": "March",
	"apr": "April", "april": "April",
	"may": "May",
	"jun": "June", "june": "June",
	"jul": "July", "july": "July",
	"aug": "August", "august": "August",
	"sep": "September", "sept": "September", "september": "September",
	"oct": "October", "october": "October",
	"nov": "November", "november": "November",
	"dec": "December", "december": "December",
}

var dayTable = map[string]string{
	"mon": "Monday", "monday": "Monday",
	"tue": "Tuesday", "tues": "Tuesday", "tuesday": "Tuesday",
	"wed": "Wednesday", "wednesday": "Wednesday",
	"thu": "Thursday", "thur": "Thursday", "thurs": "Thursday", "thursday": "Thursday",
	"fri": "Friday", "friday": "Friday",
	"sat": "Saturday", "saturday": "Saturday",
	"sun": "Sunday", "sunday": "Sunday",
}

const (
	monthAlt = `january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|sept|oct|nov|dec|feburary`
	dayAlt   = `monday|tuesday|wednesday|thursday|friday|saturday|sunday|mon|tue|tues|wed|thu|thur|thurs|fri|sat|sun`
	ordSuf   = `(?:st|nd|rd|th)`
	dateLbl  = `(?i)(?:date\s*:?\s*)?`
)

// datePatterns is the cascade, most specific first. The capture holds the
// raw date text; normalizeDate turns it into the canonical form.
var datePatterns = []rule{
	// month-name ranges: "January 18-19, 2025"
	{re: regexp.MustCompile(dateLbl + `(\b(?:` + monthAlt + `)\s+\d{1,2}` + ordSuf + `?\s*[-–]\s*\d{1,2}` + ordSuf + `?\s*,?\s*\d{4})\b`), group: 1},
	// ranges with trailing month: "18-19 January 2025"
	{re: regexp.MustCompile(dateLbl + `(\b\d{1,2}` + ordSuf + `?\s*[-–]\s*\d{1,2}` + ordSuf + `?\s+(?:` + monthAlt + `)\s+\d{4})\b`), group: 1},
	// day name + full date: "Saturday, February 28th 2025"
	{re: regexp.MustCompile(dateLbl + `(\b(?:` + dayAlt + `)\s*[.,]?\s*(?:` + monthAlt + `)\s*\.?\s*\d{1,2}` + ordSuf + `?\s*,?\s*\d{4})\b`), group: 1},
	// day name + month + day: "Saturday May 20th", "SAT. MAY20TH"
	{re: regexp.MustCompile(dateLbl + `(\b(?:` + dayAlt + `)\s*\.?\s*(?:` + monthAlt + `)\s*\.?\s*\d{1,2}` + ordSuf + `?)\b`), group: 1},
	// day name + numeric date: "THURSDAY 2/20"
	{re: regexp.MustCompile(dateLbl + `(\b(?:` + dayAlt + `)\s*\.?\s*\d{1,2}\s*[/\-]\s*\d{1,2})\b`), group: 1},
	// ordinal day first: "28th February 2025"
	{re: regexp.MustCompile(dateLbl + `(\b\d{1,2}` + ordSuf + `\s+(?:` + monthAlt + `)\s+\d{4})\b`), group: 1},
	// "February 22-23, 2025" / "February 22, 2025"
	{re: regexp.MustCompile(dateLbl + `(\b(?:` + monthAlt + `)\s+\d{1,2}` + ordSuf + `?\s*[-–]?\s*\d{0,2}` + ordSuf + `?\s*,?\s*\d{4})\b`), group: 1},
	// "22 February 2025"
	{re: regexp.MustCompile(dateLbl + `(\b\d{1,2}` + ordSuf + `?\s+(?:` + monthAlt + `)\.?\s+\d{4})\b`), group: 1},
	// numeric: DD/MM/YYYY, MM-DD-YY and friends
	{re: regexp.MustCompile(dateLbl + `(\b\d{1,2}[./-]\d{1,2}[./-]\d{2,4})\b`), group: 1},
	// bare year: "2025"
	{re: regexp.MustCompile(dateLbl + `(\b20\d{2})\b`), group: 1},
	// month + day, no year
	{re: regexp.MustCompile(dateLbl + `(\b(?:` + monthAlt + `)\s+\d{1,2}` + ordSuf + `?)\b`), group: 1},
	{re: regexp.MustCompile(dateLbl + `(\b\d{1,2}` + ordSuf + `?\s+(?:` + monthAlt + `))\b`), group: 1},
	// month + year only
	{re: regexp.MustCompile(dateLbl + `(\b(?:` + monthAlt + `)\s+\d{4})\b`), group: 1},
}

var (
	rePartialMonth   = regexp.MustCompile(`(?i)\b(?:` + monthAlt + `)\b`)
	rePartialYear    = regexp.MustCompile(`\b(20\d{2})\b`)
	rePartialDay     = regexp.MustCompile(`\b(\d{1,2})` + ordSuf + `?\b`)
	rePartialDayName = regexp.MustCompile(`(?i)\b(?:` + dayAlt + `)\b`)
	reLetterDigit    = regexp.MustCompile(`([a-zA-Z])(\d)`)
)

// word-boundary replacers for the canonicalization tables, compiled once.
var monthReplacers = buildReplacers(monthTable)
var dayReplacers = buildReplacers(dayTable)

type replacer struct {
	re   *regexp.Regexp
	full string
}

func buildReplacers(table map[string]string) []replacer {
	out := make([]replacer, 0, len(table))
	for abbrev, full := range table {
		out = append(out, replacer{
			re:   regexp.MustCompile(`(?i)\b` + abbrev + `\b`),
			full: full,
		})
	}
	return out
}

// ExtractDate recovers a normalized date string. The pattern cascade runs
// first; if nothing matches, partial reconstruction assembles whatever
// isolated components the text carries.
func ExtractDate(text string) FieldValue {
	if s, ok := firstMatch(datePatterns, text); ok {
		return Found(s)
	}
	if s := partialDate(text); s != "" {
		return Found(s)
	}
	return NotFound()
}

func init() {
	// every date pattern normalizes its capture the same way
	for i := range datePatterns {
		datePatterns[i].post = normalizeDate
	}
}

// normalizeDate expands month/day abbreviations (fixing known
// misspellings), spaces letter-digit boundaries ("May20" -> "May 20") and
// collapses whitespace. Idempotent: a normalized date comes back unchanged.
func normalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, r := range monthReplacers {
		s = r.re.ReplaceAllString(s, r.full)
	}
	for _, r := range dayReplacers {
		s = r.re.ReplaceAllString(s, r.full)
	}
	s = reLetterDigit.ReplaceAllString(s, "$1 $2")
	return cleanText(s)
}

// partialDate scans the whole text for isolated date components and joins
// whichever of {day name, month, day, year} it finds, in that fixed order.
func partialDate(text string) string {
	var parts []string

	if m := rePartialDayName.FindString(text); m != "" {
		if full, ok := dayTable[strings.ToLower(m)]; ok {
			parts = append(parts, full)
		}
	}
	if m := rePartialMonth.FindString(text); m != "" {
		if full, ok := monthTable[strings.ToLower(m)]; ok {
			parts = append(parts, full)
		}
	}
	for _, m := range rePartialDay.FindAllStringSubmatch(text, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 && n <= 31 {
			parts = append(parts, m[1])
			break
		}
	}
	if m := rePartialYear.FindString(text); m != "" {
		parts = append(parts, m)
	}

	return strings.Join(parts, " ")
}
