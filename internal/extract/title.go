package extract

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// eventKeywords mark lines that talk about an event; used both for
// prominence scoring and for the keyword-bearing last-resort pass.
var eventKeywords = []string{
	"conference", "summit", "workshop", "seminar", "symposium", "expo",
	"festival", "concert", "show", "exhibition", "fair", "competition",
	"championship", "tournament", "meetup", "gathering", "celebration",
	"launch", "presentation", "webinar", "bootcamp", "hackathon",
	"convention", "forum", "congress", "colloquium", "masterclass",
}

const eventKeywordAlt = `conference|workshop|seminar|symposium|summit|expo|festival|concert|show|exhibition|fair|competition|championship|tournament|meetup|gathering|celebration|launch|presentation|webinar|bootcamp|hackathon|convention|forum|congress|colloquium|masterclass`

// titleWeights holds every factor contribution of the prominence score so
// tests can assert on individual factors, not just the final ranking.
type titleWeights struct {
	LengthIdeal    int // 10-80 chars
	LengthOK       int // 5-100 chars
	LengthTooLong  int // >100 chars
	PosTop3        int
	PosTop5        int
	PosFirstThird  int
	AllWordsCaps   int // every word capitalized, multi-word
	MostWordsCaps  int // >=70% capitalized
	ShortAllCaps   int // ALL CAPS, 3-8 words
	LongAllCaps    int // ALL CAPS, >8 words
	LightPunct     int // <=1 period and <=2 commas
	EndsEmphatic   int // ends with ! or ?
	HeavyColons    int // >1 colon or any semicolon
	EventKeyword   int
	YearPresent    int
	OrdinalMarker  int
}

var defaultTitleWeights = titleWeights{
	LengthIdeal:    3,
	LengthOK:       2,
	LengthTooLong:  -2,
	PosTop3:        4,
	PosTop5:        3,
	PosFirstThird:  2,
	AllWordsCaps:   4,
	MostWordsCaps:  3,
	ShortAllCaps:   3,
	LongAllCaps:    -1,
	LightPunct:     1,
	EndsEmphatic:   1,
	HeavyColons:    -2,
	EventKeyword:   2,
	YearPresent:    1,
	OrdinalMarker:  2,
}

var (
	reYear2000s   = regexp.MustCompile(`\b20\d{2}\b`)
	reOrdinal     = regexp.MustCompile(`(?i)\b(?:\d+(?:st|nd|rd|th)|first|second|third|annual)\b`)
	reNumberedDot = regexp.MustCompile(`^\d+\s*[.:]`)
	reNumbered    = regexp.MustCompile(`^\d+[.:]`)
	reTrailYear   = regexp.MustCompile(`\s+20\d{2}$`)
)

// explicit title patterns, tried in priority order before any scoring.
var titleExplicitRules = []rule{
	{re: regexp.MustCompile(`(?im)(?:event\s*name|title|event\s*title|name\s*of\s*event)\s*[:\-–=]\s*(.+?)$`), group: 1},
	{re: regexp.MustCompile(`(?im)(?:presenting|announces?|invites?\s+you\s+to|proudly\s+presents?)\s+(.+?)(?:\s+(?:on|at|in)\s+\d.*)?$`), group: 1},
	{re: regexp.MustCompile(`(?im)(?:join\s+us\s+for|welcome\s+to|attend)\s+(.+?)(?:\s+(?:on|at|in)\s+\d.*)?$`), group: 1},
	{re: regexp.MustCompile(`(?im)(.+?(?:` + eventKeywordAlt + `)(?:\s+20\d{2})?)`), group: 1},
	{re: regexp.MustCompile(`(?im)((?:annual|\d+(?:st|nd|rd|th)|first|second|third)\s+.+?)(?:\s+(?:on|at|in)\s+\d.*)?$`), group: 1},
	{re: regexp.MustCompile(`(?im)(.+?\s+20\d{2})(?:\s|$)`), group: 1},
}

var titleFillerPrefixes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(?:the\s+)?(?:annual\s+)?\d+(?:st|nd|rd|th)\s+`),
	regexp.MustCompile(`(?i)^(?:welcome\s+to\s+)?(?:the\s+)?`),
	regexp.MustCompile(`(?i)^(?:join\s+us\s+for\s+)?(?:the\s+)?`),
	regexp.MustCompile(`(?i)^(?:attend\s+)?(?:the\s+)?`),
}

// ExtractTitle recovers the event name: explicit patterns first, then a
// prominence-scoring pass over candidate lines, then progressively looser
// fallbacks. See scoreTitleLine for the scoring factors.
func ExtractTitle(text string) FieldValue {
	if strings.TrimSpace(text) == "" {
		return NotFound()
	}
	lines := splitLines(text)
	if len(lines) == 0 {
		return NotFound()
	}

	filtered := make([]string, 0, len(lines))
	for _, line := range lines {
		if !IsBoilerplate(line) {
			filtered = append(filtered, line)
		}
	}
	if len(filtered) == 0 {
		// everything looked like boilerplate; scoring will sort it out
		filtered = lines
	}

	// 1: explicit patterns over the whole text
	for _, r := range titleExplicitRules {
		for _, m := range r.re.FindAllStringSubmatch(text, -1) {
			candidate := strings.Trim(cleanText(m[r.group]), ".,;:!?-–")
			candidate = strings.TrimSpace(candidate)
			if len(candidate) >= 5 && len(candidate) <= 100 && !IsBoilerplate(candidate) {
				return Found(candidate)
			}
		}
	}

	// 2: score candidate lines (first 15, skipping fragments)
	type scored struct {
		line  string
		score int
	}
	var ranked []scored
	limit := len(filtered)
	if limit > 15 {
		limit = 15
	}
	for i := 0; i < limit; i++ {
		if len(filtered[i]) < 3 {
			continue
		}
		ranked = append(ranked, scored{filtered[i], scoreTitleLine(filtered[i], i, len(filtered), defaultTitleWeights)})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	// 3: best line with title-like shape
	for _, s := range ranked {
		line := s.line
		if IsBoilerplate(line) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 12 {
			continue
		}
		if (isTitleCase(line) || isAllUpper(line) || capitalizedRatio(words) >= 0.6) &&
			!reNumberedDot.MatchString(line) {
			return Found(line)
		}
	}

	// 4: strip filler from the top-scored lines
	top := ranked
	if len(top) > 5 {
		top = top[:5]
	}
	for _, s := range top {
		cleaned := s.line
		for _, prefix := range titleFillerPrefixes {
			cleaned = strings.TrimSpace(prefix.ReplaceAllString(cleaned, ""))
		}
		cleaned = strings.TrimSpace(reTrailYear.ReplaceAllString(cleaned, ""))
		if len(cleaned) >= 5 && len(cleaned) <= 80 && !IsBoilerplate(cleaned) {
			return Found(cleaned)
		}
	}

	// 5: first substantial non-boilerplate line
	fallback := filtered
	if len(fallback) > 10 {
		fallback = fallback[:10]
	}
	for _, line := range fallback {
		if len(line) >= 5 && len(line) <= 100 && !IsBoilerplate(line) && !reNumbered.MatchString(line) {
			return Found(line)
		}
	}

	// 6: any line mentioning an event keyword, boilerplate or not
	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, kw := range eventKeywords {
			if strings.Contains(lower, kw) && len(line) >= 10 && len(line) <= 100 {
				return Found(line)
			}
		}
	}

	// 7: absolute fallback
	if len(filtered) > 0 {
		first := filtered[0]
		if len(first) >= 3 && len(first) <= 100 {
			return Found(first)
		}
	}
	return NotFound()
}

// scoreTitleLine computes the additive prominence score of one candidate
// line. position is the line's index among the filtered lines; total is the
// filtered line count.
func scoreTitleLine(line string, position, total int, w titleWeights) int {
	score := 0
	trimmed := strings.TrimSpace(line)

	// length
	switch length := len(trimmed); {
	case length >= 10 && length <= 80:
		score += w.LengthIdeal
	case length >= 5 && length <= 100:
		score += w.LengthOK
	case length > 100:
		score += w.LengthTooLong
	}

	// position (1-based)
	switch pos := position + 1; {
	case pos <= 3:
		score += w.PosTop3
	case pos <= 5:
		score += w.PosTop5
	case float64(pos) <= float64(total)*0.3:
		score += w.PosFirstThird
	}

	// capitalization shape
	words := strings.Fields(trimmed)
	if len(words) > 0 {
		capCount := 0
		for _, word := range words {
			if startsUpper(word) {
				capCount++
			}
		}
		if capCount == len(words) && len(words) > 1 {
			score += w.AllWordsCaps
		} else if float64(capCount) >= float64(len(words))*0.7 {
			score += w.MostWordsCaps
		}
		if isAllUpper(trimmed) {
			if len(words) >= 3 && len(words) <= 8 {
				score += w.ShortAllCaps
			} else if len(words) > 8 {
				score += w.LongAllCaps
			}
		}
	}

	// punctuation
	if strings.Count(line, ".") <= 1 && strings.Count(line, ",") <= 2 {
		score += w.LightPunct
	}
	if strings.HasSuffix(line, "!") || strings.HasSuffix(line, "?") {
		score += w.EndsEmphatic
	}
	if strings.Count(line, ":") > 1 || strings.Count(line, ";") > 0 {
		score += w.HeavyColons
	}

	// content signals
	lower := strings.ToLower(line)
	for _, kw := range eventKeywords {
		if strings.Contains(lower, kw) {
			score += w.EventKeyword
			break
		}
	}
	if reYear2000s.MatchString(line) {
		score += w.YearPresent
	}
	if reOrdinal.MatchString(lower) {
		score += w.OrdinalMarker
	}

	return score
}

func startsUpper(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}

func capitalizedRatio(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	n := 0
	for _, word := range words {
		if startsUpper(word) {
			n++
		}
	}
	return float64(n) / float64(len(words))
}

// isAllUpper reports whether s contains at least one letter and no lowercase.
func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// isTitleCase reports whether every letter-bearing word starts uppercase and
// continues lowercase (roughly: "Grand Tech Conference").
func isTitleCase(s string) bool {
	words := strings.Fields(s)
	if len(words) == 0 {
		return false
	}
	for _, word := range words {
		first := true
		for _, r := range word {
			if !unicode.IsLetter(r) {
				continue
			}
			if first {
				if !unicode.IsUpper(r) {
					return false
				}
				first = false
			} else if unicode.IsUpper(r) {
				return false
			}
		}
	}
	return true
}
