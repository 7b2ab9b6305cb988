package extract

import (
	"regexp"
	"strings"
)

// Confidence tiers for venue candidates, by how the pattern found them.
const (
	venueConfLabel   = 1.0 // explicit venue/location/address label
	venueConfKeyword = 0.8 // "at ..." or a venue-type keyword in the match
	venueConfGeneric = 0.6 // shape-only heuristics
)

const venueTypeAlt = `hall|center|centre|auditorium|stadium|arena|theater|theatre|hotel|conference|room|building|campus|university|college|school|library|museum|gallery|club|bar|restaurant|cafe|park|ground|complex|plaza|square|convention|expo|fairground|facility|institute|academy|church|temple|mosque|cathedral|chapel`

type venuePattern struct {
	re         *regexp.Regexp
	confidence float64
}

// venuePatterns is the candidate generator, in priority order. Newlines are
// replaced by " | " before matching so captures stay line-bounded.
var venuePatterns = []venuePattern{
	// explicit labels
	{regexp.MustCompile(`(?i)venue\s*[:.]?\s*([^|]{3,80})`), venueConfLabel},
	{regexp.MustCompile(`(?i)location\s*[:.]?\s*([^|]{3,80})`), venueConfLabel},
	{regexp.MustCompile(`(?i)place\s*[:.]?\s*([^|]{3,80})`), venueConfLabel},
	{regexp.MustCompile(`(?i)address\s*[:.]?\s*([^|]{3,80})`), venueConfLabel},
	{regexp.MustCompile(`(?i)where\s*[:.]?\s*([^|]{3,80})`), venueConfLabel},
	{regexp.MustCompile(`(?i)held\s+at\s*[:.]?\s*([^|]{3,80})`), venueConfLabel},
	{regexp.MustCompile(`(?i)taking\s+place\s+at\s*[:.]?\s*([^|]{3,80})`), venueConfLabel},
	// "at <venue type>"
	{regexp.MustCompile(`(?i)\bat\s+([^|]*?(?:` + venueTypeAlt + `)\b(?:\s+[^|.,:;!?]*)?)`), venueConfKeyword},
	// venue-type phrases without "at"
	{regexp.MustCompile(`\b([A-Z][^|]*?(?i:hall|center|centre|auditorium|stadium|arena|theater|theatre|hotel|conference\s+(?:room|hall)|convention\s+(?:center|centre)|expo\s+(?:center|centre)|community\s+(?:center|centre|hall)|cultural\s+(?:center|centre)|sports\s+(?:center|centre|complex)|civic\s+(?:center|centre)|town\s+hall|city\s+hall))\b`), venueConfKeyword},
	// educational institutions
	{regexp.MustCompile(`\b([A-Z][^|]*?(?i:university|college|school|institute|academy|campus)(?:\s+of\s+[A-Z][^|,.]*)?)\b`), venueConfKeyword},
	// hotels
	{regexp.MustCompile(`\b([A-Z][^|]*?(?i:hotel)(?:\s+[A-Z][a-z]+)*)\b`), venueConfKeyword},
	// venue-suffix phrases
	{regexp.MustCompile(`\b([A-Z][^|]*?(?i:centre|center|hall|arena|stadium|theater|theatre|auditorium|pavilion|complex|plaza|gardens?|park|ground|academy|institute|gallery|museum|library|club|lodge|manor|palace|castle|tower|square))\b`), venueConfKeyword},
	// "City, Country" capitalized pairs
	{regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*,\s*[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\b`), venueConfGeneric},
	// directional areas: "Downtown Peterborough"
	{regexp.MustCompile(`\b((?i:downtown|uptown|central|north|south|east|west|upper|lower)\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\b`), venueConfGeneric},
	// capitalized words + venue suffix
	{regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3}\s+(?:Hall|Center|Centre|Building|Complex|Plaza|Square|Gardens?|Park))\b`), venueConfGeneric},
	// street addresses
	{regexp.MustCompile(`\b(\d+\s+[A-Z][^|]*?(?i:street|st|avenue|ave|road|rd|boulevard|blvd|lane|ln|drive|dr|way|place|pl|court|ct)\b(?:\s+[^|.,]*)?)`), venueConfGeneric},
	// rooms and floors
	{regexp.MustCompile(`(?i)\b((?:room|floor|level|suite|block|wing|section)\s+[A-Z0-9][^|]*?)\b`), venueConfGeneric},
}

// reVenueGeneric is the last pattern family: bare 2-4 capitalized words,
// applied only when the text mentions a venue keyword at all.
var (
	reVenueGeneric     = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3})\b`)
	reVenueGenericGate = regexp.MustCompile(`(?i)\b(?:` + venueTypeAlt + `)\b`)
	reVenueFallback    = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,2})\b`)
)

var (
	reVenueLeadIn     = regexp.MustCompile(`(?i)^(?:at|in|the|venue|location|place|address|held at|taking place at)\b[:.\s]*`)
	reVenueTrailPunct = regexp.MustCompile(`[,.:;!?]+$`)
	reVenueNumericish = regexp.MustCompile(`^[\d\s\-/:.]+$`)
)

var venueFalsePositives = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(?:date|time|contact|phone|email|price|free|paid|registration)$`),
	regexp.MustCompile(`(?i)^(?:am|pm|\d{1,2}:\d{2}|\d{4})$`),
	regexp.MustCompile(`(?i)^(?:january|february|march|april|may|june|july|august|september|october|november|december)$`),
}

var reVenueCalendarWord = regexp.MustCompile(`(?i)^(?:january|february|march|april|may|june|july|august|september|october|november|december|monday|tuesday|wednesday|thursday|friday|saturday|sunday)$`)

type venueCandidate struct {
	text       string
	confidence float64
}

// ExtractVenue recovers a location string: every pattern family contributes
// candidates, candidates are cleaned and vetted, duplicates collapse
// case-insensitively keeping the highest-confidence spelling, and the best
// surviving candidate wins. Priority order breaks confidence ties.
func ExtractVenue(text string) FieldValue {
	processed := strings.ReplaceAll(text, "\n", " | ")

	var candidates []venueCandidate
	for _, vp := range venuePatterns {
		for _, m := range vp.re.FindAllStringSubmatch(processed, -1) {
			if cleaned := cleanVenueText(m[1]); cleaned != "" {
				candidates = append(candidates, venueCandidate{cleaned, vp.confidence})
			}
		}
	}
	if reVenueGenericGate.MatchString(processed) {
		for _, m := range reVenueGeneric.FindAllStringSubmatch(processed, -1) {
			if cleaned := cleanVenueText(m[1]); cleaned != "" {
				candidates = append(candidates, venueCandidate{cleaned, venueConfGeneric})
			}
		}
	}

	if best, ok := bestVenue(candidates); ok {
		return Found(best)
	}

	// fallback: any short capitalized run that is not a bare month/day name
	for _, m := range reVenueFallback.FindAllStringSubmatch(text, -1) {
		cleaned := cleanVenueText(m[1])
		if len(cleaned) > 5 && !reVenueCalendarWord.MatchString(cleaned) {
			return Found(cleaned)
		}
	}
	return NotFound()
}

// cleanVenueText trims connector lead-ins and trailing punctuation, rejects
// candidates that cannot be venues, and truncates runaway captures.
// Returns "" to reject.
func cleanVenueText(s string) string {
	s = strings.TrimSpace(s)
	s = reVenueLeadIn.ReplaceAllString(s, "")
	s = reVenueTrailPunct.ReplaceAllString(s, "")
	s = cleanText(s)

	if len(s) < 3 {
		return ""
	}
	if reVenueNumericish.MatchString(s) {
		return ""
	}
	for _, re := range venueFalsePositives {
		if re.MatchString(s) {
			return ""
		}
	}
	if len(s) > 150 {
		words := strings.Fields(s)
		if len(words) > 15 {
			s = strings.Join(words[:15], " ") + "..."
		}
	}
	return s
}

// bestVenue deduplicates case-insensitively (highest confidence spelling
// wins) and returns the strongest candidate, earliest first on ties.
func bestVenue(candidates []venueCandidate) (string, bool) {
	seen := make(map[string]int) // lowercased text -> index into kept
	var kept []venueCandidate
	for _, c := range candidates {
		key := strings.ToLower(c.text)
		if i, ok := seen[key]; ok {
			if c.confidence > kept[i].confidence {
				kept[i] = c
			}
			continue
		}
		seen[key] = len(kept)
		kept = append(kept, c)
	}

	bestIdx := -1
	for i, c := range kept {
		if bestIdx == -1 || c.confidence > kept[bestIdx].confidence {
			bestIdx = i
		}
	}
	if bestIdx == -1 {
		return "", false
	}
	return kept[bestIdx].text, true
}
