package extract

import (
	"regexp"
	"strings"
)

const (
	ampmAlt  = `(?:AM|PM|am|pm|a\.m\.|p\.m\.)`
	timeLbl  = `(?i)(?:time\s*:?\s*)?`
	hhmmOpt  = `\d{1,2}(?:[:.]\d{2})?`
	dashLike = `[-–=]`
)

// Preprocessing fixes the OCR artifacts posters reliably produce around
// times before the cascade sees the text: leading zeros, letter o standing
// in for a colon, periods and commas standing in for colons, glued AM/PM,
// and the whole zoo of range separators.
var timePreprocessors = []struct {
	re   *regexp.Regexp
	repl string
}{
	// bare zero-padded hours directly before AM/PM; "01.00" keeps its zero
	// so H.MM forms survive the colon fix intact
	{regexp.MustCompile(`(^|[^\d:.])0(\d)\s*(AM|PM|am|pm)`), `${1}${2} ${3}`}, // "01 PM" -> "1 PM"
	{regexp.MustCompile(`(\d)[oO](\d)`), `$1:$2`},                  // "1O:00" -> "1:00"
	{regexp.MustCompile(`(?i)\.(\d{2}\s*(?:AM|PM))`), `:$1`},       // "10.00 AM" -> "10:00 AM"
	{regexp.MustCompile(`(\d)\s*[.,]\s*(\d{2})`), `$1:$2`},         // "10, 00" -> "10:00"
	{regexp.MustCompile(`(?i)(\d)\s*(AM|PM)`), `$1 $2`},            // "1PM" -> "1 PM"
	// ${2} keeps the group reference from swallowing the literal M
	{regexp.MustCompile(`(?i)(\d)\s*([AP])\s*[.,]?\s*M`), `$1 ${2}M`}, // "1 P M" -> "1 PM"
	{regexp.MustCompile(`[-–—−]+`), `-`},
	{regexp.MustCompile(`\s*-\s*`), ` - `},
	{regexp.MustCompile(`\s*=\s*`), ` - `},
	{regexp.MustCompile(`(?i)\s+to\s+`), ` - `},
}

// the primary cascade, most specific first.
var timePatterns = []rule{
	// full AM/PM range: "10:00 AM - 1:00 PM"
	{re: regexp.MustCompile(timeLbl + `(` + hhmmOpt + `\s*` + ampmAlt + `\s*` + dashLike + `\s*` + hhmmOpt + `\s*` + ampmAlt + `)`), group: 1},
	// range with AM/PM only on the end: "10:00 - 1:00 PM"
	{re: regexp.MustCompile(timeLbl + `(` + hhmmOpt + `\s*` + dashLike + `\s*` + hhmmOpt + `\s*` + ampmAlt + `)`), group: 1},
	// single time with AM/PM: "10:00 AM"
	{re: regexp.MustCompile(timeLbl + `(` + hhmmOpt + `\s*` + ampmAlt + `)`), group: 1},
	// 24-hour range: "10:00 - 13:00"
	{re: regexp.MustCompile(timeLbl + `(\d{1,2}[:.]\d{2}\s*` + dashLike + `\s*\d{1,2}[:.]\d{2})`), group: 1},
	// simple hour range: "1-2PM", "9AM-4PM"
	{re: regexp.MustCompile(timeLbl + `(\d{1,2}\s*(?:AM|PM|am|pm)?\s*` + dashLike + `\s*\d{1,2}\s*(?:AM|PM|am|pm))`), group: 1},
	// contextual range: "from 10AM to 2PM"
	{re: regexp.MustCompile(`(?i)(?:from|between)\s+(` + hhmmOpt + `\s*(?:AM|PM|am|pm)?\s*(?:to|and|-)\s*` + hhmmOpt + `\s*(?:AM|PM|am|pm))`), group: 1},
	// bare hour with AM/PM: "1 PM"
	{re: regexp.MustCompile(timeLbl + `(\d{1,2}\s*` + ampmAlt + `)`), group: 1},
	// 24-hour single: "13:00"
	{re: regexp.MustCompile(timeLbl + `((?:0?[0-9]|1[0-9]|2[0-3])[:.]\d{2})`), group: 1},
	// bare hour before o'clock/hours
	{re: regexp.MustCompile(timeLbl + `(\d{1,2})\s*(?:o'clock|oclock|hours?)`), group: 1},
}

// looser fallbacks when the cascade comes up empty.
var timeFallbackPatterns = []rule{
	{re: regexp.MustCompile(`(?i)(\d{1,2}\s*(?:AM|PM))`), group: 1},
	{re: regexp.MustCompile(`(\d{1,2}[:.]\d{2})`), group: 1},
	{re: regexp.MustCompile(`(?i)(?:at|@)\s*(\d{1,2})\b`), group: 1},
}

var (
	reAmPmWord     = regexp.MustCompile(`(?i)\b([ap])\.?m\.?\b`)
	reDigitODigit  = regexp.MustCompile(`(\d)[oO](\d)`)
	rePeriodAmPm   = regexp.MustCompile(`(?i)\.(\d{2}\s*(?:AM|PM))`)
	reBareHourMin  = regexp.MustCompile(`^\d:\d{2}$`)
	reRangeSep     = regexp.MustCompile(`\s*[-–=]\s*`)
	reHasDigit     = regexp.MustCompile(`\d`)
)

func init() {
	for i := range timePatterns {
		timePatterns[i].post = postProcessTime
	}
	for i := range timeFallbackPatterns {
		timeFallbackPatterns[i].post = postProcessTime
	}
}

// ExtractTime recovers a normalized time or time range.
func ExtractTime(text string) FieldValue {
	processed := preprocessTimeText(text)

	if s, ok := firstMatch(timePatterns, processed); ok {
		return Found(s)
	}
	if s, ok := firstMatch(timeFallbackPatterns, processed); ok {
		return Found(s)
	}
	return NotFound()
}

func preprocessTimeText(text string) string {
	for _, p := range timePreprocessors {
		text = p.re.ReplaceAllString(text, p.repl)
	}
	return text
}

// postProcessTime canonicalizes one captured time: AM/PM uppercased, stray
// colon stand-ins fixed, single-digit 24-hour values zero-padded, range
// separators normalized. Returns "" when the capture holds no digit at all.
func postProcessTime(s string) string {
	s = cleanText(s)

	s = reAmPmWord.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ToUpper(string(m[0])) + "M"
	})
	s = reDigitODigit.ReplaceAllString(s, "$1:$2")
	s = rePeriodAmPm.ReplaceAllString(s, ":$1")

	if reBareHourMin.MatchString(s) {
		s = "0" + s
	}
	s = reRangeSep.ReplaceAllString(s, " - ")

	if !reHasDigit.MatchString(s) {
		return ""
	}
	return s
}
