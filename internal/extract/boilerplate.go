package extract

import (
	"regexp"
	"strings"
)

// Boilerplate detection: lines carrying contact, admin or marketing text
// rather than substantive content. Used as a gate when picking title and
// venue candidates. First match wins; no partial scoring.

var boilerplatePatterns = compileAll(
	// field-label prefixes
	`^\s*date\s*:`,
	`^\s*time\s*:`,
	`^\s*venue\s*:`,
	`^\s*location\s*:`,
	`^\s*contact\s*:`,
	`^\s*phone\s*:`,
	`^\s*email\s*:`,
	`^\s*price\s*:`,
	`^\s*fee\s*:`,
	`^\s*register\s*:`,
	`^\s*organised by`,
	`^\s*organized by`,
	`^\s*sponsored by`,
	`^\s*presented by`,
	`^\s*powered by`,
	`^\s*in association with`,
	`^\s*supported by`,
	// links and handles
	`www\.`,
	`http[s]?://`,
	`@\w+`,
	`^\s*follow us`,
	`^\s*visit us`,
	`^\s*call us`,
	`^\s*whatsapp`,
	`^\s*telegram`,
	`^\s*facebook`,
	`^\s*instagram`,
	`^\s*twitter`,
	`^\s*linkedin`,
	// admin vocabulary
	`admission`,
	`registration`,
	`certificate`,
	`refreshments`,
	`lunch`,
	`dinner`,
	`breakfast`,
)

var (
	reBoilerEmail   = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	reBoilerPhone   = regexp.MustCompile(`\+?\d[\d\s\-().]{7,}|\d{10,}`)
	reBoilerAddress = regexp.MustCompile(`(?i)\b(?:street|road|avenue|lane|drive|plaza|building|floor)\b`)
)

var genericPhrases = []string{
	"welcome", "join us", "dont miss", "don't miss", "limited seats",
	"hurry up", "book now", "register now", "apply now", "click here",
	"for more information", "terms and conditions", "terms & conditions",
}

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(`(?i)` + p)
	}
	return out
}

// IsBoilerplate reports whether a line is administrative/contact/marketing
// noise rather than title or venue material.
func IsBoilerplate(line string) bool {
	lower := lowerTrim(line)
	for _, re := range boilerplatePatterns {
		if re.MatchString(lower) {
			return true
		}
	}
	if reBoilerEmail.MatchString(line) {
		return true
	}
	if reBoilerPhone.MatchString(line) {
		return true
	}
	if reBoilerAddress.MatchString(lower) {
		return true
	}
	for _, phrase := range genericPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
