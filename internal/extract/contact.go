package extract

import (
	"regexp"
	"sort"
	"strings"
)

// Phone patterns. The unlabeled variants carry a one-character guard on each
// side instead of lookarounds, so group 1 is always the number itself.
var phonePatterns = []struct {
	re    *regexp.Regexp
	group int
}{
	{regexp.MustCompile(`(?i)(?:phone|mobile|contact|call|tel|telephone)\s*:?\s*(\+?\d[\d\s\-().]{7,})`), 1},
	{regexp.MustCompile(`(?i)(?:phone|mobile|contact|call|tel|telephone)\s*:?\s*(\+?\d{1,4}[\s\-()]*\d{3,4}[\s\-()]*\d{3,4})`), 1},
	{regexp.MustCompile(`(?:^|[^\d])(\+?\d{10,12})(?:[^\d]|$)`), 1},
	{regexp.MustCompile(`(?:^|[^\d])(\+?\d{1,4}[\s\-()]*\d{3,4}[\s\-()]*\d{3,4})(?:[^\d]|$)`), 1},
}

var rePhoneNonDigit = regexp.MustCompile(`[^\d+]`)

// ExtractPhones collects phone numbers from every pattern, stripped to
// digits and a leading "+", keeping only candidates with at least ten
// digits. Matches are comma-joined in discovery order; repeats across
// patterns are kept as-is.
func ExtractPhones(text string) FieldValue {
	var numbers []string
	for _, pp := range phonePatterns {
		for _, m := range pp.re.FindAllStringSubmatch(text, -1) {
			phone := rePhoneNonDigit.ReplaceAllString(m[pp.group], "")
			if digitCount(phone) >= 10 {
				numbers = append(numbers, phone)
			}
		}
	}
	if len(numbers) == 0 {
		return NotFound()
	}
	return Found(strings.Join(numbers, ", "))
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

const emailCore = `[a-zA-Z0-9](?:[a-zA-Z0-9._-]*[a-zA-Z0-9])?@[a-zA-Z0-9](?:[a-zA-Z0-9.-]*[a-zA-Z0-9])?\.[a-zA-Z]{2,}`

var emailPatterns = []*regexp.Regexp{
	// standard form
	regexp.MustCompile(`\b` + emailCore + `\b`),
	// OCR artifact: spaces around @ and the domain dot
	regexp.MustCompile(`\b[a-zA-Z0-9](?:[a-zA-Z0-9._-]*[a-zA-Z0-9])?\s*@\s*[a-zA-Z0-9](?:[a-zA-Z0-9.-]*[a-zA-Z0-9])?\s*\.\s*[a-zA-Z]{2,}\b`),
	// labeled
	regexp.MustCompile(`(?i)(?:email|e-mail|contact|write\s+to|send\s+to|reach\s+(?:us\s+)?(?:at|out))\s*:?\s*(` + emailCore + `)`),
	// several addresses run together with delimiters
	regexp.MustCompile(`\b` + emailCore + `(?:\s*[,;|&/]\s*` + emailCore + `)*`),
}

var (
	reEmailSpace = regexp.MustCompile(`\s+`)
	reEmailSplit = regexp.MustCompile(`[,;|&/\s]+`)
	reEmailValid = regexp.MustCompile(`^` + emailCore + `$`)
)

// ExtractEmails collects addresses from all patterns, collapses OCR
// whitespace, splits multi-address runs, validates each, and returns the
// lowercased deduplicated set in sorted order.
func ExtractEmails(text string) FieldValue {
	found := make(map[string]bool)
	for _, re := range emailPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			captured := m[len(m)-1]
			if captured == "" {
				captured = m[0]
			}
			captured = reEmailSpace.ReplaceAllString(captured, "")
			for _, email := range reEmailSplit.Split(captured, -1) {
				email = strings.TrimSpace(email)
				if validateEmail(email) {
					found[strings.ToLower(email)] = true
				}
			}
		}
	}
	if len(found) == 0 {
		return NotFound()
	}
	emails := make([]string, 0, len(found))
	for e := range found {
		emails = append(emails, e)
	}
	sort.Strings(emails)
	return Found(strings.Join(emails, ", "))
}

// validateEmail applies a light RFC 5321 sanity check: shape, overall
// length, and a dotted domain with a TLD of at least two letters.
func validateEmail(email string) bool {
	if !reEmailValid.MatchString(email) {
		return false
	}
	if len(email) < 5 || len(email) > 254 {
		return false
	}
	at := strings.LastIndex(email, "@")
	domain := email[at+1:]
	dot := strings.LastIndex(domain, ".")
	return dot >= 0 && len(domain)-dot-1 >= 2
}

var socialPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:facebook|fb)\.com/\S+`),
	regexp.MustCompile(`(?i)(?:instagram|ig)\.com/\S+`),
	regexp.MustCompile(`(?i)(?:twitter|x)\.com/\S+`),
	regexp.MustCompile(`(?i)linkedin\.com/\S+`),
	regexp.MustCompile(`(?i)youtube\.com/\S+`),
	regexp.MustCompile(`@\w+`), // bare handle
}

// ExtractSocial collects social media links and handles in pattern order,
// comma-joined without deduplication. The bare-handle pattern will also pick
// up the domain half of email addresses; callers that care should read the
// email field instead.
func ExtractSocial(text string) FieldValue {
	var links []string
	for _, re := range socialPatterns {
		links = append(links, re.FindAllString(text, -1)...)
	}
	if len(links) == 0 {
		return NotFound()
	}
	return Found(strings.Join(links, ", "))
}
