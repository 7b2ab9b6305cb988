package extract

import (
	"regexp"
	"sort"
	"strings"
)

// audienceCategories maps a canonical category name to the keywords that
// imply it. Keys are stored title-cased as they appear in output.
var audienceCategories = []struct {
	category string
	keywords []string
}{
	{"Student", []string{"student", "students", "undergraduate", "graduate", "phd", "doctoral", "scholar", "learner"}},
	{"Researcher", []string{"researcher", "researchers", "research", "scientist", "scientists", "investigator", "academic", "academics"}},
	{"Professional", []string{"professional", "professionals", "practitioner", "practitioners", "expert", "experts"}},
	{"Developer", []string{"developer", "developers", "programmer", "programmers", "coder", "coders", "engineer", "engineers"}},
	{"Teacher", []string{"teacher", "teachers", "educator", "educators", "instructor", "instructors", "faculty"}},
	{"Doctor", []string{"doctor", "doctors", "physician", "physicians", "medical", "healthcare"}},
	{"Artist", []string{"artist", "artists", "creative", "creatives", "designer", "designers"}},
	{"Entrepreneur", []string{"entrepreneur", "entrepreneurs", "startup", "business owner", "founder"}},
	{"Manager", []string{"manager", "managers", "executive", "executives", "leader", "leadership"}},
}

const audienceRoleAlt = `students?|researchers?|professionals?|developers?|engineers?|doctors?|teachers?|artists?|musicians?|entrepreneurs?|designers?|managers?|executives?|academics?|scholars?|practitioners?|scientists?`

const academicAudience = "Students/Researchers"

var audiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:for|targeting|aimed\s+at|intended\s+for|designed\s+for)\s+(.*?(?:` + audienceRoleAlt + `))`),
	regexp.MustCompile(`(?i)(.*?(?:` + audienceRoleAlt + `))\s+(?:are\s+)?(?:invited|welcome|encouraged|requested)`),
	regexp.MustCompile(`(?i)(?:call\s+for|seeking|inviting|looking\s+for)\s+(.*?(?:students?|researchers?|professionals?|paper\s+submission|abstract\s+submission|presentation))`),
	regexp.MustCompile(`(?i)(paper\s+submission|abstract\s+submission|research\s+paper|manuscript\s+submission|call\s+for\s+papers)`),
	regexp.MustCompile(`(?i)(?:registration\s+(?:open\s+)?for|register\s+(?:now\s+)?for)\s+(.*?(?:students?|researchers?|professionals?|participants?))`),
	regexp.MustCompile(`(?im)(?:open\s+to\s+all|all\s+are\s+welcome|everyone\s+welcome)\s*(.*?)(?:\n|$|\.)`),
	regexp.MustCompile(`(?im)(?:conference|workshop|seminar|symposium|congress)\s+(?:for|on)\s+(.*?)(?:\n|$|\.)`),
	regexp.MustCompile(`(?im)(?:member|members)\s+of\s+(.*?)(?:\n|$|\.)`),
	regexp.MustCompile(`(?im)(?:beginner|intermediate|advanced|expert)\s+(.*?)(?:\n|$|\.)`),
	regexp.MustCompile(`(?i)(?:computer\s+science|engineering|medical|business|arts?|science)\s+(students?|professionals?|researchers?)`),
}

var academicVenueWords = []string{
	"conference", "symposium", "workshop", "seminar", "congress",
	"journal", "publication", "research", "academic", "university", "college",
}

// audienceKeywordRes[i] matches any keyword of audienceCategories[i].
var audienceKeywordRes = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(audienceCategories))
	for i, cat := range audienceCategories {
		quoted := make([]string, len(cat.keywords))
		for j, kw := range cat.keywords {
			quoted[j] = regexp.QuoteMeta(kw)
		}
		res[i] = regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
	}
	return res
}()

var audienceGenerics = map[string]bool{
	"professional": true,
	"participants": true,
	"everyone":     true,
}

// ExtractAudience returns the alphabetically sorted, comma-joined set of
// audience categories mentioned in the text. Captures from contextual
// patterns map onto a category when a category keyword appears inside them,
// otherwise the capture is kept verbatim. Generic terms drop out when
// something more specific was found.
func ExtractAudience(text string) FieldValue {
	textLower := strings.ToLower(text)
	found := make(map[string]bool)

	for _, re := range audiencePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			captured := strings.TrimSpace(m[len(m)-1])
			lower := strings.ToLower(captured)
			if strings.Contains(lower, "paper submission") || strings.Contains(lower, "abstract submission") {
				found[academicAudience] = true
				continue
			}
			captured = cleanText(captured)
			if len(captured) > 100 {
				words := strings.Fields(captured)
				if len(words) > 10 {
					captured = strings.Join(words[:10], " ")
				}
			}
			if captured == "" {
				continue
			}
			if category, ok := mapToCategory(captured); ok {
				found[category] = true
			} else {
				found[captured] = true
			}
		}
	}

	// keyword scan over the whole text, independent of any pattern
	for i, cat := range audienceCategories {
		if audienceKeywordRes[i].MatchString(textLower) {
			found[cat.category] = true
		}
	}

	// academic venue + submission language implies students and researchers
	if containsAny(textLower, academicVenueWords) &&
		(strings.Contains(textLower, "paper") || strings.Contains(textLower, "abstract") || strings.Contains(textLower, "submission")) {
		found[academicAudience] = true
	}

	if len(found) == 0 {
		return NotSpecified()
	}

	hasSpecific := false
	for name := range found {
		if !audienceGenerics[strings.ToLower(name)] {
			hasSpecific = true
			break
		}
	}

	var out []string
	for name := range found {
		if hasSpecific && audienceGenerics[strings.ToLower(name)] {
			continue
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return Found(strings.Join(out, ", "))
}

func mapToCategory(s string) (string, bool) {
	lower := strings.ToLower(s)
	for _, cat := range audienceCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				return cat.category, true
			}
		}
	}
	return "", false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
