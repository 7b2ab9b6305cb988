package extract

import "regexp"

// rule is one step of an extraction cascade: a pattern, the capture group
// holding the candidate, and an optional post-processing function. post may
// return "" to reject a malformed candidate, in which case the cascade moves
// on to the next match.
type rule struct {
	re    *regexp.Regexp
	group int
	post  func(string) string
}

// firstMatch evaluates rules in order and returns the first post-processed,
// non-empty candidate. Rules earlier in the list always win over later ones;
// within a rule, matches are taken in text order. Appending a rule never
// changes the behavior of the rules before it.
func firstMatch(rules []rule, text string) (string, bool) {
	for _, r := range rules {
		for _, m := range r.re.FindAllStringSubmatch(text, -1) {
			if r.group >= len(m) {
				continue
			}
			candidate := m[r.group]
			if r.post != nil {
				candidate = r.post(candidate)
			}
			if candidate != "" {
				return candidate, true
			}
		}
	}
	return "", false
}
