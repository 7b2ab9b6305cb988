package extract

import (
	"regexp"
	"strings"
)

const priceCurrencyAlt = `Rs\.?|₹|INR|USD|\$|€|EUR|£|GBP|¥|JPY`

// currencySpecs drive pattern generation: each symbol form is crossed with
// four positional templates. Order matters for output determinism.
var currencySpecs = []struct {
	code    string
	symbols []string
}{
	{"INR", []string{`₹`, `Rs\.?`, `INR`, `Rupees?`}},
	{"USD", []string{`\$`, `USD`, `Dollars?`}},
	{"EUR", []string{`€`, `EUR`, `Euros?`}},
	{"GBP", []string{`£`, `GBP`, `Pounds?`}},
	{"JPY", []string{`¥`, `JPY`, `Yen`}},
}

// pricePattern captures either one amount or, for ranges, two.
type pricePattern struct {
	re     *regexp.Regexp
	groups int
}

var pricePatterns = buildPricePatterns()

func buildPricePatterns() []pricePattern {
	var out []pricePattern
	for _, spec := range currencySpecs {
		for _, sym := range spec.symbols {
			out = append(out,
				// labeled, symbol before amount: "Fee: Rs. 500"
				pricePattern{regexp.MustCompile(`(?i)(?:price|fee|cost|ticket|registration|entry)\s*:?\s*` + sym + `\s*(\d+(?:[,.]\d+)?)`), 1},
				// bare symbol-amount: "$100"
				pricePattern{regexp.MustCompile(`(?i)` + sym + `\s*(\d+(?:[,.]\d+)?)`), 1},
				// labeled, amount before symbol: "Fee: 500 Rs"
				pricePattern{regexp.MustCompile(`(?i)(?:price|fee|cost|ticket|registration|entry)\s*:?\s*(\d+(?:[,.]\d+)?)\s*` + sym), 1},
				// bare amount-symbol: "100 USD"
				pricePattern{regexp.MustCompile(`(?i)(\d+(?:[,.]\d+)?)\s*` + sym), 1},
			)
		}
	}
	out = append(out,
		// ranges: "$100-200", "Rs. 500 to 1000"
		pricePattern{regexp.MustCompile(`(?i)(?:price|fee|cost|ticket|registration|entry)\s*:?\s*(?:` + priceCurrencyAlt + `)?\s*(\d+(?:[,.]\d+)?)\s*(?:to|-|–)\s*(?:` + priceCurrencyAlt + `)?\s*(\d+(?:[,.]\d+)?)`), 2},
		// role-tiered pricing: "Student: $10"
		pricePattern{regexp.MustCompile(`(?i)((?:student|professional|academic|member|non-member|early\s+bird|regular)\s*:?\s*(?:` + priceCurrencyAlt + `)?\s*\d+(?:[,.]\d+)?)`), 1},
		// "registration fee is 100"
		pricePattern{regexp.MustCompile(`(?i)(?:registration|entry|participation|ticket)\s+(?:fee|cost|price)\s+(?:is|of)?\s*(?:` + priceCurrencyAlt + `)?\s*(\d+(?:[,.]\d+)?)`), 1},
		// bare labeled number: "Entry: 200"
		pricePattern{regexp.MustCompile(`(?i)(?:price|fee|cost|ticket|registration|entry|pay|payment)\s*:?\s*(\d+(?:[,.]\d+)?)`), 1},
	)
	return out
}

var (
	reFreeNearby  = regexp.MustCompile(`(?i)\b(?:free|no\s+(?:charge|fee|cost)|complimentary|gratis)\b`)
	reFreeEvent   = regexp.MustCompile(`(?i)\b(?:free\s+(?:entry|admission|event|registration)|no\s+(?:charge|fee|cost)|entry\s+free|admission\s+free|complimentary|gratis)\b`)
	rePriceDigits = regexp.MustCompile(`[^\d.,]`)
)

// contextCurrencies resolves a display symbol from surrounding text; listed
// in priority order, first substring hit wins.
var contextCurrencies = []struct {
	key, symbol string
}{
	{"₹", "₹"}, {"rs.", "₹"}, {"rs", "₹"}, {"inr", "₹"}, {"rupee", "₹"},
	{"$", "$"}, {"usd", "$"}, {"dollar", "$"},
	{"€", "€"}, {"eur", "€"}, {"euro", "€"},
	{"£", "£"}, {"gbp", "£"}, {"pound", "£"},
	{"¥", "¥"}, {"jpy", "¥"}, {"yen", "¥"},
}

// ExtractPrice runs every generated pattern over the text. Each amount is
// prefixed with a currency resolved from a ±50-character context window; a
// match whose own clause advertises free admission is reported as "Free"
// instead of the amount. The clause restriction keeps "Entry Free for
// students, $50 for professionals" from swallowing the paid tier. Results
// are deduplicated preserving order and joined with " | ", with an
// unconditional free-phrase scan appended last.
func ExtractPrice(text string) FieldValue {
	var found []string
	for _, pp := range pricePatterns {
		for _, loc := range pp.re.FindAllStringSubmatchIndex(text, -1) {
			start, end := loc[0], loc[1]
			winStart, winEnd := start-50, end+50
			if winStart < 0 {
				winStart = 0
			}
			if winEnd > len(text) {
				winEnd = len(text)
			}
			context := strings.ToLower(text[winStart:winEnd])

			if reFreeNearby.MatchString(clauseAround(text, start, end, winStart, winEnd)) {
				found = append(found, "Free")
				continue
			}

			if pp.groups == 2 {
				p1 := text[loc[2]:loc[3]]
				p2 := text[loc[4]:loc[5]]
				found = append(found, currencyFromContext(context)+p1+"-"+p2)
				continue
			}

			price := rePriceDigits.ReplaceAllString(text[loc[2]:loc[3]], "")
			if price != "" && price[0] >= '0' && price[0] <= '9' {
				found = append(found, currencyFromContext(context)+price)
			}
		}
	}

	if reFreeEvent.MatchString(text) {
		found = append(found, "Free")
	}

	if len(found) == 0 {
		return NotFound()
	}

	seen := make(map[string]bool)
	var unique []string
	for _, p := range found {
		if !seen[p] {
			seen[p] = true
			unique = append(unique, p)
		}
	}
	return Found(strings.Join(unique, " | "))
}

// clauseAround narrows the context window to the clause containing the
// match, cutting at commas, semicolons, periods, and newlines.
func clauseAround(text string, start, end, winStart, winEnd int) string {
	left := winStart
	for i := start - 1; i >= winStart; i-- {
		if isClauseBreak(text[i]) {
			left = i + 1
			break
		}
	}
	right := winEnd
	for i := end; i < winEnd; i++ {
		if isClauseBreak(text[i]) {
			right = i
			break
		}
	}
	return text[left:right]
}

func isClauseBreak(b byte) bool {
	return b == ',' || b == ';' || b == '.' || b == '\n'
}

func currencyFromContext(context string) string {
	for _, c := range contextCurrencies {
		if strings.Contains(context, c.key) {
			return c.symbol
		}
	}
	return ""
}
