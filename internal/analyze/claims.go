package analyze

import (
	"regexp"
	"strings"
)

// strongClaimTerms is the closed list of promotional superlatives flagged for
// editorial review. Matching is case-insensitive and word-bounded.
var strongClaimTerms = []string{
	`uniek`,
	`beste`,
	`veiligste?`,
	`revolutionair`,
	`nummer\s*1`,
	`toonaangevend`,
	`wereldprimeur`,
	`baanbrekend`,
}

var strongClaims = regexp.MustCompile(`(?i)\b(` + strings.Join(strongClaimTerms, `|`) + `)\b`)

// FindStrongClaims returns the deduplicated, lowercased promotional terms
// present in the text, in order of first occurrence. Empty means no claim
// language was found.
func FindStrongClaims(text string) []string {
	var terms []string
	seen := map[string]bool{}
	for _, m := range strongClaims.FindAllString(text, -1) {
		t := strings.ToLower(strings.Join(strings.Fields(m), " "))
		if !seen[t] {
			seen[t] = true
			terms = append(terms, t)
		}
	}
	return terms
}
