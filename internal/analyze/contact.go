package analyze

import (
	"regexp"
	"strings"
)

// maxContactItems caps the number of surfaced contact entries.
const maxContactItems = 10

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	// Digit runs with common phone separators; candidates are filtered on
	// actual digit count afterwards.
	phonePattern = regexp.MustCompile(`\+?\d[\d ().\-]{5,}\d`)
)

// FindContactInfo scans source text for e-mail addresses and phone-shaped
// digit runs (seven or more digits). The result is deduplicated in order of
// first occurrence and capped. Callers use it both to raise the leak warning
// and as the fallback not-for-publication contact block.
func FindContactInfo(text string) []string {
	var found []string
	seen := map[string]bool{}

	add := func(v string) {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] || len(found) >= maxContactItems {
			return
		}
		seen[v] = true
		found = append(found, v)
	}

	for _, m := range emailPattern.FindAllString(text, -1) {
		add(m)
	}
	for _, m := range phonePattern.FindAllString(text, -1) {
		if digitCount(m) >= 7 {
			add(m)
		}
	}
	return found
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
