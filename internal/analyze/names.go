package analyze

import (
	"regexp"
	"sort"
	"strings"

	"github.com/vianieuws/perstool/internal/model"
)

var capitalizedPair = regexp.MustCompile(`\p{Lu}[\p{L}'-]{2,}(?: \p{Lu}[\p{L}'-]{2,})?`)

// nameStopwords are capitalized tokens that are almost never names.
var nameStopwords = map[string]bool{
	"het": true, "een": true, "die": true, "dat": true, "deze": true,
	"daarnaast": true, "ook": true, "volgens": true, "tijdens": true,
	"vandaag": true, "morgen": true, "gisteren": true,
}

// CheckNameConsistency buckets capitalized words and word pairs from the
// source and the generated text case-insensitively. A bucket holding two or
// more distinct surface spellings points at a name that is spelled
// differently between source and rewrite.
func CheckNameConsistency(source, generated string) []model.Signal {
	buckets := map[string]map[string]bool{}

	collect := func(text string) {
		for _, m := range capitalizedPair.FindAllString(text, -1) {
			key := strings.ToLower(m)
			if nameStopwords[key] {
				continue
			}
			if buckets[key] == nil {
				buckets[key] = map[string]bool{}
			}
			buckets[key][m] = true
		}
	}
	collect(source)
	collect(generated)

	var inconsistent []string
	for key, surfaces := range buckets {
		if len(surfaces) >= 2 {
			inconsistent = append(inconsistent, key)
		}
	}
	if len(inconsistent) == 0 {
		return nil
	}
	sort.Strings(inconsistent)
	return []model.Signal{
		model.NewSignalf(model.CodeNameMismatch, "Gevonden: %s.", strings.Join(inconsistent, ", ")),
	}
}
