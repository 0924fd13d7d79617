package analyze

import (
	"regexp"

	"github.com/vianieuws/perstool/internal/model"
)

// StyleRule pairs a pattern with the message shown when it matches. The table
// is data so that every entry can be audited and tested on its own.
type StyleRule struct {
	Pattern *regexp.Regexp
	Message string
}

// styleRules covers frequently made Dutch spelling and usage mistakes from
// the house style guide. All matching rules fire, not just the first.
var styleRules = []StyleRule{
	{
		Pattern: regexp.MustCompile(`(?i)\bteveel\b`),
		Message: "'teveel' hoort los geschreven te worden: 'te veel'.",
	},
	{
		Pattern: regexp.MustCompile(`(?i)\b(pers bericht|nieuws bericht|pers conferentie|contact persoon|basis school)\b`),
		Message: "Samenstellingen schrijf je aan elkaar (bijv. 'persbericht', 'contactpersoon').",
	},
	{
		Pattern: regexp.MustCompile(`\d\s*%`),
		Message: "Schrijf 'procent' voluit in plaats van het %-teken.",
	},
	{
		Pattern: regexp.MustCompile(`[\p{Ll},;:]\s+U(?:w)?\b`),
		Message: "Gebruik 'u' en 'uw' met een kleine letter.",
	},
	{
		Pattern: regexp.MustCompile(`(?i)\bene\s+na\s+grootste\b`),
		Message: "'ene na grootste' hoort 'een na grootste' te zijn.",
	},
	{
		Pattern: regexp.MustCompile(`(?i)\bme\s+(moeder|vader|broer|zus|collega)\b`),
		Message: "'me' als bezittelijk voornaamwoord hoort 'mijn' te zijn.",
	},
}

// CheckStyle runs every style rule over the text and emits one W007 per
// matching rule.
func CheckStyle(text string) []model.Signal {
	var signals []model.Signal
	for _, rule := range styleRules {
		if rule.Pattern.MatchString(text) {
			signals = append(signals, model.NewSignalf(model.CodeStyleDeviation, "%s", rule.Message))
		}
	}
	return signals
}
