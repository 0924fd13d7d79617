package analyze

import (
	"regexp"

	"github.com/vianieuws/perstool/internal/model"
)

// Lexical 5W+H presence scan of Dutch source text. All detection here is
// keyword-based; it exists to reject hopeless sources before the rewrite
// call, not to understand the text.
var (
	wiePattern = regexp.MustCompile(`(?i)\b(organisatie|bedrijf|stichting|vereniging|gemeente|provincie|politie|universiteit|ministerie)\b|\p{Lu}\p{Ll}+ \p{Lu}\p{Ll}+`)
	watPattern = regexp.MustCompile(`(?i)\b(opent|start|lanceert|introduceert|organiseert|houdt|presenteert|maakt bekend|kondigt aan|meldt|sluit|bouwt)\b`)

	waarPattern    = regexp.MustCompile(`(?i)\b(in|op|bij|te)\b`)
	wanneerPattern = regexp.MustCompile(`(?i)\b\d{1,2}\s+(januari|februari|maart|april|mei|juni|juli|augustus|september|oktober|november|december)\s+\d{4}\b|\b(maandag|dinsdag|woensdag|donderdag|vrijdag|zaterdag|zondag|vandaag|morgen|gisteren)\b`)
	waaromPattern  = regexp.MustCompile(`(?i)\b(omdat|zodat|vanwege|wegens|waardoor|met als doel|doel is)\b`)
	hoePattern     = regexp.MustCompile(`(?i)\b(door|via|met behulp van|door middel van|op deze manier|op basis van)\b`)

	relativeTime = regexp.MustCompile(`(?i)\b(gisteren|vandaag|morgen|vanavond|vanochtend|gisteravond)\b`)
	fourDigits   = regexp.MustCompile(`\b\d{4}\b`)
)

// FiveWPresence records which of the six lead questions the source text
// appears to answer.
type FiveWPresence struct {
	Wie, Wat, Waar, Wanneer, Waarom, Hoe bool
}

// CoreMissing returns how many of wie/wat/waar/wanneer/waarom are absent.
// Only "hoe" sits outside the count.
func (p FiveWPresence) CoreMissing() int {
	n := 0
	for _, ok := range []bool{p.Wie, p.Wat, p.Waar, p.Wanneer, p.Waarom} {
		if !ok {
			n++
		}
	}
	return n
}

// ScanFiveW runs the lexical presence scan over source text.
func ScanFiveW(text string) FiveWPresence {
	return FiveWPresence{
		Wie:     wiePattern.MatchString(text),
		Wat:     watPattern.MatchString(text),
		Waar:    waarPattern.MatchString(text),
		Wanneer: wanneerPattern.MatchString(text),
		Waarom:  waaromPattern.MatchString(text),
		Hoe:     hoePattern.MatchString(text),
	}
}

// ValidateFiveW checks the structured 5W+H extraction of a generated
// document. When two or more core fields are missing it returns the single
// hard E006 signal; otherwise each missing field gets its own code, and a
// relative "wanneer" without a four-digit year asks for external
// verification.
func ValidateFiveW(doc model.GeneratedDocument) []model.Signal {
	w := doc.VijfW
	if w.CoreMissing() >= 2 {
		return []model.Signal{model.NewSignal(model.CodeFiveWMissing)}
	}

	var signals []model.Signal
	if w.Wie == "" {
		signals = append(signals, model.NewSignal(model.CodeWhoMissing))
	}
	if w.Wat == "" {
		signals = append(signals, model.NewSignal(model.CodeWhatMissing))
	}
	if w.Waar == "" {
		signals = append(signals, model.NewSignal(model.CodeWhereMissing))
	}
	if w.Wanneer == "" {
		signals = append(signals, model.NewSignal(model.CodeWhenMissing))
	}
	if w.Waarom == "" {
		signals = append(signals, model.NewSignal(model.CodeWhyMissing))
	}
	if w.Hoe == "" {
		signals = append(signals, model.NewSignal(model.CodeHowMissing))
	}
	if relativeTime.MatchString(w.Wanneer) && !fourDigits.MatchString(w.Wanneer) {
		signals = append(signals, model.NewSignal(model.CodeRelativeDate))
	}
	return signals
}
