package analyze

import (
	"github.com/vianieuws/perstool/internal/model"
)

// Length bounds from the style guide. All counts are counting-normalized
// characters including spaces.
const (
	headlineMin = 100
	headlineMax = 150

	introMin = 200
	introMax = 220

	// Total (intro+body) target classes. XS is chosen when the cleaned
	// source length falls in (xsSourceMin, xsSourceMax]; S otherwise.
	xsSourceMin = 800
	xsSourceMax = 1600

	xsTotalMin = 950
	xsTotalMax = 1150
	sTotalMin  = 1750
	sTotalMax  = 1950

	// lengthTolerance widens the class maximum. The tolerance applies to the
	// upper bound only; see DESIGN.md for the resolution of the two formulas
	// that existed historically.
	lengthTolerance = 1.10

	// absoluteTotalMin is the hard floor: a generated document below this is
	// rejected outright and its output discarded.
	absoluteTotalMin = 950
)

// LengthClass is one of the two target output tiers.
type LengthClass struct {
	Name   string
	Target int
	Min    int
	Max    int
}

// ClassForSource selects the target length class from the cleaned source
// length.
func ClassForSource(sourceLen int) LengthClass {
	if sourceLen > xsSourceMin && sourceLen <= xsSourceMax {
		return LengthClass{Name: "XS", Target: 1000, Min: xsTotalMin, Max: xsTotalMax}
	}
	return LengthClass{Name: "S", Target: 1800, Min: sTotalMin, Max: sTotalMax}
}

// ValidateLengths checks headline, intro and total length of a generated
// document against the style guide. A total below the absolute floor yields
// the hard E004 signal.
func ValidateLengths(doc model.GeneratedDocument, sourceLen int) []model.Signal {
	var signals []model.Signal

	kopLen := CharCount(doc.Kop)
	if kopLen < headlineMin {
		signals = append(signals, model.NewSignal(model.CodeHeadlineTooShort))
	}
	if kopLen > headlineMax {
		signals = append(signals, model.NewSignal(model.CodeHeadlineTooLong))
	}
	if terminalPunct.MatchString(doc.Kop) {
		signals = append(signals, model.NewSignalf(model.CodeStyleDeviation, "Kop bevat leestekens; een kop hoort zonder leestekens."))
	}

	introLen := CharCount(doc.Intro)
	if introLen < introMin || introLen > introMax {
		signals = append(signals, model.NewSignalf(model.CodeStyleDeviation,
			"Intro-lengte wijkt af: %d tekens (richtlijn %d-%d).", introLen, introMin, introMax))
	}

	total := introLen + CharCount(doc.Body)
	if total < absoluteTotalMin {
		signals = append(signals, model.NewSignal(model.CodeTextTooShort))
		return signals
	}

	class := ClassForSource(sourceLen)
	softMax := int(float64(class.Max) * lengthTolerance)
	switch {
	case total < class.Min:
		signals = append(signals, model.NewSignalf(model.CodeStyleDeviation,
			"Tekst mogelijk te kort voor %s: %d tekens (doel %d-%d).", class.Name, total, class.Min, class.Max))
	case total > softMax:
		signals = append(signals, model.NewSignalf(model.CodeStyleDeviation,
			"Tekst mogelijk te lang voor %s: %d tekens (doel %d-%d, max %d).", class.Name, total, class.Min, class.Max, softMax))
	}
	return signals
}
