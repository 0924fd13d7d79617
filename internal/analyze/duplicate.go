package analyze

import (
	"regexp"
	"strings"
)

// Score weights and thresholds for the duplicate-release heuristic. No
// reliable structural markup exists in submitted documents, so the detector
// adds up independent weak signals instead of trusting any single one.
const (
	weightSeparator  = 1
	weightContacts   = 1
	weightHeadings   = 1
	weightDatelines  = 2
	weightLeadParas  = 2
	hardRejectScore  = 4
	softWarnScore    = 2
	minSecondSection = 900

	leadParaMin = 100
	leadParaMax = 450
)

var (
	// A line consisting of repeated dashes, asterisks or em-dashes, or an
	// explicit end-of-release marker.
	separatorLine = regexp.MustCompile(`(?mi)^\s*(?:-{3,}|—{3,}|\*{3,}|EINDE PERSBERICHT)\s*$`)

	pressContact = regexp.MustCompile(`(?i)\b(?:perscontact|mediacontact|voor de pers|noot voor de redactie)\b`)

	releaseHeading = regexp.MustCompile(`(?i)\bpers(?:bericht|verklaring)\b`)

	// <Plaats>, <dag> <maandnaam> <jaar>
	dateline = regexp.MustCompile(`\b\p{Lu}[\p{L}.'-]+(?:[ -]\p{Lu}[\p{L}.'-]+)*,\s+\d{1,2}\s+(?i:januari|februari|maart|april|mei|juni|juli|augustus|september|oktober|november|december)\s+\d{4}\b`)

	terminalPunct = regexp.MustCompile(`[.!?]`)
)

// DuplicateResult is the outcome of scoring one normalized document. It is a
// pure function of the input text.
type DuplicateResult struct {
	Score               int
	SecondSectionLength int
	Reasons             []string
}

// HardReject reports whether the two-threshold policy rejects the document
// outright: a high score alone is not enough, the second candidate section
// must also be long enough to be a release of its own. This avoids hard
// rejects on long single releases that merely carry one strong marker.
func (r DuplicateResult) HardReject() bool {
	return r.Score >= hardRejectScore && r.SecondSectionLength >= minSecondSection
}

// SoftWarn reports whether the score lands in the warn-only band.
func (r DuplicateResult) SoftWarn() bool {
	return !r.HardReject() && r.Score >= softWarnScore && r.Score < hardRejectScore
}

// DetectDuplicate scores paragraph-preserving text for signs that it contains
// more than one press release.
func DetectDuplicate(text string) DuplicateResult {
	var res DuplicateResult

	if separatorLine.MatchString(text) {
		res.Score += weightSeparator
		res.Reasons = append(res.Reasons, "harde scheidingsregel gevonden")
	}
	if len(pressContact.FindAllStringIndex(text, -1)) >= 2 {
		res.Score += weightContacts
		res.Reasons = append(res.Reasons, "perscontact-frase komt meermaals voor")
	}
	if len(releaseHeading.FindAllStringIndex(text, -1)) >= 2 {
		res.Score += weightHeadings
		res.Reasons = append(res.Reasons, "kopregel 'persbericht' komt meermaals voor")
	}

	datelines := dateline.FindAllStringIndex(text, -1)
	if len(datelines) >= 2 {
		res.Score += weightDatelines
		res.Reasons = append(res.Reasons, "meerdere datelines gevonden")
	}

	if countLeadParagraphs(text) >= 3 {
		res.Score += weightLeadParas
		res.Reasons = append(res.Reasons, "meerdere intro-achtige alinea's gevonden")
	}

	res.SecondSectionLength = secondSectionLength(text, datelines)
	return res
}

// countLeadParagraphs counts paragraphs that look like a news lead: between
// leadParaMin and leadParaMax normalized characters, with terminal
// punctuation.
func countLeadParagraphs(text string) int {
	n := 0
	for _, p := range paragraphs(text) {
		l := CharCount(p)
		if l >= leadParaMin && l <= leadParaMax && terminalPunct.MatchString(p) {
			n++
		}
	}
	return n
}

// secondSectionLength estimates how long the second candidate release is. The
// document is split on the hard separator when one exists, otherwise at the
// second dateline occurrence.
func secondSectionLength(text string, datelines [][]int) int {
	if parts := separatorLine.Split(text, -1); len(parts) >= 2 {
		second := strings.TrimSpace(parts[1])
		if second != "" {
			return CharCount(second)
		}
	}
	if len(datelines) >= 2 {
		return CharCount(text[datelines[1][0]:])
	}
	return 0
}
