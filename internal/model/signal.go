package model

import "fmt"

// Signal levels.
const (
	LevelError   = "error"
	LevelWarning = "warning"
	LevelInfo    = "info"
)

// Signal is a coded, severity-tagged diagnostic surfaced to the editor.
// Signals are immutable once created; pipelines only append them to a list.
type Signal struct {
	Code    string `json:"code"`
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Signal codes. The set is closed: every code that can cross the API
// boundary is listed here with a fixed level and B1-level Dutch message.
const (
	CodeFileTooLarge     = "E001"
	CodeUnreadableFile   = "E002"
	CodeSparseExtraction = "E003"
	CodeTextTooShort     = "E004"
	CodeTimeout          = "E005"
	CodeFiveWMissing     = "E006"
	CodeMultipleReleases = "E007"

	CodeWhyMissing       = "W001"
	CodeHowMissing       = "W002"
	CodeNameMismatch     = "W003"
	CodeStrongClaim      = "W004"
	CodeHeadlineTooShort = "W005"
	CodeHeadlineTooLong  = "W006"
	CodeStyleDeviation   = "W007"
	CodeRelativeDate     = "W008"
	CodeContactInfo      = "W009"
	CodeTechnicalIssue   = "W010"
	CodeWhoMissing       = "W011"
	CodeWhatMissing      = "W012"
	CodeWhereMissing     = "W013"
	CodeWhenMissing      = "W014"
	CodeSoftDuplicate    = "W015"
)

type signalSpec struct {
	level   string
	message string
}

// catalog maps every known code to its fixed level and message text.
var catalog = map[string]signalSpec{
	CodeFileTooLarge:     {LevelError, "Bestand te groot (>10MB)."},
	CodeUnreadableFile:   {LevelError, "Onleesbaar bestand. Upload een ander bestand."},
	CodeSparseExtraction: {LevelError, "Te weinig bruikbare brontekst. Upload een ander bestand."},
	CodeTextTooShort:     {LevelError, "Te weinig brontekst om nieuwsbericht te genereren."},
	CodeTimeout:          {LevelError, "Time-out: de verwerking duurde te lang. Probeer het opnieuw."},
	CodeFiveWMissing:     {LevelError, "Brontekst voldoet niet aan minimumeisen: 5W's+H."},
	CodeMultipleReleases: {LevelError, "Meerdere persberichten in één document gevonden. Lever per document één persbericht aan."},

	CodeWhyMissing:       {LevelWarning, "Waarom ontbreekt of is onduidelijk."},
	CodeHowMissing:       {LevelInfo, "Hoe ontbreekt of is onduidelijk."},
	CodeNameMismatch:     {LevelWarning, "Naam komt in meerdere spellingen voor. Controleer de juiste schrijfwijze."},
	CodeStrongClaim:      {LevelWarning, "Sterke claim aangetroffen. Controleer neutraliteit."},
	CodeHeadlineTooShort: {LevelWarning, "Kop is korter dan 100 tekens."},
	CodeHeadlineTooLong:  {LevelWarning, "Kop is langer dan 150 tekens."},
	CodeStyleDeviation:   {LevelWarning, "Tekst wijkt af van de stijlgids."},
	CodeRelativeDate:     {LevelWarning, "Extern verifiëren: tijdsaanduiding is relatief (bijv. gisteren/vandaag). Maak dit absoluut."},
	CodeContactInfo:      {LevelWarning, "Contactinformatie gevonden. Neem dit niet over in publicatie; zet in apart contactblok."},
	CodeTechnicalIssue:   {LevelWarning, "Technisch probleem bij herschrijven. Probeer opnieuw of bewerk het document handmatig."},
	CodeWhoMissing:       {LevelWarning, "Wie ontbreekt of is onduidelijk."},
	CodeWhatMissing:      {LevelWarning, "Wat ontbreekt of is onduidelijk."},
	CodeWhereMissing:     {LevelWarning, "Waar ontbreekt of is onduidelijk."},
	CodeWhenMissing:      {LevelWarning, "Wanneer ontbreekt of is onduidelijk."},
	CodeSoftDuplicate:    {LevelWarning, "Mogelijk tweede persbericht in document gevonden. Controleer of het document echt maar één persbericht bevat."},
}

// NewSignal builds the Signal for a known code. It panics on an unknown code
// so that a typo in a validator is caught by the tests, not in production.
func NewSignal(code string) Signal {
	spec, ok := catalog[code]
	if !ok {
		panic(fmt.Sprintf("model: unknown signal code %q", code))
	}
	return Signal{Code: code, Level: spec.level, Message: spec.message}
}

// NewSignalf builds a Signal for a known code with extra detail appended to
// the catalog message. Detail must never contain document text.
func NewSignalf(code, format string, args ...any) Signal {
	s := NewSignal(code)
	s.Message = s.Message + " " + fmt.Sprintf(format, args...)
	return s
}

// KnownCodes returns all codes in the catalog. Used by tests to verify the
// enumeration is closed and complete.
func KnownCodes() []string {
	codes := make([]string, 0, len(catalog))
	for c := range catalog {
		codes = append(codes, c)
	}
	return codes
}

// IsError reports whether the signal is a hard error.
func (s Signal) IsError() bool { return s.Level == LevelError }
