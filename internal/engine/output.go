package engine

import (
	"strings"

	"github.com/vianieuws/perstool/internal/model"
)

const defaultBron = "Bron: aangeleverd persbericht"

// assembleOutput renders the plain-text deliverable: headline, intro, body,
// source attribution, the SIGNALEN list, and when present a
// not-for-publication contact block. Section order is fixed.
func assembleOutput(doc *model.GeneratedDocument, signals []model.Signal, contactFallback []string) string {
	bron := strings.TrimSpace(doc.Bron)
	if bron == "" {
		bron = defaultBron
	}

	var b strings.Builder
	b.WriteString(doc.Kop)
	b.WriteString("\n\n")
	b.WriteString(doc.Intro)
	b.WriteString("\n\n")
	b.WriteString(doc.Body)
	b.WriteString("\n\n")
	b.WriteString(bron)
	b.WriteString("\n\n")

	b.WriteString("SIGNALEN\n")
	if len(signals) == 0 {
		b.WriteString("- (geen signalen)\n")
	}
	for _, s := range signals {
		b.WriteString("- ")
		b.WriteString(s.Code)
		b.WriteString(": ")
		b.WriteString(s.Message)
		b.WriteString("\n")
	}

	if block := contactBlock(doc, contactFallback); block != "" {
		b.WriteString("\n")
		b.WriteString("CONTACT (niet voor publicatie):\n")
		b.WriteString(block)
		b.WriteString("\n")
	}
	return b.String()
}

// contactBlock prefers the contact block supplied by the rewrite; when the
// rewrite did not isolate one, the contact details found in the source serve
// as fallback.
func contactBlock(doc *model.GeneratedDocument, fallback []string) string {
	if c := strings.TrimSpace(doc.Contact); c != "" {
		return c
	}
	return strings.Join(fallback, "\n")
}
