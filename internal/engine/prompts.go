package engine

import (
	"fmt"
	"unicode/utf8"
)

// systemPrompt instructs the model to act as a news editor rewriting Dutch
// press releases to B1 level, returning strict JSON.
const systemPrompt = `Je bent een redacteur voor een regionale nieuwsredactie. ` +
	`Herschrijf persberichten naar een neutraal nieuwsconcept in journalistieke stijl op B1-niveau. ` +
	`Neem alleen controleerbare feiten uit de bron over. Verzin niets. ` +
	`Geef uitsluitend JSON terug, zonder extra tekst.`

// maxPromptRunes bounds how much source text goes into the prompt.
const maxPromptRunes = 12000

func buildRewritePrompt(source string) string {
	return fmt.Sprintf(`Herschrijf dit persbericht.

Eisen:
- kop: 100-150 tekens, zonder leestekens.
- intro: 200-220 tekens.
- body: neutraal, feitelijk, geen marketingtaal; houd de 5W's+H in stand.
- Gebruik absolute datums (bijv. '6 februari 2026') in plaats van 'vandaag' of 'morgen'.
- Neem geen contactgegevens over in de body; zet die in contactblok.
- vijfw: vul per veld het antwoord uit de tekst in, of een lege string als het ontbreekt.

Output ALLEEN geldige JSON met exact deze structuur (geen markdown, geen uitleg):
{"kop": "...", "intro": "...", "body": "...", "bron": "...",
 "vijfw": {"wie": "...", "wat": "...", "waar": "...", "wanneer": "...", "waarom": "...", "hoe": "..."},
 "contactblok": "", "labels": []}

PERSBERICHT:
%s`, truncateRunes(source, maxPromptRunes))
}

// truncateRunes truncates s to maxRunes runes (Unicode-safe).
func truncateRunes(s string, maxRunes int) string {
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxRunes]) + "\n... [ingekort]"
}
