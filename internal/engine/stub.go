package engine

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/vianieuws/perstool/internal/model"
)

// StubModelClient returns a deterministic rewrite (for development and tests).
type StubModelClient struct{}

func (m *StubModelClient) Complete(_ context.Context, prompt string) (string, error) {
	body := strings.Repeat("De gemeente licht het besluit de komende weken verder toe tijdens een reeks inloopavonden in de wijk. ", 9)
	doc := model.GeneratedDocument{
		Kop:   "Gemeente opent nieuw wijkcentrum in het voorjaar en verwacht daarmee honderden bezoekers per week te kunnen ontvangen",
		Intro: "De gemeente opent in het voorjaar een nieuw wijkcentrum. Het gebouw biedt ruimte aan verenigingen, cursussen en een bibliotheekpunt. Volgens de gemeente kunnen er honderden bezoekers per week terecht.",
		Body:  strings.TrimSpace(body),
		Bron:  "Bron: aangeleverd persbericht",
		VijfW: model.FiveW{
			Wie:     "de gemeente",
			Wat:     "opent een nieuw wijkcentrum",
			Waar:    "in de wijk",
			Wanneer: "in het voorjaar van 2026",
			Waarom:  "om verenigingen en bewoners ruimte te bieden",
			Hoe:     "door een bestaand pand te verbouwen",
		},
	}
	b, _ := json.Marshal(doc)
	return string(b), nil
}
