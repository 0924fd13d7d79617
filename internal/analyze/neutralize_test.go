package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeutralize(t *testing.T) {
	in := "Als marktleider presenteert het bedrijf een revolutionair en uniek product. De Wereldleider is trots."
	got := Neutralize(in)

	assert.Equal(t, "Als grote speler presenteert het bedrijf een nieuw en bijzonder product. De grote speler is trots.", got)
}

func TestNeutralizeLeavesNeutralTextAlone(t *testing.T) {
	in := "De gemeente opent een nieuw wijkcentrum in de binnenstad."
	assert.Equal(t, in, Neutralize(in))
}

func TestNeutralizeWordBounded(t *testing.T) {
	// substrings inside longer words stay untouched
	in := "De marktleiders vergaderen over unieke kansen."
	assert.Equal(t, in, Neutralize(in))
}
