package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vianieuws/perstool/internal/model"
)

func TestAssembleOutput(t *testing.T) {
	doc := &model.GeneratedDocument{
		Kop:   "Gemeente opent wijkcentrum",
		Intro: "De gemeente opent een wijkcentrum.",
		Body:  "Het centrum opent in het voorjaar.",
		Bron:  "Bron: persbericht gemeente",
	}
	signals := []model.Signal{model.NewSignal(model.CodeWhyMissing)}

	out := assembleOutput(doc, signals, nil)

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 9)
	assert.Equal(t, "Gemeente opent wijkcentrum", lines[0])
	assert.Contains(t, out, "Bron: persbericht gemeente")
	assert.Contains(t, out, "SIGNALEN\n- W001: ")
	assert.NotContains(t, out, "CONTACT")
}

func TestAssembleOutputDefaultsBron(t *testing.T) {
	doc := &model.GeneratedDocument{Kop: "k", Intro: "i", Body: "b"}
	out := assembleOutput(doc, nil, nil)

	assert.Contains(t, out, "Bron: aangeleverd persbericht")
	assert.Contains(t, out, "- (geen signalen)")
}

func TestAssembleOutputContactBlockPrefersModelBlock(t *testing.T) {
	doc := &model.GeneratedDocument{Kop: "k", Intro: "i", Body: "b", Contact: "Jan Jansen, pers@voorbeeld.nl"}
	out := assembleOutput(doc, nil, []string{"ander@voorbeeld.nl"})

	assert.Contains(t, out, "CONTACT (niet voor publicatie):\nJan Jansen, pers@voorbeeld.nl")
	assert.NotContains(t, out, "ander@voorbeeld.nl")
}

func TestAssembleOutputContactBlockFallsBackToDetected(t *testing.T) {
	doc := &model.GeneratedDocument{Kop: "k", Intro: "i", Body: "b"}
	out := assembleOutput(doc, nil, []string{"pers@voorbeeld.nl", "06-12345678"})

	assert.Contains(t, out, "CONTACT (niet voor publicatie):\npers@voorbeeld.nl\n06-12345678")
}
