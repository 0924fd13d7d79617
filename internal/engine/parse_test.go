package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validResponse = `{
	"kop": "Gemeente opent wijkcentrum",
	"intro": "De gemeente opent een wijkcentrum.",
	"body": "Het centrum opent in het voorjaar.",
	"bron": "Bron: aangeleverd persbericht",
	"vijfw": {"wie": "gemeente", "wat": "opent", "waar": "wijk", "wanneer": "2026", "waarom": "", "hoe": ""},
	"labels": ["wonen"]
}`

func TestParseGeneratedDocument(t *testing.T) {
	doc, err := parseGeneratedDocument(validResponse)

	require.NoError(t, err)
	assert.Equal(t, "Gemeente opent wijkcentrum", doc.Kop)
	assert.Equal(t, "gemeente", doc.VijfW.Wie)
	assert.Equal(t, []string{"wonen"}, doc.Labels)
}

func TestParseGeneratedDocumentStripsCodeFences(t *testing.T) {
	for _, wrap := range []string{"```json\n%s\n```", "```\n%s\n```", "  %s  "} {
		doc, err := parseGeneratedDocument(fmt.Sprintf(wrap, validResponse))
		require.NoError(t, err, "wrapper %q", wrap)
		assert.Equal(t, "Gemeente opent wijkcentrum", doc.Kop)
	}
}

func TestParseGeneratedDocumentRejectsGarbage(t *testing.T) {
	_, err := parseGeneratedDocument("sorry, ik kan dit niet")
	assert.Error(t, err)
}

func TestParseGeneratedDocumentRequiresCoreSections(t *testing.T) {
	_, err := parseGeneratedDocument(`{"kop": "Alleen een kop", "intro": "", "body": ""}`)
	assert.Error(t, err)

	_, err = parseGeneratedDocument(`{"kop": "  ", "intro": "x", "body": "y"}`)
	assert.Error(t, err)
}
