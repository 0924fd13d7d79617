package extract

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupported(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"bericht.txt", true},
		{"bericht.TXT", true},
		{"bericht.docx", true},
		{"bericht.pdf", true},
		{"bericht.doc", false},
		{"bericht.html", false},
		{"bericht", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Supported(tt.filename), tt.filename)
	}
}

func TestTextUnsupportedExtension(t *testing.T) {
	_, err := Text("bericht.exe", []byte("x"))
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestTextPlainUTF8(t *testing.T) {
	got, err := Text("bericht.txt", []byte("Een café in de binnenstad."))
	require.NoError(t, err)
	assert.Equal(t, "Een café in de binnenstad.", got)
}

func TestTextPlainLatin1Fallback(t *testing.T) {
	// 0xE9 is é in Latin-1 and invalid as standalone UTF-8
	got, err := Text("bericht.txt", []byte{'c', 'a', 'f', 0xE9})
	require.NoError(t, err)
	assert.Equal(t, "café", got)
}

func TestTextNFCNormalization(t *testing.T) {
	// e + combining acute accent becomes the precomposed é
	got, err := Text("bericht.txt", []byte("café"))
	require.NoError(t, err)
	assert.Equal(t, "café", got)
	assert.Len(t, []rune(got), 4)
}

// buildDocx assembles a minimal Word container in memory.
func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	fw, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = fw.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

const sampleDocumentXML = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Eerste alinea</w:t></w:r><w:r><w:t xml:space="preserve"> met twee runs.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Kolom</w:t></w:r><w:r><w:tab/></w:r><w:r><w:t>twee</w:t></w:r></w:p>
    <w:p></w:p>
    <w:p><w:r><w:t>Laatste alinea.</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestTextDocx(t *testing.T) {
	data := buildDocx(t, sampleDocumentXML)

	got, err := Text("bericht.docx", data)
	require.NoError(t, err)

	assert.Equal(t, "Eerste alinea met twee runs.\n\nKolom twee\n\nLaatste alinea.", got)
}

func TestTextDocxNotAZip(t *testing.T) {
	_, err := Text("bericht.docx", []byte("geen zip"))
	assert.Error(t, err)
}

func TestTextDocxWithoutDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	fw, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = fw.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = Text("bericht.docx", buf.Bytes())
	assert.Error(t, err)
}

func TestTextPdfRejectsGarbage(t *testing.T) {
	_, err := Text("bericht.pdf", []byte("geen pdf"))
	assert.Error(t, err)
}
