// Package extract turns uploaded files into raw text. Supported formats:
//
//   - .txt  — UTF-8, with a Latin-1 fallback for legacy exports
//   - .docx — Word container (archive/zip → word/document.xml)
//   - .pdf  — PDF text extraction via ledongthuc/pdf
//
// Extractors return plain text; whitespace normalization happens downstream.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ErrUnsupported is returned for file extensions outside the accepted set.
var ErrUnsupported = fmt.Errorf("extract: unsupported file type")

// allowedExtensions is the closed set of accepted upload formats.
var allowedExtensions = map[string]bool{
	".txt":  true,
	".docx": true,
	".pdf":  true,
}

// Supported reports whether the filename has an accepted extension.
func Supported(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Text extracts raw text from uploaded file bytes based on the filename
// extension. The result is NFC-normalized so that character counts are
// stable across extractors.
func Text(filename string, data []byte) (string, error) {
	var (
		text string
		err  error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		text = plainText(data)
	case ".docx":
		text, err = docxText(data)
	case ".pdf":
		text, err = pdfText(data)
	default:
		return "", ErrUnsupported
	}
	if err != nil {
		return "", err
	}
	return norm.NFC.String(text), nil
}

// plainText decodes bytes as UTF-8, falling back to Latin-1 when the content
// is not valid UTF-8.
func plainText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}
