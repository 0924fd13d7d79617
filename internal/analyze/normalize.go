// Package analyze implements the heuristic document-analysis core: text
// normalization, duplicate-release detection and the content validators that
// produce editorial signals.
package analyze

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	lineBreaks   = regexp.MustCompile(`\r\n|\r|\n`)
	spaceRuns    = regexp.MustCompile(`\s+`)
	blankRuns    = regexp.MustCompile(`\n{3,}`)
	horizontalWS = regexp.MustCompile(`[ \t]{2,}`)
)

// Flatten canonicalizes text for counting and pattern matching: every line
// break becomes a space, whitespace runs collapse to one space, leading and
// trailing whitespace is trimmed. Every character-count decision in the
// system is made on this form.
func Flatten(s string) string {
	s = lineBreaks.ReplaceAllString(s, " ")
	s = spaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// CharCount returns the character count of the counting-normalized form,
// spaces included.
func CharCount(s string) int {
	return utf8.RuneCountInString(Flatten(s))
}

// NormalizeParagraphs prepares text for the rewrite call. Unlike Flatten it
// keeps paragraph structure: line endings are unified, trailing whitespace is
// stripped per line, runs of three or more newlines collapse to exactly one
// blank line, and only horizontal whitespace runs are collapsed.
func NormalizeParagraphs(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimRight(horizontalWS.ReplaceAllString(ln, " "), " \t")
	}
	s = strings.Join(lines, "\n")
	s = blankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// paragraphs splits paragraph-preserving text on blank lines.
func paragraphs(s string) []string {
	parts := strings.Split(s, "\n\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
