package engine

import (
	"regexp"
	"strings"

	"github.com/vianieuws/perstool/internal/analyze"
	"github.com/vianieuws/perstool/internal/model"
)

var sentenceEnd = regexp.MustCompile(`([.!?])\s+`)

// fallbackRewrite builds a deterministic news concept when the external
// rewrite is unavailable or returns garbage: first paragraph feeds the
// headline, the next sentences form the intro, the rest becomes the body.
// The 5W extraction degrades to presence markers from the lexical scan so
// that the structural post-check judges the same facts the pre-check did.
func fallbackRewrite(text string) *model.GeneratedDocument {
	paras := splitParagraphs(text)

	var kop, intro, body string
	if len(paras) > 0 {
		kop = firstSentence(paras[0])
		if r := []rune(kop); len(r) > 150 {
			kop = strings.TrimSpace(string(r[:147])) + "…"
		}
	}

	blob := strings.Join(paras, " ")
	sents := splitSentences(blob)
	if len(sents) > 1 {
		intro = strings.TrimSpace(strings.Join(sents[1:min(3, len(sents))], " "))
	}
	if intro == "" && len(sents) > 0 {
		intro = sents[0]
	}
	if len(paras) > 1 {
		body = strings.Join(paras[1:], "\n\n")
	} else {
		body = text
	}

	presence := analyze.ScanFiveW(text)
	mark := func(ok bool) string {
		if ok {
			return "zie brontekst"
		}
		return ""
	}

	return &model.GeneratedDocument{
		Kop:   kop,
		Intro: intro,
		Body:  strings.TrimSpace(body),
		VijfW: model.FiveW{
			Wie:     mark(presence.Wie),
			Wat:     mark(presence.Wat),
			Waar:    mark(presence.Waar),
			Wanneer: mark(presence.Wanneer),
			Waarom:  mark(presence.Waarom),
			Hoe:     mark(presence.Hoe),
		},
	}
}

func splitParagraphs(text string) []string {
	parts := strings.Split(text, "\n\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func splitSentences(s string) []string {
	marked := sentenceEnd.ReplaceAllString(s, "$1\x00")
	parts := strings.Split(marked, "\x00")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func firstSentence(s string) string {
	sents := splitSentences(s)
	if len(sents) == 0 {
		return strings.TrimSpace(s)
	}
	// Headlines carry no terminal punctuation.
	return strings.TrimRight(sents[0], ".!?")
}
