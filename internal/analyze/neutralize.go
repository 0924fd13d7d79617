package analyze

import "regexp"

// neutralReplacements tones down marketing vocabulary before the text goes to
// the rewrite call.
var neutralReplacements = []struct {
	pattern *regexp.Regexp
	repl    string
}{
	{regexp.MustCompile(`(?i)\bwereldleider\b`), "grote speler"},
	{regexp.MustCompile(`(?i)\bmarktleider\b`), "grote speler"},
	{regexp.MustCompile(`(?i)\binnovatief\b`), "nieuw"},
	{regexp.MustCompile(`(?i)\brevolutionair\b`), "nieuw"},
	{regexp.MustCompile(`(?i)\buniek\b`), "bijzonder"},
}

// Neutralize replaces promotional vocabulary with neutral wording. Applied to
// the rewrite input only; signal detection runs on the unmodified source.
func Neutralize(text string) string {
	out := text
	for _, r := range neutralReplacements {
		out = r.pattern.ReplaceAllString(out, r.repl)
	}
	return out
}
