package model

// FiveW holds the structured who/what/where/when/why/how extraction that the
// rewrite capability returns alongside the article text. Each field is free
// text; an empty string means the model could not locate the answer.
type FiveW struct {
	Wie     string `json:"wie"`
	Wat     string `json:"wat"`
	Waar    string `json:"waar"`
	Wanneer string `json:"wanneer"`
	Waarom  string `json:"waarom"`
	Hoe     string `json:"hoe"`
}

// CoreMissing returns how many of the core fields (wie/wat/waar/wanneer/
// waarom) are empty. Only "hoe" sits outside the count.
func (f FiveW) CoreMissing() int {
	n := 0
	for _, v := range []string{f.Wie, f.Wat, f.Waar, f.Wanneer, f.Waarom} {
		if v == "" {
			n++
		}
	}
	return n
}

// GeneratedDocument is the result of one successful rewrite call. It is
// produced once and never mutated; post-rewrite validators and output
// assembly only read from it.
type GeneratedDocument struct {
	Kop     string   `json:"kop"`
	Intro   string   `json:"intro"`
	Body    string   `json:"body"`
	Bron    string   `json:"bron"`
	VijfW   FiveW    `json:"vijfw"`
	Contact string   `json:"contactblok,omitempty"`
	Labels  []string `json:"labels,omitempty"`
}

// ProcessResult is what one orchestration run yields: the ordered signal
// list, and on success the assembled output text. CleanedLength carries the
// counting-normalized character count for diagnostics; the cleaned text
// itself is never retained beyond the request.
type ProcessResult struct {
	OK            bool     `json:"ok"`
	Signals       []Signal `json:"signals"`
	OutputText    string   `json:"output_txt,omitempty"`
	CleanedLength int      `json:"cleaned_length"`
	TechLog       string   `json:"tech_log,omitempty"`
}

// ErrorCode returns the code of the first hard error, or "" when none fired.
func (r ProcessResult) ErrorCode() string {
	for _, s := range r.Signals {
		if s.IsError() {
			return s.Code
		}
	}
	return ""
}
