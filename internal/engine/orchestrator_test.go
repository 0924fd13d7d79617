package engine

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vianieuws/perstool/internal/model"
)

// happyText is a well-formed source: all six lead questions answered, no
// duplicate markers, no claim language, length in the XS band.
func happyText() string {
	sentence := "De gemeente opent op donderdag 12 maart 2026 een nieuw wijkcentrum " +
		"in de binnenstad, omdat bewoners al jaren vragen om een eigen plek voor " +
		"ontmoeting, en doet dat door een leegstaand schoolgebouw stap voor stap te verbouwen. "
	return strings.TrimSpace(strings.Repeat(sentence, 5))
}

// textOfLength pads happy content to an exact normalized character count.
func textOfLength(n int) string {
	s := "De gemeente opent op donderdag 12 maart 2026 een nieuw buurtcentrum " +
		"in de stad, omdat bewoners daarom vroegen, en doet dat door te verbouwen."
	for utf8.RuneCountInString(s) < n {
		s += " Meer tekst over het buurtcentrum en de plannen van de gemeente."
	}
	r := []rune(s)[:n]
	if r[n-1] == ' ' {
		r[n-1] = 'x'
	}
	return string(r)
}

func newTestOrchestrator(t *testing.T, mc ModelClient) *Orchestrator {
	t.Helper()
	return NewOrchestrator(mc, DefaultBudget(), zap.NewNop())
}

type fakeClient struct {
	response string
	err      error
}

func (f *fakeClient) Complete(context.Context, string) (string, error) {
	return f.response, f.err
}

func hasCode(signals []model.Signal, code string) bool {
	for _, s := range signals {
		if s.Code == code {
			return true
		}
	}
	return false
}

func TestProcessHappyPath(t *testing.T) {
	o := newTestOrchestrator(t, &StubModelClient{})

	res := o.Process(context.Background(), Request{RawText: happyText(), Started: time.Now()})

	require.True(t, res.OK, "signals: %v", res.Signals)
	assert.Empty(t, res.ErrorCode())
	assert.NotEmpty(t, res.OutputText)
	assert.Contains(t, res.OutputText, "SIGNALEN")
	assert.Contains(t, res.OutputText, "Bron: aangeleverd persbericht")
	assert.Greater(t, res.CleanedLength, 950)
	assert.NotEmpty(t, res.TechLog)
}

func TestProcessOutputSectionOrder(t *testing.T) {
	o := newTestOrchestrator(t, &StubModelClient{})

	res := o.Process(context.Background(), Request{RawText: happyText(), Started: time.Now()})
	require.True(t, res.OK)

	kopIdx := strings.Index(res.OutputText, "Gemeente opent")
	bronIdx := strings.Index(res.OutputText, "Bron:")
	sigIdx := strings.Index(res.OutputText, "SIGNALEN")
	require.GreaterOrEqual(t, kopIdx, 0)
	assert.Less(t, kopIdx, bronIdx)
	assert.Less(t, bronIdx, sigIdx)
}

func TestProcessRejectsSparseExtraction(t *testing.T) {
	o := newTestOrchestrator(t, &StubModelClient{})

	res := o.Process(context.Background(), Request{RawText: textOfLength(799), Started: time.Now()})

	assert.False(t, res.OK)
	assert.Equal(t, model.CodeSparseExtraction, res.ErrorCode())
	assert.Empty(t, res.OutputText)
}

func TestProcessSourceLengthBoundaries(t *testing.T) {
	o := newTestOrchestrator(t, &StubModelClient{})

	// 949 normalized characters is too short, 950 is not
	res := o.Process(context.Background(), Request{RawText: textOfLength(949), Started: time.Now()})
	assert.False(t, res.OK)
	assert.Equal(t, model.CodeTextTooShort, res.ErrorCode())

	res = o.Process(context.Background(), Request{RawText: textOfLength(950), Started: time.Now()})
	assert.False(t, hasCode(res.Signals, model.CodeTextTooShort))
	assert.True(t, res.OK, "signals: %v", res.Signals)
}

func TestProcessRejectsMultipleReleases(t *testing.T) {
	o := newTestOrchestrator(t, &StubModelClient{})

	second := strings.TrimSpace(strings.Repeat("De tweede organisatie kondigt een eigen plan aan en licht dat toe. ", 15))
	raw := "PERSBERICHT\n\nAmsterdam, 12 maart 2026\n\n" + happyText() +
		"\n\n-----\n\nPERSBERICHT\n\nRotterdam, 13 maart 2026\n\n" + second

	res := o.Process(context.Background(), Request{RawText: raw, Started: time.Now()})

	assert.False(t, res.OK)
	assert.Equal(t, model.CodeMultipleReleases, res.ErrorCode())
}

func TestProcessRejectsMissingFiveW(t *testing.T) {
	o := newTestOrchestrator(t, &StubModelClient{})

	// long enough, but answers none of the lead questions
	filler := strings.TrimSpace(strings.Repeat("lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod tempor. ", 14))

	res := o.Process(context.Background(), Request{RawText: filler, Started: time.Now()})

	assert.False(t, res.OK)
	assert.Equal(t, model.CodeFiveWMissing, res.ErrorCode())
}

func TestProcessBudgetExhaustedBeforeCall(t *testing.T) {
	calls := 0
	mc := completeFunc(func(context.Context, string) (string, error) {
		calls++
		return "", nil
	})
	o := NewOrchestrator(mc, DefaultBudget(), zap.NewNop())
	t0 := time.Now()
	o.now = func() time.Time { return t0 }

	// 341s elapsed leaves 4s after the 15s margin, under the 5s minimum
	res := o.Process(context.Background(), Request{RawText: happyText(), Started: t0.Add(-341 * time.Second)})

	assert.False(t, res.OK)
	assert.Equal(t, model.CodeTimeout, res.ErrorCode())
	assert.Zero(t, calls, "rewrite must not be called without budget")
}

func TestProcessTimeoutDuringCallIsTerminal(t *testing.T) {
	o := newTestOrchestrator(t, &fakeClient{err: context.DeadlineExceeded})

	res := o.Process(context.Background(), Request{RawText: happyText(), Started: time.Now()})

	assert.False(t, res.OK)
	assert.Equal(t, model.CodeTimeout, res.ErrorCode())
	assert.Empty(t, res.OutputText)
	assert.False(t, hasCode(res.Signals, model.CodeTechnicalIssue))
}

func TestProcessFallsBackOnClientError(t *testing.T) {
	o := newTestOrchestrator(t, &fakeClient{err: errors.New("upstream unavailable")})

	res := o.Process(context.Background(), Request{RawText: happyText(), Started: time.Now()})

	require.True(t, res.OK, "signals: %v", res.Signals)
	assert.True(t, hasCode(res.Signals, model.CodeTechnicalIssue))
	assert.NotEmpty(t, res.OutputText)
}

func TestProcessFallsBackOnUnparsableResponse(t *testing.T) {
	o := newTestOrchestrator(t, &fakeClient{response: "sorry, ik kan dit niet"})

	res := o.Process(context.Background(), Request{RawText: happyText(), Started: time.Now()})

	require.True(t, res.OK, "signals: %v", res.Signals)
	assert.True(t, hasCode(res.Signals, model.CodeTechnicalIssue))
}

func TestProcessWarnsOnStrongClaimsAndContact(t *testing.T) {
	o := newTestOrchestrator(t, &StubModelClient{})

	raw := happyText() + " Het centrum noemt zichzelf uniek. Perscontact: pers@voorbeeld.nl of 06-12345678."
	res := o.Process(context.Background(), Request{RawText: raw, Started: time.Now()})

	require.True(t, res.OK, "signals: %v", res.Signals)
	assert.True(t, hasCode(res.Signals, model.CodeStrongClaim))
	assert.True(t, hasCode(res.Signals, model.CodeContactInfo))
	assert.Contains(t, res.OutputText, "CONTACT (niet voor publicatie):")
	assert.Contains(t, res.OutputText, "pers@voorbeeld.nl")
}

func TestProcessDeterministic(t *testing.T) {
	o := newTestOrchestrator(t, &StubModelClient{})
	req := Request{RawText: happyText(), Started: time.Now()}

	first := o.Process(context.Background(), req)
	second := o.Process(context.Background(), req)

	assert.Equal(t, first.OK, second.OK)
	assert.Equal(t, first.Signals, second.Signals)
	assert.Equal(t, first.OutputText, second.OutputText)
}

// completeFunc adapts a function to the ModelClient interface.
type completeFunc func(ctx context.Context, prompt string) (string, error)

func (f completeFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
