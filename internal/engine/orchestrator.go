package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vianieuws/perstool/internal/analyze"
	"github.com/vianieuws/perstool/internal/model"
)

// Character-count floors for the pre-checks.
const (
	minExtractedChars = 800
	minSourceChars    = 950
)

// Budget describes the wall-clock budget of one request. The orchestrator
// never starts a rewrite call it cannot bound: when less than MinRemaining is
// left after subtracting the safety margin, the request fails with a timeout
// before any call is made.
type Budget struct {
	Total        time.Duration
	SafetyMargin time.Duration
	MinRemaining time.Duration
	CallCap      time.Duration
}

// DefaultBudget returns the production budget: 360s total, 15s margin, 5s
// minimum, calls capped at 330s.
func DefaultBudget() Budget {
	return Budget{
		Total:        360 * time.Second,
		SafetyMargin: 15 * time.Second,
		MinRemaining: 5 * time.Second,
		CallCap:      330 * time.Second,
	}
}

// Orchestrator sequences normalization, pre-checks, the bounded rewrite call,
// post-checks and output assembly. Every failure maps to a stable signal
// code; nothing is retried.
type Orchestrator struct {
	model  ModelClient
	budget Budget
	logger *zap.Logger
	now    func() time.Time
}

// NewOrchestrator wires an orchestrator with its single external capability.
func NewOrchestrator(mc ModelClient, budget Budget, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{model: mc, budget: budget, logger: logger, now: time.Now}
}

// Request is one document run. Started anchors the budget computation and is
// set by the caller when the upload arrived.
type Request struct {
	RawText string
	Started time.Time
}

// Process runs the full state machine over one request. The returned result
// carries the ordered signal list; on success OutputText holds the assembled
// plain-text deliverable.
func (o *Orchestrator) Process(ctx context.Context, req Request) model.ProcessResult {
	log := newTechLog(o.now)

	// received → normalized
	text := analyze.NormalizeParagraphs(req.RawText)
	flatLen := analyze.CharCount(req.RawText)

	var signals []model.Signal
	reject := func(code, detail string) model.ProcessResult {
		log.add(code, detail)
		signals = append(signals, model.NewSignal(code))
		o.logger.Info("document rejected", zap.String("code", code), zap.Int("chars", flatLen))
		return model.ProcessResult{OK: false, Signals: signals, CleanedLength: flatLen, TechLog: log.String()}
	}

	// normalized → pre_checked
	if flatLen < minExtractedChars {
		return reject(model.CodeSparseExtraction, fmt.Sprintf("chars=%d", flatLen))
	}
	if flatLen < minSourceChars {
		return reject(model.CodeTextTooShort, fmt.Sprintf("chars=%d", flatLen))
	}

	dup := analyze.DetectDuplicate(text)
	if dup.HardReject() {
		return reject(model.CodeMultipleReleases,
			fmt.Sprintf("score=%d second_section=%d", dup.Score, dup.SecondSectionLength))
	}
	if dup.SoftWarn() {
		signals = append(signals, model.NewSignal(model.CodeSoftDuplicate))
		log.add(model.CodeSoftDuplicate, fmt.Sprintf("score=%d", dup.Score))
	}

	// Lexical 5W scan on the source: hopeless documents are rejected here so
	// that no external call is wasted on them.
	presence := analyze.ScanFiveW(text)
	if presence.CoreMissing() >= 2 {
		return reject(model.CodeFiveWMissing, fmt.Sprintf("core_missing=%d", presence.CoreMissing()))
	}

	// pre_checked → rewriting
	elapsed := o.now().Sub(req.Started)
	remaining := o.budget.Total - elapsed - o.budget.SafetyMargin
	if remaining <= o.budget.MinRemaining {
		return reject(model.CodeTimeout, fmt.Sprintf("elapsed=%s", elapsed.Round(time.Millisecond)))
	}
	if remaining > o.budget.CallCap {
		remaining = o.budget.CallCap
	}

	doc, rewriteSignal := o.rewrite(ctx, text, remaining, log)
	if doc == nil {
		// Only the timeout path is terminal here; any other failure fell back
		// to the deterministic restructure.
		signals = append(signals, model.NewSignal(model.CodeTimeout))
		return model.ProcessResult{OK: false, Signals: signals, CleanedLength: flatLen, TechLog: log.String()}
	}
	if rewriteSignal != nil {
		signals = append(signals, *rewriteSignal)
	}

	// rewriting → post_checked. Emission order is fixed: detector, 5W,
	// strong claims, style, name consistency, lengths, contact.
	signals = append(signals, analyze.ValidateFiveW(*doc)...)
	if code := hardError(signals); code != "" {
		log.add(code, "post_5w")
		o.logger.Info("document rejected after rewrite", zap.String("code", code))
		return model.ProcessResult{OK: false, Signals: signals, CleanedLength: flatLen, TechLog: log.String()}
	}

	if terms := analyze.FindStrongClaims(text); len(terms) > 0 {
		signals = append(signals, model.NewSignalf(model.CodeStrongClaim, "Gevonden: %s.", strings.Join(terms, ", ")))
	}

	generated := doc.Kop + "\n" + doc.Intro + "\n" + doc.Body
	signals = append(signals, analyze.CheckStyle(generated)...)
	signals = append(signals, analyze.CheckNameConsistency(text, generated)...)

	signals = append(signals, analyze.ValidateLengths(*doc, flatLen)...)
	if code := hardError(signals); code != "" {
		// The generated document is discarded; only signals travel back.
		log.add(code, "post_length")
		o.logger.Info("document rejected after rewrite", zap.String("code", code))
		return model.ProcessResult{OK: false, Signals: signals, CleanedLength: flatLen, TechLog: log.String()}
	}

	contacts := analyze.FindContactInfo(text)
	if len(contacts) > 0 {
		signals = append(signals, model.NewSignal(model.CodeContactInfo))
	}

	// post_checked → done
	log.add("OK", "processed")
	return model.ProcessResult{
		OK:            true,
		Signals:       signals,
		OutputText:    assembleOutput(doc, signals, contacts),
		CleanedLength: flatLen,
		TechLog:       log.String(),
	}
}

// rewrite performs the bounded external call. A deadline overrun returns
// (nil, nil): terminal timeout. Any other failure degrades to the
// deterministic fallback and reports the technical-issue warning.
func (o *Orchestrator) rewrite(ctx context.Context, text string, deadline time.Duration, log *techLog) (*model.GeneratedDocument, *model.Signal) {
	input := analyze.Neutralize(text)

	callCtx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	raw, err := o.model.Complete(callCtx, buildRewritePrompt(input))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || callCtx.Err() != nil {
			log.add(model.CodeTimeout, "rewrite deadline exceeded")
			return nil, nil
		}
		o.logger.Warn("rewrite failed, falling back", zap.Error(err))
		log.add(model.CodeTechnicalIssue, err.Error())
		s := model.NewSignal(model.CodeTechnicalIssue)
		return fallbackRewrite(input), &s
	}

	doc, err := parseGeneratedDocument(raw)
	if err != nil {
		o.logger.Warn("rewrite response unusable, falling back", zap.Error(err))
		log.add(model.CodeTechnicalIssue, err.Error())
		s := model.NewSignal(model.CodeTechnicalIssue)
		return fallbackRewrite(input), &s
	}
	return doc, nil
}

// hardError returns the code of the first error-level signal, or "".
func hardError(signals []model.Signal) string {
	for _, s := range signals {
		if s.IsError() {
			return s.Code
		}
	}
	return ""
}

// techLog accumulates tab-separated diagnostic lines. Detail strings are
// truncated and must never contain document text.
type techLog struct {
	now   func() time.Time
	lines []string
}

func newTechLog(now func() time.Time) *techLog {
	return &techLog{now: now}
}

func (l *techLog) add(code, detail string) {
	l.lines = append(l.lines, fmt.Sprintf("%d\t%s\t%s", l.now().Unix(), code, truncate(detail, 200)))
}

func (l *techLog) String() string {
	return strings.Join(l.lines, "\n")
}
