// Package pipeline sequences text extraction, deterministic classification
// and the optional LLM pass into a single resume record.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/talentsift/cv-distiller/internal/ai"
	"github.com/talentsift/cv-distiller/internal/candidate"
	"github.com/talentsift/cv-distiller/internal/document"
	"github.com/talentsift/cv-distiller/internal/extract"
	"github.com/talentsift/cv-distiller/internal/logger"
	"github.com/talentsift/cv-distiller/internal/vocabulary"
)

// Mode selects which extraction strategies run for a request. Mode is an
// explicit configuration input, never inferred from document content.
type Mode string

const (
	// ModeDeterministic runs only the pattern classifier and the
	// heuristic context extractors.
	ModeDeterministic Mode = "deterministic"
	// ModeLLM runs only the LLM extraction pass.
	ModeLLM Mode = "llm"
	// ModeCombined runs both paths in parallel and reconciles them.
	ModeCombined Mode = "combined"
)

// ParseMode validates a mode string coming from configuration.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeDeterministic, ModeLLM, ModeCombined:
		return Mode(s), nil
	}

	return "", fmt.Errorf("unknown pipeline mode %q, expected one of %q, %q, %q",
		s, ModeDeterministic, ModeLLM, ModeCombined)
}

// State is a step of the per-request lifecycle.
type State string

const (
	StateReceived      State = "received"
	StateTextExtracted State = "text_extracted"
	StateClassified    State = "classified"
	StateLLMRequested  State = "llm_requested"
	StateLLMResolved   State = "llm_resolved"
	StateLLMSkipped    State = "llm_skipped"
	StateReconciled    State = "reconciled"
	StateDone          State = "done"
	StateFailed        State = "failed"
)

// DefaultTimeout bounds the single outbound LLM call per request.
const DefaultTimeout = 60 * time.Second

// Pipeline is safe for concurrent use: every Run call owns its own document
// buffer and the vocabulary table is read-only after construction.
type Pipeline struct {
	mode      Mode
	vocab     *vocabulary.Table
	extractor ai.ResumeExtractor
	timeout   time.Duration
	logger    *zap.Logger
}

// Config carries the pipeline dependencies. Extractor may be nil, in which
// case the LLM pass is skipped regardless of mode.
type Config struct {
	Mode      Mode
	Vocab     *vocabulary.Table
	Extractor ai.ResumeExtractor
	Timeout   time.Duration
	Logger    *zap.Logger
}

func New(cfg Config) *Pipeline {
	if cfg.Mode == "" {
		cfg.Mode = ModeDeterministic
	}

	if cfg.Vocab == nil {
		cfg.Vocab = vocabulary.Default()
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Pipeline{
		mode:      cfg.Mode,
		vocab:     cfg.Vocab,
		extractor: cfg.Extractor,
		timeout:   cfg.Timeout,
		logger:    cfg.Logger,
	}
}

// deterministicPartial is the subset of a record producible without the LLM.
type deterministicPartial struct {
	personal   extract.PersonalInfo
	skills     []candidate.SkillGroup
	education  []extract.Span
	experience []extract.Span
}

type llmOutcome struct {
	extraction *ai.ResumeExtraction
	err        error
}

// Run converts one document into a resume record. Only document-level
// failures are returned as errors; LLM-path failures degrade the result to
// deterministic-only data and are absorbed here.
func (p *Pipeline) Run(ctx context.Context, doc document.Document) (*candidate.ResumeRecord, error) {
	log := logger.WithFields(p.logger, zap.String(logger.FieldMode, string(p.mode)))
	p.transition(log, StateReceived)

	text, err := document.ExtractText(doc)
	if err != nil {
		p.transition(log, StateFailed)
		return nil, err
	}
	p.transition(log, StateTextExtracted)

	// The LLM call is the only suspension point. It starts before the
	// deterministic passes so those overlap with the network wait; its
	// state is logged once classification finishes, keeping the emitted
	// stream in machine order.
	llmEnabled := p.mode != ModeDeterministic && p.extractor != nil

	var outcomes <-chan llmOutcome
	if llmEnabled {
		outcomes = p.requestExtraction(ctx, text)
	}

	var det deterministicPartial
	if p.mode != ModeLLM {
		det = deterministicPartial{
			personal:   extract.Personal(text),
			skills:     extract.Skills(p.vocab, text),
			education:  extract.Education(text),
			experience: extract.Experience(text),
		}
	}
	p.transition(log, StateClassified)

	var llm *ai.ResumeExtraction
	if !llmEnabled {
		p.transition(log, StateLLMSkipped)
	} else {
		p.transition(log, StateLLMRequested)

		outcome := <-outcomes
		if outcome.err != nil {
			log.Warn("llm extraction failed, continuing with deterministic data only",
				zap.Error(outcome.err))
			p.transition(log, StateLLMSkipped)
		} else {
			llm = outcome.extraction
			p.transition(log, StateLLMResolved)
		}
	}

	record := reconcile(p.vocab, det, llm)
	p.transition(log, StateReconciled)

	p.transition(log, StateDone)

	return record, nil
}

// requestExtraction launches the single outbound LLM call. The returned
// channel is buffered so the worker never leaks when the caller bails out.
func (p *Pipeline) requestExtraction(ctx context.Context, text string) <-chan llmOutcome {
	outcomes := make(chan llmOutcome, 1)

	go func() {
		callCtx, cancel := context.WithTimeout(ctx, p.timeout)
		defer cancel()

		extraction, err := p.extractor.ExtractResume(callCtx, text)
		outcomes <- llmOutcome{extraction: extraction, err: err}
	}()

	return outcomes
}

func (p *Pipeline) transition(log *zap.Logger, state State) {
	log.Debug("pipeline state changed", zap.String(logger.FieldState, string(state)))
}
