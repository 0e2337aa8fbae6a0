package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alpha-terminal/models"
	"alpha-terminal/store"
)

const (
	SimulatedAuthor = "Donald J. Trump (Simulated)"

	signalIDPrefix = "SIG-"
	itemIDPrefix   = "INT-"
)

var (
	ErrEmptyInput        = errors.New("intel text is empty")
	ErrMissingCredential = errors.New("analysis api key is missing")
	ErrBusy              = errors.New("an analysis is already in flight")
	ErrAnalysisFailed    = errors.New("analysis failed")
	ErrNoResult          = errors.New("analyzer returned no result")
)

// Analyzer is the external classification service.
type Analyzer interface {
	Analyze(ctx context.Context, text, apiKey string) (*models.AnalysisResult, error)
}

type State int32

const (
	StateIdle State = iota
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// Outcome is what a submission produced. Item is always set once the
// provisional feed entry exists; Signal only on success.
type Outcome struct {
	Item   models.IntelItem    `json:"item"`
	Signal *models.TradeSignal `json:"signal,omitempty"`
}

type Stats struct {
	State     string `json:"state"`
	Submitted uint64 `json:"submitted"`
	Completed uint64 `json:"completed"`
	Failed    uint64 `json:"failed"`
	Rejected  uint64 `json:"rejected"`
}

// Pipeline turns operator text into trade signals, one submission at a time.
type Pipeline struct {
	Signals       *store.SignalStore
	Feed          *store.FeedStore
	Analyzer      Analyzer
	DefaultAPIKey string
	Logger        *zap.Logger

	// Now and NewID are overridable for tests.
	Now   func() time.Time
	NewID func() string

	inflight sync.Mutex
	state    atomic.Int32

	submitted atomic.Uint64
	completed atomic.Uint64
	failed    atomic.Uint64
	rejected  atomic.Uint64
}

func New(signals *store.SignalStore, feed *store.FeedStore, analyzer Analyzer, defaultAPIKey string, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		Signals:       signals,
		Feed:          feed,
		Analyzer:      analyzer,
		DefaultAPIKey: defaultAPIKey,
		Logger:        logger,
	}
}

func (p *Pipeline) State() State {
	return State(p.state.Load())
}

func (p *Pipeline) Stats() Stats {
	return Stats{
		State:     p.State().String(),
		Submitted: p.submitted.Load(),
		Completed: p.completed.Load(),
		Failed:    p.failed.Load(),
		Rejected:  p.rejected.Load(),
	}
}

// Submit runs one submission to completion. Precondition failures
// (ErrEmptyInput, ErrMissingCredential, ErrBusy) leave both collections
// untouched. ErrAnalysisFailed leaves the provisional item unanalyzed.
func (p *Pipeline) Submit(ctx context.Context, text, apiKey string) (Outcome, error) {
	if strings.TrimSpace(text) == "" {
		p.rejected.Add(1)
		return Outcome{}, ErrEmptyInput
	}
	key := strings.TrimSpace(apiKey)
	if key == "" {
		key = p.DefaultAPIKey
	}
	if key == "" {
		p.rejected.Add(1)
		return Outcome{}, ErrMissingCredential
	}
	if !p.inflight.TryLock() {
		p.rejected.Add(1)
		return Outcome{}, ErrBusy
	}
	defer p.inflight.Unlock()

	p.state.Store(int32(StateSubmitting))
	defer p.state.Store(int32(StateIdle))

	item := models.IntelItem{
		ID:        itemIDPrefix + p.newID(),
		Source:    models.SourceTruthSocial,
		Author:    SimulatedAuthor,
		Content:   text,
		Timestamp: p.now().UnixMilli(),
	}
	p.Feed.Prepend(item)
	p.submitted.Add(1)

	// Submissions are not cancellable once started.
	res, err := p.Analyzer.Analyze(context.WithoutCancel(ctx), item.Content, key)
	if err == nil && res == nil {
		err = ErrNoResult
	}
	if err != nil {
		p.failed.Add(1)
		p.logger().Warn("intel analysis failed", zap.String("item_id", item.ID), zap.Error(err))
		return Outcome{Item: item}, fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}

	sig := BuildSignal(*res, p.now(), signalIDPrefix+p.newID())
	p.Signals.Publish(sig)

	updated, err := p.Feed.MarkAnalyzed(item.ID, sig.ID)
	if err != nil {
		// Only reachable if something else touched the item.
		p.logger().Error("mark intel analyzed", zap.String("item_id", item.ID), zap.Error(err))
		updated = item
	}
	p.completed.Add(1)

	p.logger().Info("signal generated",
		zap.String("signal_id", sig.ID),
		zap.String("item_id", item.ID),
		zap.String("ticker", sig.Ticker),
		zap.String("action", string(sig.Action)),
		zap.Int("probability", sig.Probability),
	)
	return Outcome{Item: updated, Signal: &sig}, nil
}

func (p *Pipeline) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

func (p *Pipeline) newID() string {
	if p.NewID != nil {
		return p.NewID()
	}
	return uuid.NewString()
}

func (p *Pipeline) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}
