package cronjob

import (
	"context"

	"go.uber.org/zap"

	"alpha-terminal/pipeline"
	"alpha-terminal/store"
)

// Digest logs a periodic summary of the session state.
type Digest struct {
	Signals  *store.SignalStore
	Feed     *store.FeedStore
	Pipeline *pipeline.Pipeline
	Logger   *zap.Logger
}

func (d *Digest) Run(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	stats := d.Pipeline.Stats()
	d.Logger.Info("session digest",
		zap.Int("signals", d.Signals.Len()),
		zap.Int("feed_items", d.Feed.Len()),
		zap.Int("unanalyzed", d.Feed.Pending()),
		zap.Uint64("dropped_signal_events", d.Signals.Dropped()),
		zap.Uint64("dropped_feed_events", d.Feed.Dropped()),
		zap.String("pipeline_state", stats.State),
		zap.Uint64("submitted", stats.Submitted),
		zap.Uint64("failed", stats.Failed),
	)
}

// Schedule registers the digest; an empty spec leaves it off.
func (d *Digest) Schedule(r *Runner, spec string) error {
	if spec == "" {
		return nil
	}
	_, err := r.Add("session-digest", spec, d.Run)
	return err
}
