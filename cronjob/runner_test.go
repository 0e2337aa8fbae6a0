package cronjob

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRunnerRecoversPanickingJob(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r := New(zap.New(core), context.Background())

	assert.NotPanics(t, func() {
		r.run("boom", func(context.Context) { panic("bad job") })
	})
	entries := logs.FilterMessage("cron job panicked").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "boom", entries[0].ContextMap()["job"])
	}
}

func TestRunnerPassesBaseContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "session")
	r := New(nil, ctx)

	var got any
	r.run("ctx-check", func(ctx context.Context) { got = ctx.Value(key{}) })
	assert.Equal(t, "session", got)
}

func TestRunnerSkipsAfterShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := New(nil, ctx)

	ran := false
	r.run("late", func(context.Context) { ran = true })
	assert.False(t, ran)
}
