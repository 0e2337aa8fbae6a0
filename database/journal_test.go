package database

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alpha-terminal/config"
	"alpha-terminal/models"
)

func newTestJournal(t *testing.T) *Journal {
	t.Helper()
	db, err := Open(config.DBConfig{DSN: "file::memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { Close(db) })
	require.NoError(t, AutoMigrate(db))
	return &Journal{DB: db}
}

func TestJournalStatsEmpty(t *testing.T) {
	j := newTestJournal(t)

	stats, err := j.LoadStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{}, *stats)
}

func TestJournalRecordAndStats(t *testing.T) {
	j := newTestJournal(t)
	ctx := context.Background()

	entry := decimal.RequireFromString("112.45")
	signals := []models.TradeSignal{
		{ID: "s1", Ticker: "GEO", Sector: "Private Prisons", Horizon: models.HorizonShort, Action: models.ActionBuy, Probability: 85},
		{ID: "s2", Ticker: "WMT", Sector: "Retail", Horizon: models.HorizonMid, Action: models.ActionSell, Probability: 65},
		{ID: "s3", Ticker: "RTX", Sector: "Defense", Horizon: models.HorizonLong, Action: models.ActionBuy, Probability: 80, EntryPrice: &entry},
		{ID: "s4", Ticker: "UNKNOWN", Sector: "Retail", Horizon: models.HorizonShort, Action: models.ActionHold, Probability: 50},
	}
	for _, sig := range signals {
		require.NoError(t, j.RecordSignal(ctx, sig))
	}

	item := models.IntelItem{ID: "i1", Source: models.SourceTruthSocial, Content: "Tariff"}
	require.NoError(t, j.RecordItem(ctx, item))
	require.NoError(t, j.RecordItem(ctx, models.IntelItem{ID: "i2", Source: models.SourceTwitter, Content: "DOGE"}))

	ref := "s4"
	item.Analyzed = true
	item.RelatedSignalID = &ref
	require.NoError(t, j.RecordItem(ctx, item))

	stats, err := j.LoadStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.Total)
	assert.Equal(t, int64(2), stats.Buy)
	assert.Equal(t, int64(1), stats.Sell)
	assert.Equal(t, int64(1), stats.Hold)
	assert.Equal(t, int64(2), stats.ShortTerm)
	assert.Equal(t, int64(1), stats.MidTerm)
	assert.Equal(t, int64(1), stats.LongTerm)
	assert.Equal(t, int64(2), stats.HighConviction)
	assert.Equal(t, int64(3), stats.Sectors)
	assert.InDelta(t, 70.0, stats.AvgProbability, 0.001)
	assert.Equal(t, int64(2), stats.FeedItems)
	assert.Equal(t, int64(1), stats.Unanalyzed)

	var stored models.TradeSignal
	require.NoError(t, j.DB.First(&stored, "id = ?", "s3").Error)
	require.NotNil(t, stored.EntryPrice)
	assert.True(t, entry.Equal(*stored.EntryPrice))
	assert.Nil(t, stored.StopLoss)
}

func TestJournalRun(t *testing.T) {
	j := newTestJournal(t)

	signals := make(chan models.TradeSignal, 1)
	items := make(chan models.IntelItem, 1)
	done := make(chan struct{})
	go func() {
		j.Run(context.Background(), signals, items)
		close(done)
	}()

	signals <- models.TradeSignal{ID: "s1", Action: models.ActionBuy}
	items <- models.IntelItem{ID: "i1"}
	close(signals)
	close(items)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("journal did not stop after channels closed")
	}

	stats, err := j.LoadStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Total)
	assert.Equal(t, int64(1), stats.FeedItems)
	assert.NoError(t, j.Ping(context.Background()))
}
