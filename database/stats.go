package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"alpha-terminal/models"
)

// HighConvictionThreshold matches the overview's "high conviction" cut.
const HighConvictionThreshold = 75

type Stats struct {
	Total          int64   `json:"total"`
	Buy            int64   `json:"buy"`
	Sell           int64   `json:"sell"`
	Hold           int64   `json:"hold"`
	ShortTerm      int64   `json:"short_term"`
	MidTerm        int64   `json:"mid_term"`
	LongTerm       int64   `json:"long_term"`
	HighConviction int64   `json:"high_conviction"`
	AvgProbability float64 `json:"avg_probability"`
	Sectors        int64   `json:"sectors"`
	FeedItems      int64   `json:"feed_items"`
	Unanalyzed     int64   `json:"unanalyzed"`
}

func (j *Journal) LoadStats(ctx context.Context) (*Stats, error) {
	signals := func() *gorm.DB { return j.DB.WithContext(ctx).Model(&models.TradeSignal{}) }
	items := func() *gorm.DB { return j.DB.WithContext(ctx).Model(&models.IntelItem{}) }

	var stats Stats
	counts := []struct {
		name  string
		query *gorm.DB
		dest  *int64
	}{
		{"total", signals(), &stats.Total},
		{"buy", signals().Where("action = ?", models.ActionBuy), &stats.Buy},
		{"sell", signals().Where("action = ?", models.ActionSell), &stats.Sell},
		{"hold", signals().Where("action = ?", models.ActionHold), &stats.Hold},
		{"short", signals().Where("horizon = ?", models.HorizonShort), &stats.ShortTerm},
		{"mid", signals().Where("horizon = ?", models.HorizonMid), &stats.MidTerm},
		{"long", signals().Where("horizon = ?", models.HorizonLong), &stats.LongTerm},
		{"high conviction", signals().Where("probability > ?", HighConvictionThreshold), &stats.HighConviction},
		{"sectors", signals().Distinct("sector"), &stats.Sectors},
		{"feed", items(), &stats.FeedItems},
		{"unanalyzed", items().Where("analyzed = ?", false), &stats.Unanalyzed},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("count %s: %w", c.name, err)
		}
	}

	if err := signals().Select("COALESCE(AVG(probability), 0)").Scan(&stats.AvgProbability).Error; err != nil {
		return nil, fmt.Errorf("avg probability: %w", err)
	}

	return &stats, nil
}
