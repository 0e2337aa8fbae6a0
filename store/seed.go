package store

import (
	"time"

	"alpha-terminal/models"
)

func seedSignals(now time.Time) []models.TradeSignal {
	ts := now.UnixMilli()
	return []models.TradeSignal{
		{
			ID:              "init-1",
			Ticker:          "GEO",
			Name:            "Geo Group Inc",
			Sector:          "Private Prisons",
			Horizon:         models.HorizonShort,
			Action:          models.ActionBuy,
			Probability:     85,
			Reasoning:       `Strong correlation with "Border" rhetoric.`,
			CatalystKeyword: "Border",
			Timestamp:       ts,
		},
		{
			ID:              "init-2",
			Ticker:          "DJT",
			Name:            "Trump Media",
			Sector:          "Technology",
			Horizon:         models.HorizonShort,
			Action:          models.ActionBuy,
			Probability:     90,
			Reasoning:       `Hype momentum on "Fake News" attacks.`,
			CatalystKeyword: "Fake News",
			Timestamp:       ts,
		},
		{
			ID:              "init-3",
			Ticker:          "X",
			Name:            "US Steel",
			Sector:          "Industrial",
			Horizon:         models.HorizonMid,
			Action:          models.ActionBuy,
			Probability:     70,
			Reasoning:       "Tariff protection expectations.",
			CatalystKeyword: "Tariff",
			Timestamp:       ts,
		},
		{
			ID:              "init-4",
			Ticker:          "WMT",
			Name:            "Walmart",
			Sector:          "Retail",
			Horizon:         models.HorizonMid,
			Action:          models.ActionSell,
			Probability:     65,
			Reasoning:       "Supply chain costs increase due to tariffs.",
			CatalystKeyword: "Tariff",
			Timestamp:       ts,
		},
		{
			ID:              "init-5",
			Ticker:          "RTX",
			Name:            "Raytheon",
			Sector:          "Defense",
			Horizon:         models.HorizonLong,
			Action:          models.ActionBuy,
			Probability:     80,
			Reasoning:       "Strategic deterrence needs regardless of war status.",
			CatalystKeyword: "Military",
			Timestamp:       ts,
		},
	}
}

func seedFeed(now time.Time) []models.IntelItem {
	return []models.IntelItem{
		{
			ID:        "1",
			Source:    models.SourceTruthSocial,
			Author:    "Donald J. Trump",
			Content:   "DRILL, BABY, DRILL! We will bring energy prices down by 50% in the first year. American Energy Dominance!",
			Timestamp: now.Add(-2 * time.Hour).UnixMilli(),
			Analyzed:  true,
		},
		{
			ID:        "2",
			Source:    models.SourceTwitter,
			Author:    "Elon Musk",
			Content:   "DOGE will fix the government efficiency issues. It is inevitable.",
			Timestamp: now.Add(-4 * time.Hour).UnixMilli(),
			Analyzed:  true,
		},
	}
}
