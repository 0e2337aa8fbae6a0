package pipeline

import (
	"time"

	"github.com/shopspring/decimal"

	"alpha-terminal/models"
)

const (
	DefaultTicker          = "UNKNOWN"
	DefaultName            = "Unknown Asset"
	DefaultSector          = "General"
	DefaultHorizon         = models.HorizonShort
	DefaultAction          = models.ActionHold
	DefaultProbability     = 50
	DefaultReasoning       = "No reasoning provided."
	DefaultCatalystKeyword = "Manual Input"
)

// BuildSignal turns a raw analysis result into a signal. Missing or empty
// fields take the documented defaults; horizon and action values outside
// their enumerations are treated as missing. Probability is not clamped.
// Generated signals carry a zero entry price and no stop loss.
func BuildSignal(res models.AnalysisResult, now time.Time, id string) models.TradeSignal {
	entry := decimal.Zero
	sig := models.TradeSignal{
		ID:              id,
		Ticker:          orDefault(res.Ticker, DefaultTicker),
		Name:            orDefault(res.Name, DefaultName),
		Sector:          orDefault(res.Sector, DefaultSector),
		Horizon:         DefaultHorizon,
		Action:          DefaultAction,
		Probability:     DefaultProbability,
		Reasoning:       orDefault(res.Reasoning, DefaultReasoning),
		CatalystKeyword: orDefault(res.CatalystKeyword, DefaultCatalystKeyword),
		Timestamp:       now.UnixMilli(),
		EntryPrice:      &entry,
	}
	if res.Horizon != nil {
		if h, ok := models.ParseHorizon(*res.Horizon); ok {
			sig.Horizon = h
		}
	}
	if res.Action != nil {
		if a, ok := models.ParseAction(*res.Action); ok {
			sig.Action = a
		}
	}
	if res.Probability != nil {
		sig.Probability = *res.Probability
	}
	return sig
}

func orDefault(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}
