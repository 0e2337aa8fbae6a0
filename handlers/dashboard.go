package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"alpha-terminal/database"
	"alpha-terminal/models"
)

const priorityItems = 4

type Overview struct {
	Sentiment      string               `json:"sentiment"`
	RiskLevel      string               `json:"risk_level"`
	ActiveSignals  int                  `json:"active_signals"`
	HighConviction int                  `json:"high_conviction"`
	Priority       []models.TradeSignal `json:"priority"`
	PendingIntel   int                  `json:"pending_intel"`
}

type HorizonColumn struct {
	Horizon     models.Horizon       `json:"horizon"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Signals     []models.TradeSignal `json:"signals"`
}

var columns = []struct {
	horizon     models.Horizon
	title       string
	description string
}{
	{models.HorizonShort, "Sniper", "1 Day - 2 Weeks"},
	{models.HorizonMid, "Swing", "1 Month - 6 Months"},
	{models.HorizonLong, "Strategic", "1 Year - 3 Years"},
}

func buildOverview(signals []models.TradeSignal, pendingIntel int) Overview {
	high := make([]models.TradeSignal, 0)
	for _, sig := range signals {
		if sig.Probability > database.HighConvictionThreshold {
			high = append(high, sig)
		}
	}
	priority := high
	if len(priority) > priorityItems {
		priority = priority[:priorityItems]
	}
	return Overview{
		// The overview headline figures are fixed editorial labels.
		Sentiment:      "BULLISH",
		RiskLevel:      "HIGH",
		ActiveSignals:  len(signals),
		HighConviction: len(high),
		Priority:       priority,
		PendingIntel:   pendingIntel,
	}
}

func buildStrategyBoard(byHorizon map[models.Horizon][]models.TradeSignal) []HorizonColumn {
	board := make([]HorizonColumn, 0, len(columns))
	for _, col := range columns {
		signals := byHorizon[col.horizon]
		if signals == nil {
			signals = []models.TradeSignal{}
		}
		board = append(board, HorizonColumn{
			Horizon:     col.horizon,
			Title:       col.title,
			Description: col.description,
			Signals:     signals,
		})
	}
	return board
}

// parseHorizon accepts both the wire value (SHORT_TERM) and the short name (SHORT).
func parseHorizon(raw string) (models.Horizon, bool) {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if !strings.HasSuffix(raw, "_TERM") {
		raw += "_TERM"
	}
	return models.ParseHorizon(raw)
}

func (h *Handler) Overview(c *gin.Context) {
	Ok(c, http.StatusOK, buildOverview(h.Signals.Snapshot(), h.Feed.Pending()), nil)
}

func (h *Handler) StrategyBoard(c *gin.Context) {
	Ok(c, http.StatusOK, buildStrategyBoard(h.Signals.ByHorizon()), nil)
}
