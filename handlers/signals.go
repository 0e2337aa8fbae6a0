package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"alpha-terminal/models"
)

func (h *Handler) GetSignals(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}
	minProbability, ok := queryInt(c, "min_probability")
	if !ok {
		return
	}
	action := c.Query("action")

	var horizon models.Horizon
	if raw := c.Query("horizon"); raw != "" {
		parsed, ok := parseHorizon(raw)
		if !ok {
			Error(c, http.StatusBadRequest, "unknown horizon: "+raw)
			return
		}
		horizon = parsed
	}
	if action != "" {
		if _, ok := models.ParseAction(action); !ok {
			Error(c, http.StatusBadRequest, "unknown action: "+action)
			return
		}
	}

	signals := make([]models.TradeSignal, 0)
	for _, sig := range h.Signals.Snapshot() {
		if horizon != "" && sig.Horizon != horizon {
			continue
		}
		if action != "" && string(sig.Action) != action {
			continue
		}
		if minProbability > 0 && sig.Probability < minProbability {
			continue
		}
		signals = append(signals, sig)
		if limit > 0 && len(signals) == limit {
			break
		}
	}

	Ok(c, http.StatusOK, signals, map[string]any{"count": len(signals), "total": h.Signals.Len()})
}

// queryInt reads an optional non-negative integer query parameter, writing a
// 400 when it is present but malformed.
func queryInt(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		Error(c, http.StatusBadRequest, "invalid "+name+": "+raw)
		return 0, false
	}
	return n, true
}

func (h *Handler) GetSignal(c *gin.Context) {
	sig, ok := h.Signals.Get(c.Param("id"))
	if !ok {
		notFound(c, "signal")
		return
	}
	Ok(c, http.StatusOK, sig, nil)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.Journal.LoadStats(c.Request.Context())
	if err != nil {
		h.logger().Error("load stats", zap.Error(err))
		Error(c, http.StatusInternalServerError, "Database error")
		return
	}
	Ok(c, http.StatusOK, stats, nil)
}
