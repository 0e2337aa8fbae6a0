package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"alpha-terminal/models"
	"alpha-terminal/pipeline"
)

type AnalysisRequest struct {
	Text   string `json:"text"`
	APIKey string `json:"api_key"`
}

type IntelDetail struct {
	Item   models.IntelItem    `json:"item"`
	Signal *models.TradeSignal `json:"signal,omitempty"`
}

func (h *Handler) Analyze(c *gin.Context) {
	var request AnalysisRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	out, err := h.Pipeline.Submit(c.Request.Context(), request.Text, request.APIKey)
	switch {
	case err == nil:
		Ok(c, http.StatusCreated, out, nil)
	case errors.Is(err, pipeline.ErrEmptyInput):
		Error(c, http.StatusBadRequest, "Intel text is required")
	case errors.Is(err, pipeline.ErrMissingCredential):
		Error(c, http.StatusUnauthorized, "Please provide a Gemini API key to use the AI analysis features")
	case errors.Is(err, pipeline.ErrBusy):
		Error(c, http.StatusConflict, "An analysis is already running")
	default:
		// The cause is logged by the pipeline; operators only get the generic notice.
		h.logger().Debug("analysis request failed", zap.String("item_id", out.Item.ID), zap.Error(err))
		c.JSON(http.StatusBadGateway, apiResponse{
			Code:    http.StatusBadGateway,
			Message: "Analysis failed. Check the API key and try again.",
			Data:    out,
		})
	}
}

func (h *Handler) GetFeed(c *gin.Context) {
	feed := h.Feed.Snapshot()
	Ok(c, http.StatusOK, feed, map[string]any{"count": len(feed), "pending": h.Feed.Pending()})
}

func (h *Handler) GetIntelItem(c *gin.Context) {
	item, ok := h.Feed.Get(c.Param("id"))
	if !ok {
		notFound(c, "intel item")
		return
	}
	detail := IntelDetail{Item: item}
	if item.RelatedSignalID != nil {
		if sig, ok := h.Signals.Get(*item.RelatedSignalID); ok {
			detail.Signal = &sig
		}
	}
	Ok(c, http.StatusOK, detail, nil)
}

func (h *Handler) PipelineStatus(c *gin.Context) {
	Ok(c, http.StatusOK, h.Pipeline.Stats(), nil)
}
