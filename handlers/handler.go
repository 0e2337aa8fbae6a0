package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"alpha-terminal/database"
	"alpha-terminal/pipeline"
	"alpha-terminal/store"
)

// Handler serves the dashboard views over the session state.
type Handler struct {
	Signals      *store.SignalStore
	Feed         *store.FeedStore
	Pipeline     *pipeline.Pipeline
	Journal      *database.Journal
	Logger       *zap.Logger
	StreamBuffer int
}

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/healthz", h.Health)
	r.GET("/readyz", h.Ready)

	api := r.Group("/api")
	{
		api.GET("/signals", h.GetSignals)
		api.GET("/signals/:id", h.GetSignal)
		api.GET("/overview", h.Overview)
		api.GET("/strategy", h.StrategyBoard)
		api.GET("/intel", h.GetFeed)
		api.GET("/intel/:id", h.GetIntelItem)
		api.POST("/intel/analyze", h.Analyze)
		api.GET("/pipeline", h.PipelineStatus)
		api.GET("/stats", h.GetStats)
		api.GET("/stream", h.Stream)
	}
}

func (h *Handler) logger() *zap.Logger {
	if h.Logger == nil {
		return zap.NewNop()
	}
	return h.Logger
}
