package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Stream pushes every newly published signal as a server-sent "signal" event.
func (h *Handler) Stream(c *gin.Context) {
	ch := h.Signals.Subscribe(h.StreamBuffer)
	defer h.Signals.Unsubscribe(ch)

	h.logger().Debug("stream subscriber connected", zap.String("remote", c.ClientIP()))

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case sig, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("signal", sig)
			return true
		}
	})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) Ready(c *gin.Context) {
	if h.Journal == nil || h.Journal.DB == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "db_missing"})
		return
	}
	if err := h.Journal.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "db_unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
