package notify

import (
	"net/http"

	httperr "github.com/aevon-lab/reward-points/internal/core/errors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes exposes process status as a server-sent event stream.
func (b *Broker) RegisterRoutes(r gin.IRouter) {
	r.GET("/batch/:process_id", b.HandleStream)
}

// HandleStream handles GET /batch/:process_id.
// The stream ends after the first message, which is always the run's terminal status.
func (b *Broker) HandleStream(c *gin.Context) {
	processID := c.Param("process_id")
	if processID == "" {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   "process_id is required",
		})
		return
	}

	messages, cancel := b.Subscribe(processID)
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	select {
	case msg, ok := <-messages:
		if !ok {
			return
		}
		c.SSEvent("message", msg)
		c.Writer.Flush()
	case <-c.Request.Context().Done():
	}
}
