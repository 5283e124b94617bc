package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary		List active stream sessions
// @Description	Returns the stream sessions currently alive in this process, for operational visibility only
// @Tags			admin
// @Produce		json
// @Success		200	{array}	stream.SessionSummary
// @Failure		403	{object}	object
// @Security		accessToken
// @Router			/admin/stream-sessions [get]
func (server *Server) listStreamSessions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sessions": server.registry.List(),
	})
}
