package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/minhnq/campushub-BE/internal/stream"
	"github.com/rs/zerolog/log"
)

// sseFrameWriter renders stream frames as Server-Sent Events on one
// response. Only the session goroutine writes to it.
type sseFrameWriter struct {
	w gin.ResponseWriter
}

func (fw *sseFrameWriter) WriteFrame(frame stream.Frame) error {
	data, err := json.Marshal(frame.Data)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(fw.w, "event: %s\ndata: %s\n\n", frame.Type, data); err != nil {
		return err
	}
	fw.w.Flush()
	return nil
}

// @Summary		Stream notifications via Server-Sent Events
// @Description	Establishes a long-lived SSE connection that pushes the authenticated user's new notifications as they are created. Frames: handshake (once), notification, heartbeat, error (terminal).
// @Tags			notifications
// @Produce		text/event-stream
// @Param			access_token	query		string	false	"Access token, for clients that cannot set the Authorization header"
// @Param			backfill		query		bool	false	"Replay existing notifications instead of starting from now"
// @Success		200				{string}	string	"Event stream with format: 'event: {frameType}\ndata: {jsonData}'"
// @Router			/notifications/stream [get]
func (server *Server) streamNotifications(c *gin.Context) {
	// Thiết lập header SSE
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Status(http.StatusOK)

	writer := &sseFrameWriter{w: c.Writer}

	// EventSource cannot send an Authorization header, so the credential is
	// accepted from either the header or an access_token query parameter.
	// An unauthenticated client gets a terminal error frame and must
	// re-authenticate and reconnect.
	payload, err := server.tokenMaker.VerifyToken(streamAccessToken(c))
	if err != nil {
		_ = writer.WriteFrame(stream.Frame{
			Type: stream.FrameError,
			Data: stream.ErrorPayload{Reason: stream.ReasonAuthRejected},
		})
		return
	}

	backfill := c.Query("backfill") == "true" || c.Query("backfill") == "1"

	session := stream.NewSession(
		payload.Subject,
		server.notifStore,
		writer,
		server.registry,
		server.streamConfig,
		stream.WithBackfill(backfill),
	)

	if err := session.Run(c.Request.Context()); err != nil {
		log.Warn().Err(err).
			Str("session_id", session.ID()).
			Str("recipient_id", payload.Subject).
			Msg("stream session ended with error")
	}
}

func streamAccessToken(c *gin.Context) string {
	authorizationHeader := c.GetHeader(authorizationHeaderKey)
	if authorizationHeader != "" {
		fields := strings.Fields(authorizationHeader)
		if len(fields) == 2 && fields[0] == authorizationTypeBearer {
			return fields[1]
		}
	}

	return c.Query("access_token")
}
