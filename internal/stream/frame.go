package stream

// FrameType identifies one typed push frame on the notification stream.
type FrameType string

const (
	// FrameHandshake is sent once, immediately after the session is created.
	FrameHandshake FrameType = "handshake"
	// FrameNotification carries one delivered notification.
	FrameNotification FrameType = "notification"
	// FrameHeartbeat is a periodic empty frame so the client and any
	// intermediary can detect a dead connection.
	FrameHeartbeat FrameType = "heartbeat"
	// FrameError is terminal and carries a reason code.
	FrameError FrameType = "error"
)

// Error frame reason codes.
const (
	ReasonAuthRejected     = "auth_rejected"
	ReasonStoreUnavailable = "store_unavailable"
)

// Frame is one typed event pushed to the client.
type Frame struct {
	Type FrameType
	Data interface{}
}

// HandshakePayload acknowledges the connection and tells the client where
// the delivery watermark starts.
type HandshakePayload struct {
	SessionID   string `json:"session_id"`
	RecipientID string `json:"recipient_id"`
	LastSeenID  int64  `json:"last_seen_id"`
	Backfill    bool   `json:"backfill"`
}

// ErrorPayload is the body of a terminal error frame.
type ErrorPayload struct {
	Reason string `json:"reason"`
}

// FrameWriter delivers frames to one connected client. WriteFrame blocks
// until the frame has been handed to the transport and returns an error
// once the transport can no longer be written.
type FrameWriter interface {
	WriteFrame(frame Frame) error
}
