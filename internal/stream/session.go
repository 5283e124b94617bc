package stream

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lithammer/shortuuid/v4"
	"github.com/minhnq/campushub-BE/internal/notification"
	"github.com/rs/zerolog/log"
)

// ErrTransportWrite means the client transport can no longer be written.
// It is terminal for the one session that saw it.
var ErrTransportWrite = errors.New("transport write failed")

// State is the session lifecycle phase.
type State int32

const (
	StateConnecting State = iota
	StateStreaming
	StateClosing
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateStreaming:
		return "streaming"
	case StateClosing:
		return "closing"
	case StateClosed:
		return "closed"
	}
	return "unknown"
}

// Config holds the per-session timing and paging knobs.
type Config struct {
	// PollInterval is the steady-state tick between store polls.
	PollInterval time.Duration
	// HeartbeatInterval is how often an otherwise silent session writes a
	// keep-alive. Must be longer than PollInterval.
	HeartbeatInterval time.Duration
	// PageSize caps one ListUnseenSince call.
	PageSize int32
	// MaxDrainIterations bounds the immediate re-polls used to drain a
	// backlog, so one busy session cannot starve the rest.
	MaxDrainIterations int
	// IdleTimeout closes a session that has not delivered a notification
	// for this long; the client is expected to reconnect.
	IdleTimeout time.Duration
	// MaxLifetime closes a session unconditionally after this long.
	MaxLifetime time.Duration
	// MaxPollFailures is the number of consecutive failed polls tolerated
	// before the session is closed with an error frame.
	MaxPollFailures int
}

func (c Config) withDefaults() Config {
	if c.PollInterval <= 0 {
		c.PollInterval = 2 * time.Second
	}
	if c.HeartbeatInterval <= 0 {
		c.HeartbeatInterval = 15 * time.Second
	}
	if c.PageSize <= 0 {
		c.PageSize = 50
	}
	if c.MaxDrainIterations <= 0 {
		c.MaxDrainIterations = 5
	}
	if c.IdleTimeout <= 0 {
		c.IdleTimeout = 5 * time.Minute
	}
	if c.MaxLifetime <= 0 {
		c.MaxLifetime = 30 * time.Minute
	}
	if c.MaxPollFailures <= 0 {
		c.MaxPollFailures = 5
	}
	return c
}

// Session is one long-lived connection of the notification push protocol.
// It is in-memory only, never persisted, and never migrates between
// connections. Each session polls the store on its own goroutine; sessions
// share no mutable state with each other.
type Session struct {
	id          string
	recipientID string
	backfill    bool
	store       notification.Store
	writer      FrameWriter
	registry    Registry
	cfg         Config

	mu         sync.Mutex
	state      State
	lastSeenID int64
	openedAt   time.Time
	lastPollAt time.Time
}

// SessionOption configures a session at creation time.
type SessionOption func(*Session)

// WithBackfill makes the session replay the recipient's existing
// notifications instead of starting from the current high-water-mark.
func WithBackfill(backfill bool) SessionOption {
	return func(s *Session) {
		s.backfill = backfill
	}
}

// NewSession creates a session for one authenticated recipient. registry
// may be nil; the session then runs untracked.
func NewSession(recipientID string, store notification.Store, writer FrameWriter, registry Registry, cfg Config, opts ...SessionOption) *Session {
	s := &Session{
		id:          shortuuid.New(),
		recipientID: recipientID,
		store:       store,
		writer:      writer,
		registry:    registry,
		cfg:         cfg.withDefaults(),
		state:       StateConnecting,
		openedAt:    time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) RecipientID() string {
	return s.recipientID
}

// Summary returns the diagnostic view of the session.
func (s *Session) Summary() SessionSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionSummary{
		SessionID:   s.id,
		RecipientID: s.recipientID,
		State:       s.state.String(),
		OpenedAt:    s.openedAt,
		LastPollAt:  s.lastPollAt,
	}
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// Run executes the session until the context is cancelled, a timeout
// expires, the transport dies, or the store stays down past the failure
// threshold. It blocks the calling goroutine for the whole lifetime.
func (s *Session) Run(ctx context.Context) error {
	defer s.setState(StateClosed)

	lastSeenID, err := s.initialWatermark(ctx)
	if err != nil {
		s.writeErrorFrame(ReasonStoreUnavailable)
		return err
	}
	s.mu.Lock()
	s.lastSeenID = lastSeenID
	s.mu.Unlock()

	err = s.writer.WriteFrame(Frame{Type: FrameHandshake, Data: HandshakePayload{
		SessionID:   s.id,
		RecipientID: s.recipientID,
		LastSeenID:  lastSeenID,
		Backfill:    s.backfill,
	}})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransportWrite, err)
	}

	s.setState(StateStreaming)
	if s.registry != nil {
		s.registry.Register(s)
		defer s.registry.Unregister(s.id)
	}

	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()
	lifetime := time.NewTimer(s.cfg.MaxLifetime)
	defer lifetime.Stop()
	idle := time.NewTimer(s.cfg.IdleTimeout)
	defer idle.Stop()

	lastWrite := time.Now()
	consecutiveFailures := 0

	for {
		select {
		case <-ctx.Done():
			// Client disconnect or server shutdown.
			s.setState(StateClosing)
			return nil

		case <-lifetime.C:
			s.setState(StateClosing)
			log.Info().Str("session_id", s.id).Msg("stream session reached max lifetime")
			return nil

		case <-idle.C:
			s.setState(StateClosing)
			log.Info().Str("session_id", s.id).Msg("stream session idle timeout")
			return nil

		case <-ticker.C:
			emitted, err := s.poll(ctx)
			if err != nil {
				if errors.Is(err, ErrTransportWrite) {
					s.setState(StateClosing)
					return err
				}

				consecutiveFailures++
				if consecutiveFailures >= s.cfg.MaxPollFailures {
					s.setState(StateClosing)
					s.writeErrorFrame(ReasonStoreUnavailable)
					return fmt.Errorf("store unavailable for %d consecutive polls: %w", consecutiveFailures, err)
				}

				// One failed poll does not close the session.
				log.Warn().Err(err).Str("session_id", s.id).
					Int("consecutive_failures", consecutiveFailures).
					Msg("notification poll failed, continuing")
				continue
			}
			consecutiveFailures = 0

			if emitted > 0 {
				lastWrite = time.Now()
				if !idle.Stop() {
					select {
					case <-idle.C:
					default:
					}
				}
				idle.Reset(s.cfg.IdleTimeout)
				continue
			}

			// Quiet tick: keep the connection observably alive, at a lower
			// cadence than the poll interval.
			if time.Since(lastWrite) >= s.cfg.HeartbeatInterval {
				if err := s.writer.WriteFrame(Frame{Type: FrameHeartbeat, Data: struct{}{}}); err != nil {
					s.setState(StateClosing)
					return fmt.Errorf("%w: %v", ErrTransportWrite, err)
				}
				lastWrite = time.Now()
			}
		}
	}
}

// poll runs one tick: a ListUnseenSince page, emitted item by item in
// ascending id order, with the watermark advanced after every successful
// emit so a mid-batch transport failure never re-delivers on reconnect of
// the loop. A full page triggers an immediate re-poll, bounded by
// MaxDrainIterations.
func (s *Session) poll(ctx context.Context) (emitted int, err error) {
	for iteration := 0; iteration < s.cfg.MaxDrainIterations; iteration++ {
		if ctx.Err() != nil {
			return emitted, nil
		}

		s.mu.Lock()
		lastSeenID := s.lastSeenID
		s.lastPollAt = time.Now()
		s.mu.Unlock()

		page, err := s.store.ListUnseenSince(ctx, s.recipientID, lastSeenID, s.cfg.PageSize)
		if err != nil {
			return emitted, err
		}

		for _, item := range page {
			// Guard against a store returning already-delivered rows: the
			// frame id sequence must be strictly increasing.
			if item.ID <= lastSeenID {
				continue
			}

			if err := s.writer.WriteFrame(Frame{Type: FrameNotification, Data: item}); err != nil {
				return emitted, fmt.Errorf("%w: %v", ErrTransportWrite, err)
			}

			lastSeenID = item.ID
			s.mu.Lock()
			s.lastSeenID = item.ID
			s.mu.Unlock()
			emitted++
		}

		if int32(len(page)) < s.cfg.PageSize {
			return emitted, nil
		}
	}

	return emitted, nil
}

func (s *Session) initialWatermark(ctx context.Context) (int64, error) {
	if s.backfill {
		return 0, nil
	}
	return s.store.LatestID(ctx, s.recipientID)
}

// writeErrorFrame is best effort: the transport may already be gone.
func (s *Session) writeErrorFrame(reason string) {
	err := s.writer.WriteFrame(Frame{Type: FrameError, Data: ErrorPayload{Reason: reason}})
	if err != nil {
		log.Debug().Err(err).Str("session_id", s.id).Msg("failed to write error frame")
	}
}
