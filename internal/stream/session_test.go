package stream

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/minhnq/campushub-BE/internal/notification"
	"github.com/stretchr/testify/require"
)

// fakeStore implements notification.Store in memory with injectable
// failures.
type fakeStore struct {
	mu        sync.Mutex
	nextID    int64
	items     []notification.Notification
	listErr   error
	latestErr error
}

func (s *fakeStore) add(recipientID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.items = append(s.items, notification.Notification{
		ID:          s.nextID,
		RecipientID: recipientID,
		Category:    notification.CategoryAnnouncement,
		Title:       "title",
		Body:        "body",
		CreatedAt:   time.Now(),
	})
	return s.nextID
}

func (s *fakeStore) setListErr(err error) {
	s.mu.Lock()
	s.listErr = err
	s.mu.Unlock()
}

func (s *fakeStore) Create(_ context.Context, arg notification.CreateParams) (notification.Notification, error) {
	id := s.add(arg.RecipientID)
	return notification.Notification{ID: id, RecipientID: arg.RecipientID}, nil
}

func (s *fakeStore) ListUnseenSince(_ context.Context, recipientID string, lastSeenID int64, limit int32) ([]notification.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listErr != nil {
		return nil, s.listErr
	}

	var out []notification.Notification
	for _, item := range s.items {
		if item.RecipientID == recipientID && item.ID > lastSeenID {
			out = append(out, item)
			if int32(len(out)) >= limit {
				break
			}
		}
	}
	return out, nil
}

func (s *fakeStore) CountUnread(_ context.Context, recipientID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, item := range s.items {
		if item.RecipientID == recipientID && !item.IsRead {
			count++
		}
	}
	return count, nil
}

func (s *fakeStore) LatestID(_ context.Context, recipientID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.latestErr != nil {
		return 0, s.latestErr
	}

	var latest int64
	for _, item := range s.items {
		if item.RecipientID == recipientID && item.ID > latest {
			latest = item.ID
		}
	}
	return latest, nil
}

// frameRecorder captures written frames and can simulate a dead transport
// after a fixed number of accepted writes.
type frameRecorder struct {
	mu        sync.Mutex
	frames    []Frame
	failAfter int // fail once this many frames were accepted; <0 disables
	ch        chan Frame
}

func newFrameRecorder() *frameRecorder {
	return &frameRecorder{failAfter: -1, ch: make(chan Frame, 128)}
}

func (r *frameRecorder) WriteFrame(frame Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failAfter >= 0 && len(r.frames) >= r.failAfter {
		return errors.New("broken pipe")
	}

	r.frames = append(r.frames, frame)
	r.ch <- frame
	return nil
}

func (r *frameRecorder) recorded() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Frame(nil), r.frames...)
}

func waitFrame(t *testing.T, r *frameRecorder) Frame {
	t.Helper()

	select {
	case frame := <-r.ch:
		return frame
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a frame")
		return Frame{}
	}
}

func waitNotificationFrame(t *testing.T, r *frameRecorder) notification.Notification {
	t.Helper()

	for {
		frame := waitFrame(t, r)
		switch frame.Type {
		case FrameHeartbeat:
			continue
		case FrameNotification:
			return frame.Data.(notification.Notification)
		default:
			t.Fatalf("unexpected frame type %q", frame.Type)
		}
	}
}

func testConfig() Config {
	return Config{
		PollInterval:       5 * time.Millisecond,
		HeartbeatInterval:  time.Hour,
		PageSize:           50,
		MaxDrainIterations: 5,
		IdleTimeout:        time.Hour,
		MaxLifetime:        time.Hour,
		MaxPollFailures:    5,
	}
}

func runSession(s *Session, ctx context.Context) chan error {
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx)
	}()
	return done
}

func waitDone(t *testing.T, done chan error) error {
	t.Helper()

	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("session did not stop in time")
		return nil
	}
}

func TestSessionHandshakeStartsAtLatestID(t *testing.T) {
	store := &fakeStore{}
	store.add("user-1")
	store.add("user-1")
	store.add("user-1")

	recorder := newFrameRecorder()
	session := NewSession("user-1", store, recorder, nil, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	done := runSession(session, ctx)

	frame := waitFrame(t, recorder)
	require.Equal(t, FrameHandshake, frame.Type)

	handshake := frame.Data.(HandshakePayload)
	require.Equal(t, session.ID(), handshake.SessionID)
	require.Equal(t, "user-1", handshake.RecipientID)
	require.Equal(t, int64(3), handshake.LastSeenID)
	require.False(t, handshake.Backfill)

	// Rows that predate the session are never replayed by default.
	time.Sleep(50 * time.Millisecond)
	cancel()
	require.NoError(t, waitDone(t, done))

	for _, frame := range recorder.recorded()[1:] {
		require.NotEqual(t, FrameNotification, frame.Type)
	}
}

func TestSessionDeliversNewNotificationsInOrder(t *testing.T) {
	store := &fakeStore{}
	store.add("user-1") // pre-existing, must not be delivered

	recorder := newFrameRecorder()
	session := NewSession("user-1", store, recorder, nil, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := runSession(session, ctx)

	require.Equal(t, FrameHandshake, waitFrame(t, recorder).Type)

	want := []int64{
		store.add("user-1"),
		store.add("user-1"),
		store.add("user-1"),
	}

	for _, id := range want {
		item := waitNotificationFrame(t, recorder)
		require.Equal(t, id, item.ID)
		require.Equal(t, "user-1", item.RecipientID)
	}

	// Extra polls after the catch-up must not re-deliver anything.
	time.Sleep(50 * time.Millisecond)
	cancel()
	require.NoError(t, waitDone(t, done))

	var delivered []int64
	for _, frame := range recorder.recorded() {
		if frame.Type == FrameNotification {
			delivered = append(delivered, frame.Data.(notification.Notification).ID)
		}
	}
	require.Equal(t, want, delivered)
}

func TestSessionIgnoresOtherRecipients(t *testing.T) {
	store := &fakeStore{}
	recorder := newFrameRecorder()
	session := NewSession("user-1", store, recorder, nil, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	done := runSession(session, ctx)

	require.Equal(t, FrameHandshake, waitFrame(t, recorder).Type)

	store.add("user-2")
	mine := store.add("user-1")
	store.add("user-3")

	item := waitNotificationFrame(t, recorder)
	require.Equal(t, mine, item.ID)

	time.Sleep(50 * time.Millisecond)
	cancel()
	require.NoError(t, waitDone(t, done))

	for _, frame := range recorder.recorded() {
		if frame.Type == FrameNotification {
			require.Equal(t, "user-1", frame.Data.(notification.Notification).RecipientID)
		}
	}
}

func TestSessionBackfillReplaysExistingNotifications(t *testing.T) {
	store := &fakeStore{}
	store.add("user-1")
	store.add("user-1")
	store.add("user-1")

	recorder := newFrameRecorder()
	session := NewSession("user-1", store, recorder, nil, testConfig(), WithBackfill(true))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := runSession(session, ctx)

	frame := waitFrame(t, recorder)
	require.Equal(t, FrameHandshake, frame.Type)

	handshake := frame.Data.(HandshakePayload)
	require.Zero(t, handshake.LastSeenID)
	require.True(t, handshake.Backfill)

	for _, want := range []int64{1, 2, 3} {
		require.Equal(t, want, waitNotificationFrame(t, recorder).ID)
	}

	cancel()
	require.NoError(t, waitDone(t, done))
}

func TestSessionDrainsBacklogAcrossPages(t *testing.T) {
	store := &fakeStore{}
	recorder := newFrameRecorder()

	cfg := testConfig()
	cfg.PageSize = 2
	session := NewSession("user-1", store, recorder, nil, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := runSession(session, ctx)

	require.Equal(t, FrameHandshake, waitFrame(t, recorder).Type)

	const backlog = 7
	want := make([]int64, 0, backlog)
	for i := 0; i < backlog; i++ {
		want = append(want, store.add("user-1"))
	}

	for _, id := range want {
		require.Equal(t, id, waitNotificationFrame(t, recorder).ID)
	}

	cancel()
	require.NoError(t, waitDone(t, done))
}

func TestSessionToleratesTransientStoreFailures(t *testing.T) {
	store := &fakeStore{}
	recorder := newFrameRecorder()
	session := NewSession("user-1", store, recorder, nil, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := runSession(session, ctx)

	require.Equal(t, FrameHandshake, waitFrame(t, recorder).Type)

	store.setListErr(notification.ErrStoreUnavailable)
	time.Sleep(12 * time.Millisecond) // a couple of failed polls, below the threshold
	store.setListErr(nil)

	id := store.add("user-1")
	require.Equal(t, id, waitNotificationFrame(t, recorder).ID)

	cancel()
	require.NoError(t, waitDone(t, done))

	for _, frame := range recorder.recorded() {
		require.NotEqual(t, FrameError, frame.Type)
	}
}

func TestSessionClosesAfterConsecutiveStoreFailures(t *testing.T) {
	store := &fakeStore{}
	store.setListErr(notification.ErrStoreUnavailable)

	recorder := newFrameRecorder()
	cfg := testConfig()
	cfg.MaxPollFailures = 3
	session := NewSession("user-1", store, recorder, nil, cfg)

	done := runSession(session, context.Background())

	err := waitDone(t, done)
	require.ErrorIs(t, err, notification.ErrStoreUnavailable)

	frames := recorder.recorded()
	last := frames[len(frames)-1]
	require.Equal(t, FrameError, last.Type)
	require.Equal(t, ReasonStoreUnavailable, last.Data.(ErrorPayload).Reason)
}

func TestSessionInitialWatermarkFailure(t *testing.T) {
	store := &fakeStore{latestErr: notification.ErrStoreUnavailable}
	recorder := newFrameRecorder()
	session := NewSession("user-1", store, recorder, nil, testConfig())

	done := runSession(session, context.Background())

	err := waitDone(t, done)
	require.ErrorIs(t, err, notification.ErrStoreUnavailable)

	frames := recorder.recorded()
	require.Len(t, frames, 1)
	require.Equal(t, FrameError, frames[0].Type)
}

func TestSessionStopsOnTransportFailure(t *testing.T) {
	store := &fakeStore{}
	recorder := newFrameRecorder()
	session := NewSession("user-1", store, recorder, nil, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := runSession(session, ctx)

	require.Equal(t, FrameHandshake, waitFrame(t, recorder).Type)

	// The transport dies after the handshake; the next delivery attempt
	// must terminate the session.
	recorder.mu.Lock()
	recorder.failAfter = len(recorder.frames)
	recorder.mu.Unlock()

	store.add("user-1")

	err := waitDone(t, done)
	require.ErrorIs(t, err, ErrTransportWrite)
}

func TestSessionIdleTimeout(t *testing.T) {
	store := &fakeStore{}
	recorder := newFrameRecorder()

	cfg := testConfig()
	cfg.IdleTimeout = 30 * time.Millisecond
	session := NewSession("user-1", store, recorder, nil, cfg)

	done := runSession(session, context.Background())
	require.NoError(t, waitDone(t, done))
	require.Equal(t, StateClosed.String(), session.Summary().State)
}

func TestSessionMaxLifetime(t *testing.T) {
	store := &fakeStore{}
	recorder := newFrameRecorder()

	cfg := testConfig()
	cfg.MaxLifetime = 30 * time.Millisecond
	session := NewSession("user-1", store, recorder, nil, cfg)

	done := runSession(session, context.Background())
	require.NoError(t, waitDone(t, done))
}

func TestSessionHeartbeatWhenQuiet(t *testing.T) {
	store := &fakeStore{}
	recorder := newFrameRecorder()

	cfg := testConfig()
	cfg.HeartbeatInterval = 20 * time.Millisecond
	session := NewSession("user-1", store, recorder, nil, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := runSession(session, ctx)

	require.Equal(t, FrameHandshake, waitFrame(t, recorder).Type)
	require.Equal(t, FrameHeartbeat, waitFrame(t, recorder).Type)

	cancel()
	require.NoError(t, waitDone(t, done))
}

func TestSessionCancellationStopsQuickly(t *testing.T) {
	store := &fakeStore{}
	recorder := newFrameRecorder()
	session := NewSession("user-1", store, recorder, nil, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	done := runSession(session, ctx)

	require.Equal(t, FrameHandshake, waitFrame(t, recorder).Type)

	start := time.Now()
	cancel()
	require.NoError(t, waitDone(t, done))
	require.Less(t, time.Since(start), time.Second)
}
