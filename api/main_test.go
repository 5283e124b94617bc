package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	db "github.com/minhnq/campushub-BE/internal/db/sqlc"
	"github.com/minhnq/campushub-BE/internal/token"
	"github.com/minhnq/campushub-BE/internal/util"
	"github.com/stretchr/testify/require"
)

const testTokenSecretKey = "12345678901234567890123456789012"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// memStore is an in-memory db.Store for handler tests.
type memStore struct {
	mu            sync.Mutex
	nextID        int64
	notifications map[int64]db.Notification
	settings      map[string]db.NotificationSetting
	emails        map[string]string
	createErr     error
}

func newMemStore() *memStore {
	return &memStore{
		notifications: make(map[int64]db.Notification),
		settings:      make(map[string]db.NotificationSetting),
		emails:        make(map[string]string),
	}
}

func (s *memStore) Ping(_ context.Context) error { return nil }

func (s *memStore) CreateNotification(_ context.Context, arg db.CreateNotificationParams) (db.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.createErr != nil {
		return db.Notification{}, s.createErr
	}

	s.nextID++
	n := db.Notification{
		ID:          s.nextID,
		RecipientID: arg.RecipientID,
		Category:    arg.Category,
		Title:       arg.Title,
		Body:        arg.Body,
		RelatedID:   arg.RelatedID,
		RelatedType: arg.RelatedType,
		ScopeTag:    arg.ScopeTag,
		IsUrgent:    arg.IsUrgent,
		CreatedAt:   time.Now(),
	}
	s.notifications[n.ID] = n
	return n, nil
}

func (s *memStore) GetNotificationByID(_ context.Context, id int64) (db.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[id]
	if !ok {
		return db.Notification{}, db.ErrRecordNotFound
	}
	return n, nil
}

func (s *memStore) ListNotificationsByRecipient(_ context.Context, arg db.ListNotificationsByRecipientParams) ([]db.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var all []db.Notification
	for _, n := range s.notifications {
		if n.RecipientID == arg.RecipientID {
			all = append(all, n)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })

	if int(arg.Offset) >= len(all) {
		return []db.Notification{}, nil
	}
	all = all[arg.Offset:]
	if int32(len(all)) > arg.Limit {
		all = all[:arg.Limit]
	}
	return all, nil
}

func (s *memStore) ListUnseenNotifications(_ context.Context, arg db.ListUnseenNotificationsParams) ([]db.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []db.Notification
	for _, n := range s.notifications {
		if n.RecipientID == arg.RecipientID && n.ID > arg.LastSeenID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if int32(len(out)) > arg.Limit {
		out = out[:arg.Limit]
	}
	return out, nil
}

func (s *memStore) CountUnreadNotifications(_ context.Context, recipientID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, n := range s.notifications {
		if n.RecipientID == recipientID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (s *memStore) GetLatestNotificationID(_ context.Context, recipientID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var latest int64
	for _, n := range s.notifications {
		if n.RecipientID == recipientID && n.ID > latest {
			latest = n.ID
		}
	}
	return latest, nil
}

func (s *memStore) MarkNotificationRead(_ context.Context, arg db.MarkNotificationReadParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[arg.ID]
	if !ok || n.RecipientID != arg.RecipientID {
		return db.ErrRecordNotFound
	}
	n.IsRead = true
	s.notifications[arg.ID] = n
	return nil
}

func (s *memStore) MarkAllNotificationsRead(_ context.Context, recipientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, n := range s.notifications {
		if n.RecipientID == recipientID {
			n.IsRead = true
			s.notifications[id] = n
		}
	}
	return nil
}

func (s *memStore) DeleteReadNotificationsBefore(_ context.Context, createdBefore time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for id, n := range s.notifications {
		if n.IsRead && n.CreatedAt.Before(createdBefore) {
			delete(s.notifications, id)
			deleted++
		}
	}
	return deleted, nil
}

func (s *memStore) GetNotificationSetting(_ context.Context, userID string) (db.NotificationSetting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	setting, ok := s.settings[userID]
	if !ok {
		return db.NotificationSetting{}, db.ErrRecordNotFound
	}
	return setting, nil
}

func (s *memStore) UpsertNotificationSetting(_ context.Context, arg db.UpsertNotificationSettingParams) (db.NotificationSetting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	setting := db.NotificationSetting{
		UserID:       arg.UserID,
		Announcement: arg.Announcement,
		Task:         arg.Task,
		Submission:   arg.Submission,
		ExcuseLetter: arg.ExcuseLetter,
		Grade:        arg.Grade,
		Enrollment:   arg.Enrollment,
		System:       arg.System,
		EmailEnabled: arg.EmailEnabled,
		UpdatedAt:    time.Now(),
	}
	s.settings[arg.UserID] = setting
	return setting, nil
}

func (s *memStore) GetUserEmail(_ context.Context, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email, ok := s.emails[id]
	if !ok {
		return "", db.ErrRecordNotFound
	}
	return email, nil
}

var _ db.Store = (*memStore)(nil)

func newTestServer(t *testing.T, store db.Store) *Server {
	t.Helper()

	config := &util.Config{
		AllowedOrigins:      []string{"http://localhost:3000"},
		TokenSecretKey:      testTokenSecretKey,
		AccessTokenDuration: time.Minute,
		StreamPollInterval:  5 * time.Millisecond,
	}

	server, err := NewServer(store, nil, nil, config, nil)
	require.NoError(t, err)
	return server
}

func addAuthorization(t *testing.T, req *http.Request, tokenMaker token.Maker, userID, role string, duration time.Duration) {
	t.Helper()

	accessToken, payload, err := tokenMaker.CreateToken(userID, role, duration)
	require.NoError(t, err)
	require.NotNil(t, payload)

	req.Header.Set(authorizationHeaderKey, fmt.Sprintf("%s %s", authorizationTypeBearer, accessToken))
}

func serveRequest(server *Server, req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	server.router.ServeHTTP(recorder, req)
	return recorder
}
