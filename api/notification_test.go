package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	db "github.com/minhnq/campushub-BE/internal/db/sqlc"
	"github.com/stretchr/testify/require"
)

func seedNotification(t *testing.T, store *memStore, recipientID string) db.Notification {
	t.Helper()

	n, err := store.CreateNotification(context.Background(), db.CreateNotificationParams{
		RecipientID: recipientID,
		Category:    db.NotificationCategoryAnnouncement,
		Title:       "Midterm schedule",
		Body:        "The midterm is moved to Friday.",
	})
	require.NoError(t, err)
	return n
}

func TestListNotifications(t *testing.T) {
	store := newMemStore()
	server := newTestServer(t, store)

	for i := 0; i < 3; i++ {
		seedNotification(t, store, "user-1")
	}
	seedNotification(t, store, "someone-else")

	req, err := http.NewRequest(http.MethodGet, "/v1/notifications", nil)
	require.NoError(t, err)
	addAuthorization(t, req, server.tokenMaker, "user-1", RoleStudent, time.Minute)

	recorder := serveRequest(server, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got []db.Notification
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Len(t, got, 3)

	// Newest first, and never another user's rows.
	require.Greater(t, got[0].ID, got[1].ID)
	for _, n := range got {
		require.Equal(t, "user-1", n.RecipientID)
	}
}

func TestListNotificationsRequiresAuth(t *testing.T) {
	server := newTestServer(t, newMemStore())

	req, err := http.NewRequest(http.MethodGet, "/v1/notifications", nil)
	require.NoError(t, err)

	recorder := serveRequest(server, req)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestListNotificationsRejectsBadPaging(t *testing.T) {
	server := newTestServer(t, newMemStore())

	req, err := http.NewRequest(http.MethodGet, "/v1/notifications?page=0", nil)
	require.NoError(t, err)
	addAuthorization(t, req, server.tokenMaker, "user-1", RoleStudent, time.Minute)

	recorder := serveRequest(server, req)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCountUnreadNotifications(t *testing.T) {
	store := newMemStore()
	server := newTestServer(t, store)

	seedNotification(t, store, "user-1")
	seedNotification(t, store, "user-1")

	req, err := http.NewRequest(http.MethodGet, "/v1/notifications/unread-count", nil)
	require.NoError(t, err)
	addAuthorization(t, req, server.tokenMaker, "user-1", RoleStudent, time.Minute)

	recorder := serveRequest(server, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got map[string]int64
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, int64(2), got["unread_count"])
}

func TestMarkNotificationRead(t *testing.T) {
	store := newMemStore()
	server := newTestServer(t, store)

	n := seedNotification(t, store, "user-1")

	req, err := http.NewRequest(http.MethodPatch, fmt.Sprintf("/v1/notifications/%d/read", n.ID), nil)
	require.NoError(t, err)
	addAuthorization(t, req, server.tokenMaker, "user-1", RoleStudent, time.Minute)

	recorder := serveRequest(server, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	updated, err := store.GetNotificationByID(context.Background(), n.ID)
	require.NoError(t, err)
	require.True(t, updated.IsRead)
}

func TestMarkNotificationReadOwnershipEnforced(t *testing.T) {
	store := newMemStore()
	server := newTestServer(t, store)

	n := seedNotification(t, store, "owner")

	req, err := http.NewRequest(http.MethodPatch, fmt.Sprintf("/v1/notifications/%d/read", n.ID), nil)
	require.NoError(t, err)
	addAuthorization(t, req, server.tokenMaker, "intruder", RoleStudent, time.Minute)

	recorder := serveRequest(server, req)
	require.Equal(t, http.StatusForbidden, recorder.Code)

	unchanged, err := store.GetNotificationByID(context.Background(), n.ID)
	require.NoError(t, err)
	require.False(t, unchanged.IsRead)
}

func TestMarkNotificationReadNotFound(t *testing.T) {
	server := newTestServer(t, newMemStore())

	req, err := http.NewRequest(http.MethodPatch, "/v1/notifications/999/read", nil)
	require.NoError(t, err)
	addAuthorization(t, req, server.tokenMaker, "user-1", RoleStudent, time.Minute)

	recorder := serveRequest(server, req)
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestMarkAllNotificationsRead(t *testing.T) {
	store := newMemStore()
	server := newTestServer(t, store)

	seedNotification(t, store, "user-1")
	seedNotification(t, store, "user-1")
	other := seedNotification(t, store, "someone-else")

	req, err := http.NewRequest(http.MethodPatch, "/v1/notifications/read-all", nil)
	require.NoError(t, err)
	addAuthorization(t, req, server.tokenMaker, "user-1", RoleStudent, time.Minute)

	recorder := serveRequest(server, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	count, err := store.CountUnreadNotifications(context.Background(), "user-1")
	require.NoError(t, err)
	require.Zero(t, count)

	// Other users' unread state is untouched.
	untouched, err := store.GetNotificationByID(context.Background(), other.ID)
	require.NoError(t, err)
	require.False(t, untouched.IsRead)
}
