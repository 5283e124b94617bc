package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	db "github.com/minhnq/campushub-BE/internal/db/sqlc"
)

var (
	// ErrStoreUnavailable marks a transient failure reaching the backing store.
	ErrStoreUnavailable = errors.New("notification store unavailable")
	// ErrInvalidRecipient marks a recipient that can never receive notifications.
	ErrInvalidRecipient = errors.New("invalid recipient")
)

// Notification is one delivered row, shaped for client rendering.
type Notification struct {
	ID          int64     `json:"id"`
	RecipientID string    `json:"recipient_id"`
	Category    Category  `json:"category"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	RelatedID   string    `json:"related_id,omitempty"`
	RelatedType string    `json:"related_type,omitempty"`
	ScopeTag    string    `json:"scope_tag,omitempty"`
	IsRead      bool      `json:"is_read"`
	IsUrgent    bool      `json:"is_urgent"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateParams carries everything needed to append one notification row.
type CreateParams struct {
	RecipientID string
	Category    Category
	Title       string
	Body        string
	RelatedID   string
	RelatedType string
	ScopeTag    string
	IsUrgent    bool
}

// Store is the durable notification record consumed by the dispatcher and
// the stream sessions. Ids assigned by Create are strictly increasing in
// creation order; stream sessions rely on that to use "highest id seen" as
// their de-duplication watermark.
type Store interface {
	Create(ctx context.Context, arg CreateParams) (Notification, error)
	// ListUnseenSince returns notifications for recipientID with id >
	// lastSeenID, ordered by id ascending, capped at limit.
	ListUnseenSince(ctx context.Context, recipientID string, lastSeenID int64, limit int32) ([]Notification, error)
	CountUnread(ctx context.Context, recipientID string) (int64, error)
	// LatestID returns the highest notification id currently stored for the
	// recipient, or 0 when none exist.
	LatestID(ctx context.Context, recipientID string) (int64, error)
}

// PGStore adapts the sqlc-backed db.Store to the narrow Store contract.
type PGStore struct {
	store db.Store
}

func NewPGStore(store db.Store) *PGStore {
	return &PGStore{store: store}
}

func (s *PGStore) Create(ctx context.Context, arg CreateParams) (Notification, error) {
	row, err := s.store.CreateNotification(ctx, db.CreateNotificationParams{
		RecipientID: arg.RecipientID,
		Category:    db.NotificationCategory(arg.Category),
		Title:       arg.Title,
		Body:        arg.Body,
		RelatedID:   optional(arg.RelatedID),
		RelatedType: optional(arg.RelatedType),
		ScopeTag:    optional(arg.ScopeTag),
		IsUrgent:    arg.IsUrgent,
	})
	if err != nil {
		return Notification{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return fromRow(row), nil
}

func (s *PGStore) ListUnseenSince(ctx context.Context, recipientID string, lastSeenID int64, limit int32) ([]Notification, error) {
	rows, err := s.store.ListUnseenNotifications(ctx, db.ListUnseenNotificationsParams{
		RecipientID: recipientID,
		LastSeenID:  lastSeenID,
		Limit:       limit,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	items := make([]Notification, len(rows))
	for i, row := range rows {
		items[i] = fromRow(row)
	}
	return items, nil
}

func (s *PGStore) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	count, err := s.store.CountUnreadNotifications(ctx, recipientID)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return count, nil
}

func (s *PGStore) LatestID(ctx context.Context, recipientID string) (int64, error) {
	id, err := s.store.GetLatestNotificationID(ctx, recipientID)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return id, nil
}

func fromRow(row db.Notification) Notification {
	return Notification{
		ID:          row.ID,
		RecipientID: row.RecipientID,
		Category:    Category(row.Category),
		Title:       row.Title,
		Body:        row.Body,
		RelatedID:   deref(row.RelatedID),
		RelatedType: deref(row.RelatedType),
		ScopeTag:    deref(row.ScopeTag),
		IsRead:      row.IsRead,
		IsUrgent:    row.IsUrgent,
		CreatedAt:   row.CreatedAt,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
