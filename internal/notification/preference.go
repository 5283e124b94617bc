package notification

import (
	"context"
	"errors"

	db "github.com/minhnq/campushub-BE/internal/db/sqlc"
	"github.com/rs/zerolog/log"
)

// ErrPreferenceNotFound means the user never saved notification settings.
var ErrPreferenceNotFound = errors.New("notification preferences not found")

// Preferences holds one user's per-category opt-in flags plus the global
// email toggle.
type Preferences struct {
	Announcement bool `json:"announcement"`
	Task         bool `json:"task"`
	Submission   bool `json:"submission"`
	ExcuseLetter bool `json:"excuse_letter"`
	Grade        bool `json:"grade"`
	Enrollment   bool `json:"enrollment"`
	System       bool `json:"system"`
	EmailEnabled bool `json:"email_enabled"`
}

// DefaultPreferences is the fail-open matrix applied when a user has no
// saved settings: every channel allowed.
func DefaultPreferences() Preferences {
	return Preferences{
		Announcement: true,
		Task:         true,
		Submission:   true,
		ExcuseLetter: true,
		Grade:        true,
		Enrollment:   true,
		System:       true,
		EmailEnabled: true,
	}
}

func (p Preferences) category(c Category) bool {
	switch c {
	case CategoryAnnouncement:
		return p.Announcement
	case CategoryTask:
		return p.Task
	case CategorySubmission:
		return p.Submission
	case CategoryExcuseLetter:
		return p.ExcuseLetter
	case CategoryGrade:
		return p.Grade
	case CategoryEnrollment:
		return p.Enrollment
	case CategorySystem:
		return p.System
	}
	return false
}

// PreferenceSource looks up one user's saved preferences. A missing record
// is reported as ErrPreferenceNotFound.
type PreferenceSource interface {
	GetPreferences(ctx context.Context, userID string) (Preferences, error)
}

// PreferenceFilter gates notification delivery per (recipient, category,
// channel). It is a pure predicate with no side effects.
type PreferenceFilter struct {
	src PreferenceSource
}

func NewPreferenceFilter(src PreferenceSource) *PreferenceFilter {
	return &PreferenceFilter{src: src}
}

// Allows reports whether the recipient accepts the category on the channel.
// Missing records and lookup failures fail open: losing a notification over
// unconfigured preferences is worse than delivering one the user opted out
// of moments ago.
func (f *PreferenceFilter) Allows(ctx context.Context, recipientID string, category Category, channel Channel) bool {
	prefs, err := f.src.GetPreferences(ctx, recipientID)
	if err != nil {
		if !errors.Is(err, ErrPreferenceNotFound) {
			log.Warn().Err(err).Str("recipient_id", recipientID).Msg("preference lookup failed, failing open")
		}
		prefs = DefaultPreferences()
	}

	switch channel {
	case ChannelInApp:
		return prefs.category(category)
	case ChannelEmail:
		return prefs.EmailEnabled && prefs.category(category)
	}
	return false
}

// PGPreferenceSource reads preferences from the notification_settings table.
type PGPreferenceSource struct {
	store db.Store
}

func NewPGPreferenceSource(store db.Store) *PGPreferenceSource {
	return &PGPreferenceSource{store: store}
}

func (s *PGPreferenceSource) GetPreferences(ctx context.Context, userID string) (Preferences, error) {
	row, err := s.store.GetNotificationSetting(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return Preferences{}, ErrPreferenceNotFound
		}
		return Preferences{}, err
	}

	return Preferences{
		Announcement: row.Announcement,
		Task:         row.Task,
		Submission:   row.Submission,
		ExcuseLetter: row.ExcuseLetter,
		Grade:        row.Grade,
		Enrollment:   row.Enrollment,
		System:       row.System,
		EmailEnabled: row.EmailEnabled,
	}, nil
}
