package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// RecipientKind is the closed set of recipient-resolution strategies.
type RecipientKind string

const (
	// RecipientsExplicit is a literal list of user ids.
	RecipientsExplicit RecipientKind = "explicit"
	// RecipientsRoster is a class/section roster the caller has already
	// expanded to member ids; the roster label becomes the scope tag.
	RecipientsRoster RecipientKind = "roster"
)

// RecipientSource is a tagged variant over the resolution strategies.
// Roster expansion happens in the calling CRUD layer, never here.
type RecipientSource struct {
	Kind        RecipientKind
	UserIDs     []string // explicit
	RosterLabel string   // roster
	Members     []string // roster
}

func ExplicitRecipients(userIDs ...string) RecipientSource {
	return RecipientSource{Kind: RecipientsExplicit, UserIDs: userIDs}
}

func RosterRecipients(label string, members []string) RecipientSource {
	return RecipientSource{Kind: RecipientsRoster, RosterLabel: label, Members: members}
}

func (s RecipientSource) resolve() []string {
	switch s.Kind {
	case RecipientsExplicit:
		return s.UserIDs
	case RecipientsRoster:
		return s.Members
	}
	return nil
}

// Event is one domain occurrence to fan out (announcement posted, task
// assigned, enrollment changed, grade released).
type Event struct {
	Category    Category
	Title       string
	Body        string
	RelatedID   string
	RelatedType string
	ScopeTag    string
	Urgent      bool
	OccurredAt  time.Time
	Recipients  RecipientSource
}

// RecipientOutcome reports what happened for one recipient of a dispatch.
type RecipientOutcome struct {
	RecipientID    string `json:"recipient_id"`
	NotificationID int64  `json:"notification_id,omitempty"`
	Created        bool   `json:"created"`
	Suppressed     bool   `json:"suppressed"`
	EmailQueued    bool   `json:"email_queued"`
	Err            error  `json:"-"`
	Error          string `json:"error,omitempty"`
}

// FanoutResult is the per-recipient outcome list of one Dispatch call.
// Dispatch is not transactional across recipients; partial success is
// expected and must be read per recipient, not collapsed to a boolean.
type FanoutResult struct {
	Outcomes []RecipientOutcome `json:"outcomes"`
}

func (r FanoutResult) Created() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Created {
			n++
		}
	}
	return n
}

func (r FanoutResult) Suppressed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Suppressed {
			n++
		}
	}
	return n
}

func (r FanoutResult) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}

// EmailPayload is the out-of-band email side effect of one recipient's
// notification. It is queued fire-and-forget; a failed email never rolls
// back the notification row.
type EmailPayload struct {
	RecipientID string    `json:"recipient_id"`
	Category    Category  `json:"category"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EmailQueue enqueues the email side effect for asynchronous delivery.
type EmailQueue interface {
	EnqueueNotificationEmail(ctx context.Context, payload EmailPayload) error
}

// Alerter is an out-of-band operational alert channel. Implementations must
// not block and must never surface errors back to the caller.
type Alerter interface {
	Alert(ctx context.Context, message string)
}

// Dispatcher fans a domain event out into one notification row per
// recipient, applying the preference filter per (recipient, channel).
type Dispatcher struct {
	store   Store
	prefs   *PreferenceFilter
	emails  EmailQueue
	alerter Alerter
}

// NewDispatcher wires the dispatcher. emails and alerter may be nil: a nil
// email queue disables the email side effect, a nil alerter disables ops
// alerts.
func NewDispatcher(store Store, prefs *PreferenceFilter, emails EmailQueue, alerter Alerter) *Dispatcher {
	return &Dispatcher{
		store:   store,
		prefs:   prefs,
		emails:  emails,
		alerter: alerter,
	}
}

// Dispatch creates one notification per resolved recipient. It is
// synchronous with respect to notification persistence and asynchronous
// only with respect to email. One bad recipient never prevents notifying
// the rest; store failures are reported per recipient in the result.
func (d *Dispatcher) Dispatch(ctx context.Context, event Event) FanoutResult {
	recipients := event.Recipients.resolve()
	result := FanoutResult{Outcomes: make([]RecipientOutcome, 0, len(recipients))}

	occurredAt := event.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	for _, recipientID := range recipients {
		outcome := RecipientOutcome{RecipientID: recipientID}

		if recipientID == "" {
			outcome.Err = ErrInvalidRecipient
			outcome.Error = ErrInvalidRecipient.Error()
			result.Outcomes = append(result.Outcomes, outcome)
			continue
		}

		if d.prefs.Allows(ctx, recipientID, event.Category, ChannelInApp) {
			created, err := d.store.Create(ctx, CreateParams{
				RecipientID: recipientID,
				Category:    event.Category,
				Title:       event.Title,
				Body:        event.Body,
				RelatedID:   event.RelatedID,
				RelatedType: event.RelatedType,
				ScopeTag:    event.ScopeTag,
				IsUrgent:    event.Urgent,
			})
			if err != nil {
				log.Error().Err(err).
					Str("recipient_id", recipientID).
					Str("category", string(event.Category)).
					Msg("failed to create notification")
				outcome.Err = err
				outcome.Error = err.Error()
			} else {
				outcome.Created = true
				outcome.NotificationID = created.ID
			}
		} else {
			// Suppression is silent: no row, no error back to the caller.
			outcome.Suppressed = true
		}

		// The email channel is checked independently of the in-app outcome.
		if d.emails != nil && d.prefs.Allows(ctx, recipientID, event.Category, ChannelEmail) {
			err := d.emails.EnqueueNotificationEmail(ctx, EmailPayload{
				RecipientID: recipientID,
				Category:    event.Category,
				Title:       event.Title,
				Body:        event.Body,
				OccurredAt:  occurredAt,
			})
			if err != nil {
				// Logged and swallowed: email failures never fail the dispatch.
				log.Error().Err(err).
					Str("recipient_id", recipientID).
					Msg("failed to enqueue notification email")
			} else {
				outcome.EmailQueued = true
			}
		}

		result.Outcomes = append(result.Outcomes, outcome)
	}

	if failed := result.Failed(); failed > 0 && d.alerter != nil {
		d.alerter.Alert(ctx, fmt.Sprintf(
			"notification fan-out (%s) finished with %d/%d failed recipients",
			event.Category, failed, len(recipients),
		))
	}

	return result
}
