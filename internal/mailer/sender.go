package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/wneessen/go-mail"
)

const (
	smtpGmailHost = "smtp.gmail.com"
	smtpGmailPort = 587

	senderEmailName    = "CampusHub"
	senderEmailAddress = "campushub.noreply@gmail.com"
)

// NotificationEmail is the rendered content of one notification email.
type NotificationEmail struct {
	Category   string
	Title      string
	Body       string
	OccurredAt time.Time
}

// EmailSender delivers notification emails. The worker depends on this
// interface so tests can substitute a recording fake.
type EmailSender interface {
	SendNotificationEmail(ctx context.Context, to string, content NotificationEmail) error
}

type GmailSender struct {
	client *mail.Client
}

func NewGmailSender(username, password string) (*GmailSender, error) {
	client, err := mail.NewClient(smtpGmailHost, mail.WithPort(smtpGmailPort), mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(username), mail.WithPassword(password))
	if err != nil {
		return nil, err
	}
	if err = client.DialWithContext(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to SMTP server: %w", err)
	}

	return &GmailSender{
		client: client,
	}, nil
}

func (sender *GmailSender) SendNotificationEmail(ctx context.Context, to string, content NotificationEmail) error {
	msg := mail.NewMsg()

	err := msg.FromFormat(senderEmailName, senderEmailAddress)
	if err != nil {
		return fmt.Errorf("failed to set From address: %w", err)
	}

	if err = msg.To(to); err != nil {
		return fmt.Errorf("failed to set To address: %w", err)
	}

	msg.Subject(fmt.Sprintf("[CampusHub] %s", content.Title))

	occurred := content.OccurredAt
	if occurred.IsZero() {
		occurred = time.Now()
	}
	body := fmt.Sprintf("<p>%s</p><p><i>%s · %s</i></p>",
		content.Body, content.Category, humanize.Time(occurred))
	msg.SetBodyString(mail.TypeTextHTML, body)

	if err = sender.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
