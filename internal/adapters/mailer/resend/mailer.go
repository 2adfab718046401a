package resend

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"github.com/whowinninglilly/contest/internal/core/ports"
)

const fromAddress = "WhoWinningLilly <onboarding@resend.dev>"

type notificationSender struct {
	client *resend.Client
}

func NewNotificationSender(apiKey string) ports.NotificationSender {
	return &notificationSender{client: resend.NewClient(apiKey)}
}

func (m *notificationSender) Send(ctx context.Context, to, subject, body string) error {
	params := &resend.SendEmailRequest{
		From:    fromAddress,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	}
	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
