package ports

import "context"

// NotificationSender delivers the entry-confirmation email. Callers treat it
// as fire-and-forget: a send failure never propagates to the request outcome.
type NotificationSender interface {
	Send(ctx context.Context, to, subject, body string) error
}
