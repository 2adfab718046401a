package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/whowinninglilly/contest/internal/core/domain"
	"github.com/whowinninglilly/contest/internal/core/ports"
)

// Same shape the frontend enforces: non-whitespace local part, one @, a
// domain with a dot, no embedded whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const notificationSubject = "Your WhoWinningLilly Fate Revealed"

type contestService struct {
	store  ports.KeyValueStore
	mailer ports.NotificationSender
	draw   func() (bool, string)
	now    func() time.Time
}

func NewContestService(store ports.KeyValueStore, mailer ports.NotificationSender) ports.ContestService {
	return &contestService{
		store:  store,
		mailer: mailer,
		draw:   drawOutcome,
		now:    time.Now,
	}
}

// Submit runs the participation workflow: validate, guard against a second
// entry, draw an outcome, persist the entry record, then fire the
// best-effort side effects (counters, email). Only the required path can
// fail the request.
func (s *contestService) Submit(ctx context.Context, email string) (*ports.SubmissionResult, error) {
	if !emailPattern.MatchString(email) {
		return nil, domain.ErrInvalidEmail
	}

	// A failed lookup must never pass as "not found": that would let a
	// store outage bypass the one-entry guard.
	key := domain.ParticipantKey(email)
	_, found, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, &domain.StoreError{Message: "Database error. Please try again.", Err: err}
	}
	if found {
		return nil, domain.ErrAlreadyEntered
	}

	isWinner, videoLink := s.draw()

	participant := &domain.Participant{
		ID:        uuid.New(),
		Email:     email,
		IsWinner:  isWinner,
		VideoLink: videoLink,
		Timestamp: s.now().UTC(),
	}
	record, err := json.Marshal(participant)
	if err != nil {
		return nil, &domain.StoreError{Message: "Failed to save your entry. Please try again.", Err: err}
	}

	// SETNX closes the window between the existence check and the write: if
	// a concurrent request for the same email got here first, this one
	// reports a duplicate instead of a second accepted entry.
	stored, err := s.store.SetNX(ctx, key, string(record), domain.ParticipantTTL)
	if err != nil {
		return nil, &domain.StoreError{Message: "Failed to save your entry. Please try again.", Err: err}
	}
	if !stored {
		return nil, domain.ErrAlreadyEntered
	}

	s.updateCounters(ctx, isWinner)
	s.notify(ctx, participant)

	return &ports.SubmissionResult{IsWinner: isWinner}, nil
}

// updateCounters is best-effort: the entry record is already durable, so a
// counter failure is logged and swallowed.
func (s *contestService) updateCounters(ctx context.Context, isWinner bool) {
	keys := []string{domain.KeyTotalAttempts, domain.AttemptsKey(s.now())}
	if isWinner {
		keys = append(keys, domain.KeyTotalWinners)
	}
	for _, key := range keys {
		if _, err := s.store.Incr(ctx, key); err != nil {
			slog.Error("counter update failed", "key", key, "error", err)
		}
	}
}

// notify is best-effort: a transient mail-provider failure must not look
// like a failed contest entry, and the duplicate guard is already written.
func (s *contestService) notify(ctx context.Context, p *domain.Participant) {
	body := notificationBody(p.IsWinner, p.VideoLink)
	if err := s.mailer.Send(ctx, p.Email, notificationSubject, body); err != nil {
		slog.Error("notification send failed", "email", p.Email, "error", err)
	}
}

// notificationBody renders the entry email. The non-winner copy deliberately
// withholds the outcome; only the winner copy states it outright.
func notificationBody(isWinner bool, videoLink string) string {
	outcome := "If you received The Red Spider Lily, you are a winner! DM @WhoWinningLilly on Instagram immediately to claim your prize."
	if isWinner {
		outcome = "Congratulations! You received The Red Spider Lily and are a WINNER! DM @WhoWinningLilly on Instagram immediately to claim your prize."
	}
	return fmt.Sprintf(`
Thank you for participating! Here is your mystery video:

%s

%s

One entry per person. Good luck!
`, videoLink, outcome)
}
