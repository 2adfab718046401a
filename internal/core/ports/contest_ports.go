package ports

import (
	"context"

	"github.com/whowinninglilly/contest/internal/core/domain"
)

type SubmissionResult struct {
	IsWinner bool
}

// ContestService runs the participation workflow for a single email.
type ContestService interface {
	Submit(ctx context.Context, email string) (*SubmissionResult, error)
}

// StatsService reads the aggregate counters. Reads never fail as a whole:
// an unreadable or missing counter is reported as zero.
type StatsService interface {
	Read(ctx context.Context) *domain.Stats
}
