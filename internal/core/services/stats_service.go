package services

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/whowinninglilly/contest/internal/core/domain"
	"github.com/whowinninglilly/contest/internal/core/ports"
)

type statsService struct {
	store ports.KeyValueStore
	now   func() time.Time
}

func NewStatsService(store ports.KeyValueStore) ports.StatsService {
	return &statsService{
		store: store,
		now:   time.Now,
	}
}

// Read fetches the three counters concurrently. Reads are isolated per key:
// a missing or unreadable counter is reported as zero rather than failing
// the snapshot.
func (s *statsService) Read(ctx context.Context) *domain.Stats {
	var total, today, winners int

	var wg sync.WaitGroup
	for _, c := range []struct {
		key  string
		dest *int
	}{
		{domain.KeyTotalAttempts, &total},
		{domain.AttemptsKey(s.now()), &today},
		{domain.KeyTotalWinners, &winners},
	} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			*c.dest = s.readCounter(ctx, c.key)
		}()
	}
	wg.Wait()

	return &domain.Stats{
		TotalAttempts:   total,
		AttemptsToday:   today,
		Winners:         winners,
		PrizesRemaining: max(0, domain.PrizePool-winners),
	}
}

func (s *statsService) readCounter(ctx context.Context, key string) int {
	value, found, err := s.store.Get(ctx, key)
	if err != nil {
		slog.Error("counter read failed", "key", key, "error", err)
		return 0
	}
	if !found {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Error("counter value is not numeric", "key", key, "value", value)
		return 0
	}
	return n
}
