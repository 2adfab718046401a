package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/whowinninglilly/contest/internal/core/domain"
)

func newTestStatsService(store *fakeStore) *statsService {
	return NewStatsService(store).(*statsService)
}

func TestStatsAllCountersAbsent(t *testing.T) {
	service := newTestStatsService(newFakeStore())

	stats := service.Read(context.Background())

	assert.Equal(t, &domain.Stats{
		TotalAttempts:   0,
		AttemptsToday:   0,
		Winners:         0,
		PrizesRemaining: 10,
	}, stats)
}

func TestStatsReportsCounters(t *testing.T) {
	store := newFakeStore()
	store.data[domain.KeyTotalAttempts] = "42"
	store.data[domain.AttemptsKey(time.Now())] = "7"
	store.data[domain.KeyTotalWinners] = "3"
	service := newTestStatsService(store)

	stats := service.Read(context.Background())

	assert.Equal(t, 42, stats.TotalAttempts)
	assert.Equal(t, 7, stats.AttemptsToday)
	assert.Equal(t, 3, stats.Winners)
	assert.Equal(t, 7, stats.PrizesRemaining)
}

func TestStatsPrizesRemainingNeverNegative(t *testing.T) {
	store := newFakeStore()
	store.data[domain.KeyTotalWinners] = "15"
	service := newTestStatsService(store)

	stats := service.Read(context.Background())

	assert.Equal(t, 15, stats.Winners)
	assert.Equal(t, 0, stats.PrizesRemaining)
}

func TestStatsIsolatesFailedReads(t *testing.T) {
	store := newFakeStore()
	store.data[domain.KeyTotalAttempts] = "100"
	store.data[domain.KeyTotalWinners] = "2"
	store.getErrs[domain.AttemptsKey(time.Now())] = errors.New("read timeout")
	service := newTestStatsService(store)

	stats := service.Read(context.Background())

	assert.Equal(t, 100, stats.TotalAttempts)
	assert.Equal(t, 0, stats.AttemptsToday, "failed read substitutes zero")
	assert.Equal(t, 2, stats.Winners)
	assert.Equal(t, 8, stats.PrizesRemaining)
}

func TestStatsTreatsGarbageAsZero(t *testing.T) {
	store := newFakeStore()
	store.data[domain.KeyTotalAttempts] = "not-a-number"
	service := newTestStatsService(store)

	stats := service.Read(context.Background())

	assert.Equal(t, 0, stats.TotalAttempts)
	assert.Equal(t, 10, stats.PrizesRemaining)
}
