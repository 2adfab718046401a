package domain

import "time"

// Counter keys in the store. Daily counters are suffixed with the UTC
// calendar date and accumulate indefinitely.
const (
	KeyTotalAttempts = "total_attempts"
	KeyTotalWinners  = "total_winners"
)

// AttemptsKey returns the daily-attempts counter key for the given time.
func AttemptsKey(t time.Time) string {
	return "attempts_" + t.UTC().Format("2006-01-02")
}

// PrizePool is the total number of prizes available for the contest.
const PrizePool = 10

// Stats is the aggregate counter snapshot reported by the stats endpoint.
// PrizesRemaining is a point-in-time estimate, not a reservation.
type Stats struct {
	TotalAttempts   int `json:"totalAttempts"`
	AttemptsToday   int `json:"attemptsToday"`
	Winners         int `json:"winners"`
	PrizesRemaining int `json:"prizesRemaining"`
}
