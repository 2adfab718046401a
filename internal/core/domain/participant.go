package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participant is the durable proof that an email has entered the contest.
// It is written at most once per email and never updated; the store expires
// it after ParticipantTTL.
type Participant struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	IsWinner  bool      `json:"isWinner"`
	VideoLink string    `json:"videoLink"`
	Timestamp time.Time `json:"timestamp"`
}

// ParticipantTTL is how long an entry record lives in the store.
const ParticipantTTL = 30 * 24 * time.Hour

// ParticipantKey builds the store key for an email. The email is used
// exactly as submitted, case-sensitive and untrimmed.
func ParticipantKey(email string) string {
	return "participant:" + email
}
