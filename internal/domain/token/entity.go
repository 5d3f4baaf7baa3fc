package token

import (
	"time"

	"hospital-manager-api/internal/domain/user"
)

type (
	ID uint64
	// VerificationToken is consumed exactly once via MarkAsUsed and is
	// invalid after expiration or after use. Its lifecycle is independent of
	// the owning user's.
	VerificationToken struct {
		ID        ID
		UserID    user.ID
		Token     string
		Used      bool
		ExpiresAt time.Time
		CreatedAt time.Time
	}
)

func (t *VerificationToken) ValidAt(now time.Time) bool {
	return !t.Used && now.Before(t.ExpiresAt)
}
