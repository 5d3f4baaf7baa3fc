package token

import (
	"time"
)

type VerificationToken struct {
	ID        uint64
	UserID    uint64
	Token     string
	Used      bool
	ExpiresAt time.Time
	CreatedAt time.Time
}
