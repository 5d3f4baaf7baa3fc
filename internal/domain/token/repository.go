package token

import (
	"context"
)

type Repository interface {
	CreateToken(ctx context.Context, req VerificationToken) (*VerificationToken, error)
	FetchByToken(ctx context.Context, tok string) (*VerificationToken, error)
	// MarkAsUsed flips the used flag with a conditional update and reports
	// whether this call was the one that consumed the token.
	MarkAsUsed(ctx context.Context, id ID) (bool, error)
}
