package ports

import (
	"context"
)

type Auth interface {
	// Login verifies credentials and returns a signed access token for the
	// gateway to verify and translate into trusted identity headers.
	Login(ctx context.Context, username, password string) (string, error)
	// RequestPasswordReset creates a single-use verification token for the
	// user owning email. The token string is returned so the (out-of-scope)
	// mailer can deliver it.
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
}
