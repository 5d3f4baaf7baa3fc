package auth

type (
	LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	LoginResponse struct {
		AccessToken string `json:"access_token"`
	}

	PasswordResetRequest struct {
		Email string `json:"email"`
	}
	// PasswordResetResponse returns the token directly; mail delivery is
	// handled outside this service.
	PasswordResetResponse struct {
		Token string `json:"token"`
	}

	PasswordResetConfirmRequest struct {
		Token       string `json:"token"`
		NewPassword string `json:"new_password"`
	}
)
