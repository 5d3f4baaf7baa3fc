package token

import (
	domain "hospital-manager-api/internal/domain/token"
	"hospital-manager-api/internal/domain/user"
)

func fromDBModel(model *VerificationToken) *domain.VerificationToken {
	return &domain.VerificationToken{
		ID:        domain.ID(model.ID),
		UserID:    user.ID(model.UserID),
		Token:     model.Token,
		Used:      model.Used,
		ExpiresAt: model.ExpiresAt,
		CreatedAt: model.CreatedAt,
	}
}
