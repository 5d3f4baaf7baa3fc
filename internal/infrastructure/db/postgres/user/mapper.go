package user

import (
	domain "hospital-manager-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	return &domain.User{
		ID:           domain.ID(model.ID),
		Version:      model.Version,
		Username:     model.Username,
		PasswordHash: model.PasswordHash,
		Email:        model.Email,
		Gender:       model.Gender,
		FirstName:    model.FirstName,
		LastName:     model.LastName,
		CenterID:     model.CenterID,
		Roles:        model.Roles,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,

		Enabled: model.Enabled,
	}
}

func fromDBModels(models *Users) domain.Users {
	us := make(domain.Users, len(*models))
	for idx, u := range *models {
		us[idx] = fromDBModel(u)
	}

	return us
}
