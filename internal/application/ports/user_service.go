package ports

import (
	"context"

	"hospital-manager-api/internal/domain/user"
)

type UserService interface {
	FindUsers(ctx context.Context, page int) (user.Users, error)
	FindUserByID(ctx context.Context, id user.ID, includeDisabled bool) (*user.User, error)
	FindUserByUsername(ctx context.Context, username string) (*user.User, error)
	RegisterUser(ctx context.Context, u user.User, password string) (*user.User, error)
	UpdateUser(ctx context.Context, u user.User) (*user.User, error)
	// DeleteUser disables the user; hard physically removes the row and is
	// reserved for saga compensation by the admin service.
	DeleteUser(ctx context.Context, id user.ID, hard bool) error
	HasActiveUsersInCenter(ctx context.Context, centerID uint64) (bool, error)
}
