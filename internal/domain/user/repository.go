package user

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type Repository interface {
	FetchUsers(ctx context.Context, page int) (Users, error)
	// FetchUserByID returns only enabled users unless includeDisabled is set.
	FetchUserByID(ctx context.Context, id ID, includeDisabled bool) (*User, error)
	FetchUserByUsername(ctx context.Context, username string) (*User, error)
	FetchUserByEmail(ctx context.Context, email string) (*User, error)
	ExistsByUsername(ctx context.Context, username string, excludeID ID) (bool, error)
	ExistsByEmail(ctx context.Context, email string, excludeID ID) (bool, error)
	HasEnabledUsersInCenter(ctx context.Context, centerID uint64) (bool, error)
	CreateUser(ctx context.Context, req User) (*User, error)
	UpdatePassword(ctx context.Context, id ID, passwordHash string) error
	// HardDeleteUser physically removes the row. It exists solely for saga
	// compensation on registration failure and reports whether a row was
	// actually deleted.
	HardDeleteUser(ctx context.Context, id ID) (bool, error)

	Begin(ctx context.Context) (pgx.Tx, error)
	FetchUserForUpdate(ctx context.Context, tx pgx.Tx, id ID) (*User, error)
	// UpdateUser rewrites profile fields under the lock held by tx.
	UpdateUser(ctx context.Context, tx pgx.Tx, req User) (*User, error)
	// DisableUser is the identity-service soft delete (enabled=false).
	DisableUser(ctx context.Context, tx pgx.Tx, id ID) error
}
