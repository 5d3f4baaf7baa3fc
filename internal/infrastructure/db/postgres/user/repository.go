package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"hospital-manager-api/internal/domain/user"
	"hospital-manager-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) user.Repository {
	return &Repository{db: db}
}

func scanUser(row pgx.Row) (*User, error) {
	u := new(User)
	err := row.Scan(
		&u.ID,
		&u.Version,
		&u.Username,
		&u.PasswordHash,
		&u.Email,
		&u.Gender,
		&u.FirstName,
		&u.LastName,
		&u.CenterID,
		&u.Roles,

		&u.CreatedAt,
		&u.UpdatedAt,

		&u.Enabled,
	)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (r *Repository) FetchUsers(ctx context.Context, page int) (user.Users, error) {
	rows, err := r.db.Query(ctx, SelectUsers, page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&us), nil
}

func (r *Repository) FetchUserByID(ctx context.Context, id user.ID, includeDisabled bool) (*user.User, error) {
	query := SelectUserByID
	if includeDisabled {
		query = SelectUserByIDAnyState
	}

	u, err := scanUser(r.db.QueryRow(ctx, query, uint64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchUserByUsername(ctx context.Context, username string) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, SelectUserByUsername, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchUserByEmail(ctx context.Context, email string) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, SelectUserByEmail, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) ExistsByUsername(ctx context.Context, username string, excludeID user.ID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, ExistsUserByUsername, username, uint64(excludeID)).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) ExistsByEmail(ctx context.Context, email string, excludeID user.ID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, ExistsUserByEmail, email, uint64(excludeID)).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) HasEnabledUsersInCenter(ctx context.Context, centerID uint64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, ExistsEnabledUserInCenter, centerID).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, InsertUser,
		req.Username, req.PasswordHash, req.Email, req.Gender,
		req.FirstName, req.LastName, req.CenterID, req.Roles,
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) UpdatePassword(ctx context.Context, id user.ID, passwordHash string) error {
	_, err := r.db.Exec(ctx, UpdateUserPassword, passwordHash, uint64(id))
	return err
}

func (r *Repository) HardDeleteUser(ctx context.Context, id user.ID) (bool, error) {
	tag, err := r.db.Exec(ctx, HardDeleteUserByID, uint64(id))
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.db.Begin(ctx)
}

func (r *Repository) FetchUserForUpdate(ctx context.Context, tx pgx.Tx, id user.ID) (*user.User, error) {
	u, err := scanUser(tx.QueryRow(ctx, SelectUserForUpdate, uint64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) UpdateUser(ctx context.Context, tx pgx.Tx, req user.User) (*user.User, error) {
	u, err := scanUser(tx.QueryRow(ctx, UpdateUserByID,
		req.Email, req.Gender, req.FirstName, req.LastName,
		req.CenterID, req.Roles, uint64(req.ID),
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrUserAlreadyExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) DisableUser(ctx context.Context, tx pgx.Tx, id user.ID) error {
	_, err := tx.Exec(ctx, DisableUserByID, uint64(id))
	return err
}
