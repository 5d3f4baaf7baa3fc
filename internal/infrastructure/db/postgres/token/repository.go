package token

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"hospital-manager-api/internal/domain/token"
	"hospital-manager-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) token.Repository {
	return &Repository{db: db}
}

func scanToken(row pgx.Row) (*VerificationToken, error) {
	t := new(VerificationToken)
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Token,
		&t.Used,
		&t.ExpiresAt,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return t, nil
}

func (r *Repository) CreateToken(ctx context.Context, req token.VerificationToken) (*token.VerificationToken, error) {
	t, err := scanToken(r.db.QueryRow(ctx, InsertToken, uint64(req.UserID), req.Token, req.ExpiresAt))
	if err != nil {
		return nil, err
	}

	return fromDBModel(t), nil
}

func (r *Repository) FetchByToken(ctx context.Context, tok string) (*token.VerificationToken, error) {
	t, err := scanToken(r.db.QueryRow(ctx, SelectByToken, tok))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(t), nil
}

func (r *Repository) MarkAsUsed(ctx context.Context, id token.ID) (bool, error) {
	tag, err := r.db.Exec(ctx, MarkTokenUsed, uint64(id))
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
