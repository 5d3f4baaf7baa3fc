package center

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"hospital-manager-api/internal/domain/center"
	"hospital-manager-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) center.Repository {
	return &Repository{db: db}
}

func scanCenter(row pgx.Row) (*Center, error) {
	c := new(Center)
	err := row.Scan(
		&c.ID,
		&c.Version,
		&c.Name,
		&c.City,
		&c.Address,

		&c.CreatedAt,
		&c.UpdatedAt,

		&c.Deleted,
	)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (r *Repository) FetchCenters(ctx context.Context, page int) (center.Centers, error) {
	rows, err := r.db.Query(ctx, SelectCenters, page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cs Centers
	for rows.Next() {
		c, err := scanCenter(rows)
		if err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&cs), nil
}

func (r *Repository) FetchCenterByID(ctx context.Context, id center.ID) (*center.Center, error) {
	c, err := scanCenter(r.db.QueryRow(ctx, SelectCenterByID, uint64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(c), nil
}

func (r *Repository) ExistsByName(ctx context.Context, name string, excludeID center.ID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, ExistsCenterByName, name, uint64(excludeID)).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) ExistsByAddress(ctx context.Context, address string, excludeID center.ID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, ExistsCenterByAddress, address, uint64(excludeID)).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) CreateCenter(ctx context.Context, req center.Center) (*center.Center, error) {
	c, err := scanCenter(r.db.QueryRow(ctx, InsertCenter, req.Name, req.City, req.Address))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrCenterAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(c), nil
}

func (r *Repository) UpdateCenter(ctx context.Context, req center.Center) (*center.Center, error) {
	c, err := scanCenter(r.db.QueryRow(ctx, UpdateCenterCAS,
		req.Name, req.City, req.Address, uint64(req.ID), req.Version,
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrCenterAlreadyExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(c), nil
}

func (r *Repository) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.db.Begin(ctx)
}

func (r *Repository) FetchCenterForUpdate(ctx context.Context, tx pgx.Tx, id center.ID) (*center.Center, error) {
	c, err := scanCenter(tx.QueryRow(ctx, SelectCenterForUpdate, uint64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(c), nil
}

func (r *Repository) SoftDeleteCenter(ctx context.Context, tx pgx.Tx, id center.ID) error {
	_, err := tx.Exec(ctx, SoftDeleteCenterByID, uint64(id))
	return err
}
