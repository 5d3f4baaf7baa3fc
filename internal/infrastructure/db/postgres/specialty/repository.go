package specialty

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"hospital-manager-api/internal/domain/specialty"
	"hospital-manager-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) specialty.Repository {
	return &Repository{db: db}
}

func scanSpecialty(row pgx.Row) (*Specialty, error) {
	s := new(Specialty)
	err := row.Scan(
		&s.ID,
		&s.Version,
		&s.Name,
		&s.Description,

		&s.CreatedAt,
		&s.UpdatedAt,

		&s.Deleted,
	)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (r *Repository) FetchSpecialties(ctx context.Context, page int) (specialty.Specialties, error) {
	rows, err := r.db.Query(ctx, SelectSpecialties, page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ss Specialties
	for rows.Next() {
		s, err := scanSpecialty(rows)
		if err != nil {
			return nil, err
		}
		ss = append(ss, s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&ss), nil
}

func (r *Repository) FetchSpecialtyByID(ctx context.Context, id specialty.ID) (*specialty.Specialty, error) {
	s, err := scanSpecialty(r.db.QueryRow(ctx, SelectSpecialtyByID, uint64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(s), nil
}

func (r *Repository) ExistsByName(ctx context.Context, name string, excludeID specialty.ID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, ExistsSpecialtyByName, name, uint64(excludeID)).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) CreateSpecialty(ctx context.Context, req specialty.Specialty) (*specialty.Specialty, error) {
	s, err := scanSpecialty(r.db.QueryRow(ctx, InsertSpecialty, req.Name, req.Description))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrNameAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(s), nil
}

func (r *Repository) UpdateSpecialty(ctx context.Context, req specialty.Specialty) (*specialty.Specialty, error) {
	s, err := scanSpecialty(r.db.QueryRow(ctx, UpdateSpecialtyCAS,
		req.Name, req.Description, uint64(req.ID), req.Version,
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrNameAlreadyExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(s), nil
}

func (r *Repository) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.db.Begin(ctx)
}

func (r *Repository) FetchSpecialtyForUpdate(ctx context.Context, tx pgx.Tx, id specialty.ID) (*specialty.Specialty, error) {
	s, err := scanSpecialty(tx.QueryRow(ctx, SelectSpecialtyForUpdate, uint64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(s), nil
}

func (r *Repository) SoftDeleteSpecialty(ctx context.Context, tx pgx.Tx, id specialty.ID) error {
	_, err := tx.Exec(ctx, SoftDeleteSpecialtyByID, uint64(id))
	return err
}
