package doctor

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"hospital-manager-api/internal/domain/doctor"
	"hospital-manager-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) doctor.Repository {
	return &Repository{db: db}
}

func scanDoctor(row pgx.Row) (*Doctor, error) {
	d := new(Doctor)
	err := row.Scan(
		&d.ID,
		&d.Version,
		&d.UserID,
		&d.SpecialtyID,

		&d.CreatedAt,
		&d.UpdatedAt,

		&d.Deleted,
	)
	if err != nil {
		return nil, err
	}

	return d, nil
}

func (r *Repository) FetchDoctors(ctx context.Context, page int) (doctor.Doctors, error) {
	rows, err := r.db.Query(ctx, SelectDoctors, page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ds Doctors
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		ds = append(ds, d)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&ds), nil
}

func (r *Repository) FetchDoctorByID(ctx context.Context, id doctor.ID) (*doctor.Doctor, error) {
	d, err := scanDoctor(r.db.QueryRow(ctx, SelectDoctorByID, uint64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(d), nil
}

func (r *Repository) ExistsByUserID(ctx context.Context, userID uint64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, ExistsDoctorByUserID, userID).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) ExistsBySpecialtyID(ctx context.Context, specialtyID uint64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, ExistsDoctorBySpecialty, specialtyID).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) CreateDoctor(ctx context.Context, req doctor.Doctor) (*doctor.Doctor, error) {
	d, err := scanDoctor(r.db.QueryRow(ctx, InsertDoctor, req.UserID, req.SpecialtyID))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrUserAlreadyAssigned
		}
		return nil, err
	}

	return fromDBModel(d), nil
}

func (r *Repository) UpdateDoctor(ctx context.Context, req doctor.Doctor) (*doctor.Doctor, error) {
	d, err := scanDoctor(r.db.QueryRow(ctx, UpdateDoctorCAS,
		req.SpecialtyID, uint64(req.ID), req.Version,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(d), nil
}

func (r *Repository) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.db.Begin(ctx)
}

func (r *Repository) FetchDoctorForUpdate(ctx context.Context, tx pgx.Tx, id doctor.ID) (*doctor.Doctor, error) {
	d, err := scanDoctor(tx.QueryRow(ctx, SelectDoctorForUpdate, uint64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(d), nil
}

func (r *Repository) SoftDeleteDoctor(ctx context.Context, tx pgx.Tx, id doctor.ID) error {
	_, err := tx.Exec(ctx, SoftDeleteDoctorByID, uint64(id))
	return err
}
