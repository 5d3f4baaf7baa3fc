package patient

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"hospital-manager-api/internal/domain/patient"
	"hospital-manager-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) patient.Repository {
	return &Repository{db: db}
}

func scanPatient(row pgx.Row) (*Patient, error) {
	p := new(Patient)
	err := row.Scan(
		&p.ID,
		&p.Version,
		&p.DNI,
		&p.FirstName,
		&p.LastName,
		&p.BirthDate,
		&p.Gender,
		&p.CenterID,

		&p.CreatedAt,
		&p.UpdatedAt,

		&p.Deleted,
	)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *Repository) FetchPatients(ctx context.Context, page int) (patient.Patients, error) {
	rows, err := r.db.Query(ctx, SelectPatients, page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ps Patients
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&ps), nil
}

func (r *Repository) FetchPatientByID(ctx context.Context, id patient.ID) (*patient.Patient, error) {
	p, err := scanPatient(r.db.QueryRow(ctx, SelectPatientByID, uint64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(p), nil
}

func (r *Repository) ExistsByDNI(ctx context.Context, dni string, excludeID patient.ID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, ExistsPatientByDNI, dni, uint64(excludeID)).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) HasActivePatientsInCenter(ctx context.Context, centerID uint64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, ExistsActivePatientInCenter, centerID).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) CreatePatient(ctx context.Context, req patient.Patient) (*patient.Patient, error) {
	p, err := scanPatient(r.db.QueryRow(ctx, InsertPatient,
		req.DNI, req.FirstName, req.LastName, req.BirthDate, req.Gender, req.CenterID,
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrDNIAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(p), nil
}

func (r *Repository) UpdatePatient(ctx context.Context, req patient.Patient) (*patient.Patient, error) {
	p, err := scanPatient(r.db.QueryRow(ctx, UpdatePatientCAS,
		req.FirstName, req.LastName, req.BirthDate, req.Gender, req.CenterID,
		uint64(req.ID), req.Version,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(p), nil
}

func (r *Repository) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.db.Begin(ctx)
}

func (r *Repository) FetchPatientForUpdate(ctx context.Context, tx pgx.Tx, id patient.ID) (*patient.Patient, error) {
	p, err := scanPatient(tx.QueryRow(ctx, SelectPatientForUpdate, uint64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(p), nil
}

func (r *Repository) SoftDeletePatient(ctx context.Context, tx pgx.Tx, id patient.ID) error {
	_, err := tx.Exec(ctx, SoftDeletePatientByID, uint64(id))
	return err
}
