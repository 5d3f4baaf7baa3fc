package consultation

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"hospital-manager-api/internal/domain/consultation"
	"hospital-manager-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) consultation.Repository {
	return &Repository{db: db}
}

func scanConsultation(row pgx.Row) (*MedicalConsultation, error) {
	c := new(MedicalConsultation)
	err := row.Scan(
		&c.ID,
		&c.Version,
		&c.PatientID,
		&c.DoctorID,
		&c.CenterID,
		&c.Date,
		&c.Diagnosis,
		&c.Treatment,
		&c.Notes,

		&c.CreatedAt,
		&c.UpdatedAt,

		&c.Deleted,
	)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (r *Repository) FetchConsultations(ctx context.Context, page int) (consultation.MedicalConsultations, error) {
	rows, err := r.db.Query(ctx, SelectConsultations, page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cs MedicalConsultations
	for rows.Next() {
		c, err := scanConsultation(rows)
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

func (r *Repository) FetchConsultationByID(ctx context.Context, id consultation.ID) (*consultation.MedicalConsultation, error) {
	c, err := scanConsultation(r.db.QueryRow(ctx, SelectConsultationByID, uint64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(c), nil
}

func (r *Repository) HasFutureAppointments(ctx context.Context, doctorID uint64, after time.Time) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, ExistsFutureAppointmentForDoctor, doctorID, after).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) HasActiveAppointmentsInCenter(ctx context.Context, centerID uint64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, ExistsActiveAppointmentInCenter, centerID).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) CreateConsultation(ctx context.Context, req consultation.MedicalConsultation) (*consultation.MedicalConsultation, error) {
	c, err := scanConsultation(r.db.QueryRow(ctx, InsertConsultation,
		req.PatientID, req.DoctorID, req.CenterID, req.Date,
		req.Diagnosis, req.Treatment, req.Notes,
	))
	if err != nil {
		return nil, err
	}

	return fromDBModel(c), nil
}

func (r *Repository) UpdateConsultation(ctx context.Context, req consultation.MedicalConsultation) (*consultation.MedicalConsultation, error) {
	c, err := scanConsultation(r.db.QueryRow(ctx, UpdateConsultationCAS,
		req.Date, req.Diagnosis, req.Treatment, req.Notes,
		uint64(req.ID), req.Version,
	))
	if err != nil {
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

func (r *Repository) FetchConsultationForUpdate(ctx context.Context, tx pgx.Tx, id consultation.ID) (*consultation.MedicalConsultation, error) {
	c, err := scanConsultation(tx.QueryRow(ctx, SelectConsultationForUpdate, uint64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(c), nil
}

func (r *Repository) SoftDeleteConsultation(ctx context.Context, tx pgx.Tx, id consultation.ID) error {
	_, err := tx.Exec(ctx, SoftDeleteConsultationByID, uint64(id))
	return err
}
