package consultation

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

type Repository interface {
	FetchConsultations(ctx context.Context, page int) (MedicalConsultations, error)
	FetchConsultationByID(ctx context.Context, id ID) (*MedicalConsultation, error)
	HasFutureAppointments(ctx context.Context, doctorID uint64, after time.Time) (bool, error)
	HasActiveAppointmentsInCenter(ctx context.Context, centerID uint64) (bool, error)
	CreateConsultation(ctx context.Context, req MedicalConsultation) (*MedicalConsultation, error)
	// UpdateConsultation applies an optimistic compare-and-swap on req.Version.
	UpdateConsultation(ctx context.Context, req MedicalConsultation) (*MedicalConsultation, error)

	Begin(ctx context.Context) (pgx.Tx, error)
	FetchConsultationForUpdate(ctx context.Context, tx pgx.Tx, id ID) (*MedicalConsultation, error)
	SoftDeleteConsultation(ctx context.Context, tx pgx.Tx, id ID) error
}
