package patient

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type Repository interface {
	FetchPatients(ctx context.Context, page int) (Patients, error)
	FetchPatientByID(ctx context.Context, id ID) (*Patient, error)
	ExistsByDNI(ctx context.Context, dni string, excludeID ID) (bool, error)
	HasActivePatientsInCenter(ctx context.Context, centerID uint64) (bool, error)
	CreatePatient(ctx context.Context, req Patient) (*Patient, error)
	// UpdatePatient applies an optimistic compare-and-swap on req.Version.
	UpdatePatient(ctx context.Context, req Patient) (*Patient, error)

	Begin(ctx context.Context) (pgx.Tx, error)
	FetchPatientForUpdate(ctx context.Context, tx pgx.Tx, id ID) (*Patient, error)
	SoftDeletePatient(ctx context.Context, tx pgx.Tx, id ID) error
}
