package doctor

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type Repository interface {
	FetchDoctors(ctx context.Context, page int) (Doctors, error)
	FetchDoctorByID(ctx context.Context, id ID) (*Doctor, error)
	// ExistsByUserID reports whether an active doctor already references the
	// given identity-service user.
	ExistsByUserID(ctx context.Context, userID uint64) (bool, error)
	ExistsBySpecialtyID(ctx context.Context, specialtyID uint64) (bool, error)
	CreateDoctor(ctx context.Context, req Doctor) (*Doctor, error)
	// UpdateDoctor applies an optimistic compare-and-swap on req.Version.
	UpdateDoctor(ctx context.Context, req Doctor) (*Doctor, error)

	Begin(ctx context.Context) (pgx.Tx, error)
	FetchDoctorForUpdate(ctx context.Context, tx pgx.Tx, id ID) (*Doctor, error)
	SoftDeleteDoctor(ctx context.Context, tx pgx.Tx, id ID) error
}
