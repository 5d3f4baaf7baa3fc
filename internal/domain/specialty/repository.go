package specialty

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type Repository interface {
	FetchSpecialties(ctx context.Context, page int) (Specialties, error)
	FetchSpecialtyByID(ctx context.Context, id ID) (*Specialty, error)
	ExistsByName(ctx context.Context, name string, excludeID ID) (bool, error)
	CreateSpecialty(ctx context.Context, req Specialty) (*Specialty, error)
	// UpdateSpecialty applies an optimistic compare-and-swap on req.Version.
	UpdateSpecialty(ctx context.Context, req Specialty) (*Specialty, error)

	Begin(ctx context.Context) (pgx.Tx, error)
	FetchSpecialtyForUpdate(ctx context.Context, tx pgx.Tx, id ID) (*Specialty, error)
	SoftDeleteSpecialty(ctx context.Context, tx pgx.Tx, id ID) error
}
