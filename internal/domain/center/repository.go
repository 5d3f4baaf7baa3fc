package center

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type Repository interface {
	FetchCenters(ctx context.Context, page int) (Centers, error)
	FetchCenterByID(ctx context.Context, id ID) (*Center, error)
	ExistsByName(ctx context.Context, name string, excludeID ID) (bool, error)
	ExistsByAddress(ctx context.Context, address string, excludeID ID) (bool, error)
	CreateCenter(ctx context.Context, req Center) (*Center, error)
	// UpdateCenter applies an optimistic compare-and-swap on req.Version.
	// Returns nil, nil when no active row matched id+version.
	UpdateCenter(ctx context.Context, req Center) (*Center, error)

	Begin(ctx context.Context) (pgx.Tx, error)
	// FetchCenterForUpdate takes an exclusive row lock held until tx ends.
	FetchCenterForUpdate(ctx context.Context, tx pgx.Tx, id ID) (*Center, error)
	SoftDeleteCenter(ctx context.Context, tx pgx.Tx, id ID) error
}
