package ports

import (
	"context"

	"hospital-manager-api/internal/domain/center"
)

type CenterService interface {
	FindCenters(ctx context.Context, page int) (center.Centers, error)
	FindCenterByID(ctx context.Context, id center.ID) (*center.Center, error)
	CreateCenter(ctx context.Context, c center.Center) (*center.Center, error)
	UpdateCenter(ctx context.Context, c center.Center) (*center.Center, error)
	DeleteCenter(ctx context.Context, id center.ID) error
}
