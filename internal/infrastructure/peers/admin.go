package peers

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"hospital-manager-api/config"
	"hospital-manager-api/internal/apperr"
	"hospital-manager-api/internal/application/ports"
)

type Admin struct {
	c *client
}

func NewAdmin(cfg config.Peer, logger *zap.Logger) ports.AdminClient {
	return &Admin{c: newClient("admin", cfg, logger)}
}

// ValidateCenterID is an existence probe: the body is discarded, only the
// status matters.
func (a *Admin) ValidateCenterID(ctx context.Context, id uint64) error {
	return a.c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/v1/centers/%d", id), nil, nil)
}

func (a *Admin) ExistsDoctorByID(ctx context.Context, id uint64) (bool, error) {
	err := a.c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/v1/doctors/%d", id), nil, nil)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
