package peers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"hospital-manager-api/config"
	"hospital-manager-api/internal/application/ports"
)

type Consulting struct {
	c *client
}

func NewConsulting(cfg config.Peer, logger *zap.Logger) ports.ConsultingClient {
	return &Consulting{c: newClient("consulting", cfg, logger)}
}

func (cl *Consulting) HasFutureAppointments(ctx context.Context, doctorID uint64) (bool, error) {
	return cl.c.getBool(ctx, fmt.Sprintf("/api/v1/doctors/%d/future-appointments", doctorID))
}

func (cl *Consulting) HasActiveAppointmentsInCenter(ctx context.Context, centerID uint64) (bool, error) {
	return cl.c.getBool(ctx, fmt.Sprintf("/api/v1/centers/%d/active-appointments", centerID))
}

func (cl *Consulting) HasActivePatientsInCenter(ctx context.Context, centerID uint64) (bool, error) {
	return cl.c.getBool(ctx, fmt.Sprintf("/api/v1/centers/%d/active-patients", centerID))
}
