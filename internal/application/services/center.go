package services

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"hospital-manager-api/internal/apperr"
	"hospital-manager-api/internal/application/ports"
	domain "hospital-manager-api/internal/domain/center"
	centerDB "hospital-manager-api/internal/infrastructure/db/postgres/center"
)

type CenterService struct {
	centerRepository domain.Repository
	identity         ports.IdentityClient
	consulting       ports.ConsultingClient
	log              *zap.Logger
	mCounter         *prometheus.CounterVec
}

func NewCenterService(
	centerRepository domain.Repository,
	identity ports.IdentityClient,
	consulting ports.ConsultingClient,
	log *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.CenterService {
	return &CenterService{
		centerRepository: centerRepository,
		identity:         identity,
		consulting:       consulting,
		log:              log,
		mCounter:         mCounter,
	}
}

func (cs *CenterService) FindCenters(ctx context.Context, page int) (domain.Centers, error) {
	centers, err := cs.centerRepository.FetchCenters(ctx, page)
	if err != nil {
		return nil, apperr.Internal("failed to fetch centers", err)
	}

	return centers, nil
}

func (cs *CenterService) FindCenterByID(ctx context.Context, id domain.ID) (*domain.Center, error) {
	c, err := cs.centerRepository.FetchCenterByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to fetch center", err)
	}
	if c == nil {
		return nil, apperr.NotFound("center not found")
	}

	return c, nil
}

func (cs *CenterService) uniqueFields(ctx context.Context, c domain.Center) (map[string]string, error) {
	fields := map[string]string{}

	taken, err := cs.centerRepository.ExistsByName(ctx, c.Name, c.ID)
	if err != nil {
		return nil, apperr.Internal("failed to check center name", err)
	}
	if taken {
		fields["name"] = "name already in use"
	}

	taken, err = cs.centerRepository.ExistsByAddress(ctx, c.Address, c.ID)
	if err != nil {
		return nil, apperr.Internal("failed to check center address", err)
	}
	if taken {
		fields["address"] = "address already in use"
	}

	return fields, nil
}

func (cs *CenterService) CreateCenter(ctx context.Context, c domain.Center) (*domain.Center, error) {
	fields, err := cs.uniqueFields(ctx, c)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		return nil, apperr.Validation(fields)
	}

	created, err := cs.centerRepository.CreateCenter(ctx, c)
	if err != nil {
		// the unique index is the backstop for races past the pre-check
		if errors.Is(err, centerDB.ErrCenterAlreadyExists) {
			return nil, apperr.Conflict(err.Error())
		}
		return nil, apperr.Internal("failed to create center", err)
	}

	cs.mCounter.WithLabelValues("center_created_total").Inc()

	return created, nil
}

func (cs *CenterService) UpdateCenter(ctx context.Context, c domain.Center) (*domain.Center, error) {
	fields, err := cs.uniqueFields(ctx, c)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		return nil, apperr.Validation(fields)
	}

	updated, err := cs.centerRepository.UpdateCenter(ctx, c)
	if err != nil {
		if errors.Is(err, centerDB.ErrCenterAlreadyExists) {
			return nil, apperr.Conflict(err.Error())
		}
		return nil, apperr.Internal("failed to update center", err)
	}
	if updated == nil {
		// zero rows: either the row is gone or the caller lost the version
		// race. Re-read to tell the two apart.
		cur, err := cs.centerRepository.FetchCenterByID(ctx, c.ID)
		if err != nil {
			return nil, apperr.Internal("failed to fetch center", err)
		}
		if cur == nil {
			return nil, apperr.NotFound("center not found")
		}
		return nil, apperr.Conflict("center was modified concurrently")
	}

	cs.mCounter.WithLabelValues("center_updated_total").Inc()

	return updated, nil
}

// DeleteCenter soft deletes a center after confirming with the identity and
// consulting services that nothing active references it. The row lock is
// held across the remote checks so two concurrent deletes serialize; the
// remote answers themselves are snapshots and a rejected delete can always
// be retried.
func (cs *CenterService) DeleteCenter(ctx context.Context, id domain.ID) error {
	tx, err := cs.centerRepository.Begin(ctx)
	if err != nil {
		return apperr.Internal("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	c, err := cs.centerRepository.FetchCenterForUpdate(ctx, tx, id)
	if err != nil {
		return apperr.Internal("failed to lock center", err)
	}
	if c == nil {
		return apperr.NotFound("center not found")
	}

	// checks run in a fixed order; the first hit decides the message
	busy, err := cs.identity.HasActiveUsersInCenter(ctx, uint64(id))
	if err != nil {
		cs.log.Error("center delete aborted: user check failed",
			zap.Uint64("center_id", uint64(id)), zap.Error(err))
		return remoteCheckErr(err)
	}
	if busy {
		return apperr.Conflict("center has active users")
	}

	busy, err = cs.consulting.HasActivePatientsInCenter(ctx, uint64(id))
	if err != nil {
		cs.log.Error("center delete aborted: patient check failed",
			zap.Uint64("center_id", uint64(id)), zap.Error(err))
		return remoteCheckErr(err)
	}
	if busy {
		return apperr.Conflict("center has active patients")
	}

	busy, err = cs.consulting.HasActiveAppointmentsInCenter(ctx, uint64(id))
	if err != nil {
		cs.log.Error("center delete aborted: appointment check failed",
			zap.Uint64("center_id", uint64(id)), zap.Error(err))
		return remoteCheckErr(err)
	}
	if busy {
		return apperr.Conflict("center has active appointments")
	}

	if err = cs.centerRepository.SoftDeleteCenter(ctx, tx, id); err != nil {
		return apperr.Internal("failed to delete center", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return apperr.Internal("failed to commit transaction", err)
	}

	cs.mCounter.WithLabelValues("center_deleted_total").Inc()

	return nil
}
