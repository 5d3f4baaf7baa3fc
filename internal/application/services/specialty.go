package services

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"hospital-manager-api/internal/apperr"
	"hospital-manager-api/internal/application/ports"
	"hospital-manager-api/internal/domain/doctor"
	domain "hospital-manager-api/internal/domain/specialty"
	specialtyDB "hospital-manager-api/internal/infrastructure/db/postgres/specialty"
)

type SpecialtyService struct {
	specialtyRepository domain.Repository
	doctorRepository    doctor.Repository
	log                 *zap.Logger
	mCounter            *prometheus.CounterVec
}

func NewSpecialtyService(
	specialtyRepository domain.Repository,
	doctorRepository doctor.Repository,
	log *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.SpecialtyService {
	return &SpecialtyService{
		specialtyRepository: specialtyRepository,
		doctorRepository:    doctorRepository,
		log:                 log,
		mCounter:            mCounter,
	}
}

func (ss *SpecialtyService) FindSpecialties(ctx context.Context, page int) (domain.Specialties, error) {
	specialties, err := ss.specialtyRepository.FetchSpecialties(ctx, page)
	if err != nil {
		return nil, apperr.Internal("failed to fetch specialties", err)
	}

	return specialties, nil
}

func (ss *SpecialtyService) FindSpecialtyByID(ctx context.Context, id domain.ID) (*domain.Specialty, error) {
	s, err := ss.specialtyRepository.FetchSpecialtyByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to fetch specialty", err)
	}
	if s == nil {
		return nil, apperr.NotFound("specialty not found")
	}

	return s, nil
}

func (ss *SpecialtyService) checkName(ctx context.Context, s domain.Specialty) error {
	taken, err := ss.specialtyRepository.ExistsByName(ctx, s.Name, s.ID)
	if err != nil {
		return apperr.Internal("failed to check specialty name", err)
	}
	if taken {
		return apperr.Validation(map[string]string{"name": "name already in use"})
	}

	return nil
}

func (ss *SpecialtyService) CreateSpecialty(ctx context.Context, s domain.Specialty) (*domain.Specialty, error) {
	if err := ss.checkName(ctx, s); err != nil {
		return nil, err
	}

	created, err := ss.specialtyRepository.CreateSpecialty(ctx, s)
	if err != nil {
		if errors.Is(err, specialtyDB.ErrNameAlreadyExists) {
			return nil, apperr.Conflict(err.Error())
		}
		return nil, apperr.Internal("failed to create specialty", err)
	}

	ss.mCounter.WithLabelValues("specialty_created_total").Inc()

	return created, nil
}

func (ss *SpecialtyService) UpdateSpecialty(ctx context.Context, s domain.Specialty) (*domain.Specialty, error) {
	if err := ss.checkName(ctx, s); err != nil {
		return nil, err
	}

	updated, err := ss.specialtyRepository.UpdateSpecialty(ctx, s)
	if err != nil {
		if errors.Is(err, specialtyDB.ErrNameAlreadyExists) {
			return nil, apperr.Conflict(err.Error())
		}
		return nil, apperr.Internal("failed to update specialty", err)
	}
	if updated == nil {
		cur, err := ss.specialtyRepository.FetchSpecialtyByID(ctx, s.ID)
		if err != nil {
			return nil, apperr.Internal("failed to fetch specialty", err)
		}
		if cur == nil {
			return nil, apperr.NotFound("specialty not found")
		}
		return nil, apperr.Conflict("specialty was modified concurrently")
	}

	ss.mCounter.WithLabelValues("specialty_updated_total").Inc()

	return updated, nil
}

func (ss *SpecialtyService) DeleteSpecialty(ctx context.Context, id domain.ID) error {
	tx, err := ss.specialtyRepository.Begin(ctx)
	if err != nil {
		return apperr.Internal("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	s, err := ss.specialtyRepository.FetchSpecialtyForUpdate(ctx, tx, id)
	if err != nil {
		return apperr.Internal("failed to lock specialty", err)
	}
	if s == nil {
		return apperr.NotFound("specialty not found")
	}

	assigned, err := ss.doctorRepository.ExistsBySpecialtyID(ctx, uint64(id))
	if err != nil {
		return apperr.Internal("failed to check specialty assignments", err)
	}
	if assigned {
		return apperr.Conflict("specialty is assigned to active doctors")
	}

	if err = ss.specialtyRepository.SoftDeleteSpecialty(ctx, tx, id); err != nil {
		return apperr.Internal("failed to delete specialty", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return apperr.Internal("failed to commit transaction", err)
	}

	ss.mCounter.WithLabelValues("specialty_deleted_total").Inc()

	return nil
}
