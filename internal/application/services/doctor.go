package services

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"hospital-manager-api/internal/apperr"
	"hospital-manager-api/internal/application/ports"
	domain "hospital-manager-api/internal/domain/doctor"
	"hospital-manager-api/internal/domain/specialty"
	"hospital-manager-api/internal/domain/user"
	doctorDB "hospital-manager-api/internal/infrastructure/db/postgres/doctor"
)

type DoctorService struct {
	doctorRepository    domain.Repository
	specialtyRepository specialty.Repository
	identity            ports.IdentityClient
	consulting          ports.ConsultingClient
	log                 *zap.Logger
	mCounter            *prometheus.CounterVec
}

func NewDoctorService(
	doctorRepository domain.Repository,
	specialtyRepository specialty.Repository,
	identity ports.IdentityClient,
	consulting ports.ConsultingClient,
	log *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.DoctorService {
	return &DoctorService{
		doctorRepository:    doctorRepository,
		specialtyRepository: specialtyRepository,
		identity:            identity,
		consulting:          consulting,
		log:                 log,
		mCounter:            mCounter,
	}
}

func (ds *DoctorService) FindDoctors(ctx context.Context, page int) (domain.Doctors, error) {
	doctors, err := ds.doctorRepository.FetchDoctors(ctx, page)
	if err != nil {
		return nil, apperr.Internal("failed to fetch doctors", err)
	}

	return doctors, nil
}

func (ds *DoctorService) FindDoctorByID(ctx context.Context, id domain.ID) (*domain.Doctor, error) {
	d, err := ds.doctorRepository.FetchDoctorByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to fetch doctor", err)
	}
	if d == nil {
		return nil, apperr.NotFound("doctor not found")
	}

	return d, nil
}

func (ds *DoctorService) validateSpecialty(ctx context.Context, specialtyID *uint64) error {
	if specialtyID == nil {
		return nil
	}

	sp, err := ds.specialtyRepository.FetchSpecialtyByID(ctx, specialty.ID(*specialtyID))
	if err != nil {
		return apperr.Internal("failed to fetch specialty", err)
	}
	if sp == nil {
		return apperr.Validation(map[string]string{"specialty_id": "specialty not found"})
	}

	return nil
}

// RegisterDoctor creates the identity-service user first and the local
// doctor row second. A failed second step triggers a compensating user
// delete; a failed first step is simply reflected to the caller, including
// the remote service's own validation errors.
func (ds *DoctorService) RegisterDoctor(ctx context.Context, reg ports.RegisterDoctor) (*domain.Doctor, error) {
	if err := ds.validateSpecialty(ctx, reg.SpecialtyID); err != nil {
		return nil, err
	}

	remote, err := ds.identity.Register(ctx, ports.RegisterUserRequest{
		Username:  reg.Username,
		Password:  reg.Password,
		Email:     reg.Email,
		Gender:    reg.Gender,
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
		CenterID:  reg.CenterID,
		Roles:     []string{user.RoleDoctor},
	})
	if err != nil {
		return nil, err
	}

	d, err := ds.doctorRepository.CreateDoctor(ctx, domain.Doctor{
		UserID:      remote.ID,
		SpecialtyID: reg.SpecialtyID,
	})
	if err != nil {
		ds.compensateDeleteUser(ctx, remote.ID)
		if errors.Is(err, doctorDB.ErrUserAlreadyAssigned) {
			return nil, apperr.Conflict(err.Error())
		}
		return nil, apperr.Internal("failed to create doctor", err)
	}

	ds.mCounter.WithLabelValues("doctor_registered_total").Inc()

	return d, nil
}

// compensateDeleteUser hard deletes the user created by a registration whose
// local step failed. A remote 404 is success (the client maps it to nil), so
// the compensation can run more than once. Any other failure is swallowed
// after logging: the caller already gets the original error, and the
// orphaned user is surfaced through the counter instead.
func (ds *DoctorService) compensateDeleteUser(ctx context.Context, userID uint64) {
	// the compensation must still run when the caller has given up
	ctx = context.WithoutCancel(ctx)

	if err := ds.identity.DeleteUser(ctx, userID, true); err != nil {
		ds.log.Error("doctor registration compensation failed, user may be orphaned",
			zap.Uint64("user_id", userID), zap.Error(err))
		ds.mCounter.WithLabelValues("doctor_compensation_failed_total").Inc()
	}
}

func (ds *DoctorService) UpdateDoctor(ctx context.Context, d domain.Doctor) (*domain.Doctor, error) {
	if err := ds.validateSpecialty(ctx, d.SpecialtyID); err != nil {
		return nil, err
	}

	updated, err := ds.doctorRepository.UpdateDoctor(ctx, d)
	if err != nil {
		return nil, apperr.Internal("failed to update doctor", err)
	}
	if updated == nil {
		cur, err := ds.doctorRepository.FetchDoctorByID(ctx, d.ID)
		if err != nil {
			return nil, apperr.Internal("failed to fetch doctor", err)
		}
		if cur == nil {
			return nil, apperr.NotFound("doctor not found")
		}
		return nil, apperr.Conflict("doctor was modified concurrently")
	}

	ds.mCounter.WithLabelValues("doctor_updated_total").Inc()

	return updated, nil
}

// DeleteDoctor soft deletes a doctor and its identity-service user. The
// remote user delete lands before the local one; if it fails, the local row
// stays untouched and no compensation is needed.
func (ds *DoctorService) DeleteDoctor(ctx context.Context, id domain.ID) error {
	tx, err := ds.doctorRepository.Begin(ctx)
	if err != nil {
		return apperr.Internal("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	d, err := ds.doctorRepository.FetchDoctorForUpdate(ctx, tx, id)
	if err != nil {
		return apperr.Internal("failed to lock doctor", err)
	}
	if d == nil {
		return apperr.NotFound("doctor not found")
	}

	busy, err := ds.consulting.HasFutureAppointments(ctx, uint64(id))
	if err != nil {
		ds.log.Error("doctor delete aborted: appointment check failed",
			zap.Uint64("doctor_id", uint64(id)), zap.Error(err))
		return remoteCheckErr(err)
	}
	if busy {
		return apperr.Conflict("doctor has future appointments")
	}

	if err = ds.identity.DeleteUser(ctx, d.UserID, false); err != nil {
		ds.log.Error("doctor delete aborted: user delete failed",
			zap.Uint64("doctor_id", uint64(id)),
			zap.Uint64("user_id", d.UserID), zap.Error(err))
		return remoteCheckErr(err)
	}

	if err = ds.doctorRepository.SoftDeleteDoctor(ctx, tx, id); err != nil {
		return apperr.Internal("failed to delete doctor", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return apperr.Internal("failed to commit transaction", err)
	}

	ds.mCounter.WithLabelValues("doctor_deleted_total").Inc()

	return nil
}
