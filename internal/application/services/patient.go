package services

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"hospital-manager-api/internal/apperr"
	"hospital-manager-api/internal/application/ports"
	domain "hospital-manager-api/internal/domain/patient"
	patientDB "hospital-manager-api/internal/infrastructure/db/postgres/patient"
)

type PatientService struct {
	patientRepository domain.Repository
	admin             ports.AdminClient
	log               *zap.Logger
	mCounter          *prometheus.CounterVec
}

func NewPatientService(
	patientRepository domain.Repository,
	admin ports.AdminClient,
	log *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.PatientService {
	return &PatientService{
		patientRepository: patientRepository,
		admin:             admin,
		log:               log,
		mCounter:          mCounter,
	}
}

func (ps *PatientService) FindPatients(ctx context.Context, page int) (domain.Patients, error) {
	patients, err := ps.patientRepository.FetchPatients(ctx, page)
	if err != nil {
		return nil, apperr.Internal("failed to fetch patients", err)
	}

	return patients, nil
}

func (ps *PatientService) FindPatientByID(ctx context.Context, id domain.ID) (*domain.Patient, error) {
	p, err := ps.patientRepository.FetchPatientByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to fetch patient", err)
	}
	if p == nil {
		return nil, apperr.NotFound("patient not found")
	}

	return p, nil
}

func (ps *PatientService) validateCenter(ctx context.Context, centerID uint64) error {
	err := ps.admin.ValidateCenterID(ctx, centerID)
	if err == nil {
		return nil
	}
	if apperr.KindOf(err) == apperr.KindNotFound {
		return apperr.Validation(map[string]string{"center_id": "center not found"})
	}

	return err
}

func (ps *PatientService) CreatePatient(ctx context.Context, p domain.Patient) (*domain.Patient, error) {
	taken, err := ps.patientRepository.ExistsByDNI(ctx, p.DNI, 0)
	if err != nil {
		return nil, apperr.Internal("failed to check dni", err)
	}
	if taken {
		return nil, apperr.Validation(map[string]string{"dni": "dni already registered"})
	}
	if err = ps.validateCenter(ctx, p.CenterID); err != nil {
		return nil, err
	}

	created, err := ps.patientRepository.CreatePatient(ctx, p)
	if err != nil {
		if errors.Is(err, patientDB.ErrDNIAlreadyExists) {
			return nil, apperr.Conflict(err.Error())
		}
		return nil, apperr.Internal("failed to create patient", err)
	}

	ps.mCounter.WithLabelValues("patient_created_total").Inc()

	return created, nil
}

func (ps *PatientService) UpdatePatient(ctx context.Context, p domain.Patient) (*domain.Patient, error) {
	taken, err := ps.patientRepository.ExistsByDNI(ctx, p.DNI, p.ID)
	if err != nil {
		return nil, apperr.Internal("failed to check dni", err)
	}
	if taken {
		return nil, apperr.Validation(map[string]string{"dni": "dni already registered"})
	}

	updated, err := ps.patientRepository.UpdatePatient(ctx, p)
	if err != nil {
		if errors.Is(err, patientDB.ErrDNIAlreadyExists) {
			return nil, apperr.Conflict(err.Error())
		}
		return nil, apperr.Internal("failed to update patient", err)
	}
	if updated == nil {
		cur, err := ps.patientRepository.FetchPatientByID(ctx, p.ID)
		if err != nil {
			return nil, apperr.Internal("failed to fetch patient", err)
		}
		if cur == nil {
			return nil, apperr.NotFound("patient not found")
		}
		return nil, apperr.Conflict("patient was modified concurrently")
	}

	ps.mCounter.WithLabelValues("patient_updated_total").Inc()

	return updated, nil
}

func (ps *PatientService) DeletePatient(ctx context.Context, id domain.ID) error {
	tx, err := ps.patientRepository.Begin(ctx)
	if err != nil {
		return apperr.Internal("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	p, err := ps.patientRepository.FetchPatientForUpdate(ctx, tx, id)
	if err != nil {
		return apperr.Internal("failed to lock patient", err)
	}
	if p == nil {
		return apperr.NotFound("patient not found")
	}

	if err = ps.patientRepository.SoftDeletePatient(ctx, tx, id); err != nil {
		return apperr.Internal("failed to delete patient", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return apperr.Internal("failed to commit transaction", err)
	}

	ps.mCounter.WithLabelValues("patient_deleted_total").Inc()

	return nil
}

func (ps *PatientService) HasActivePatientsInCenter(ctx context.Context, centerID uint64) (bool, error) {
	busy, err := ps.patientRepository.HasActivePatientsInCenter(ctx, centerID)
	if err != nil {
		return false, apperr.Internal("failed to check center patients", err)
	}

	return busy, nil
}
