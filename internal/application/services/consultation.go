package services

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"hospital-manager-api/internal/apperr"
	"hospital-manager-api/internal/application/ports"
	domain "hospital-manager-api/internal/domain/consultation"
	"hospital-manager-api/internal/domain/patient"
)

type ConsultationService struct {
	consultationRepository domain.Repository
	patientRepository      patient.Repository
	admin                  ports.AdminClient
	log                    *zap.Logger
	mCounter               *prometheus.CounterVec
}

func NewConsultationService(
	consultationRepository domain.Repository,
	patientRepository patient.Repository,
	admin ports.AdminClient,
	log *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.ConsultationService {
	return &ConsultationService{
		consultationRepository: consultationRepository,
		patientRepository:      patientRepository,
		admin:                  admin,
		log:                    log,
		mCounter:               mCounter,
	}
}

func (cs *ConsultationService) FindConsultations(ctx context.Context, page int) (domain.MedicalConsultations, error) {
	consultations, err := cs.consultationRepository.FetchConsultations(ctx, page)
	if err != nil {
		return nil, apperr.Internal("failed to fetch consultations", err)
	}

	return consultations, nil
}

func (cs *ConsultationService) FindConsultationByID(ctx context.Context, id domain.ID) (*domain.MedicalConsultation, error) {
	c, err := cs.consultationRepository.FetchConsultationByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to fetch consultation", err)
	}
	if c == nil {
		return nil, apperr.NotFound("consultation not found")
	}

	return c, nil
}

// validateRefs checks the three cross-service references. The patient is
// local; doctor and center live in the admin service and the answers are
// snapshots, not foreign keys.
func (cs *ConsultationService) validateRefs(ctx context.Context, c domain.MedicalConsultation) error {
	p, err := cs.patientRepository.FetchPatientByID(ctx, patient.ID(c.PatientID))
	if err != nil {
		return apperr.Internal("failed to fetch patient", err)
	}
	if p == nil {
		return apperr.Validation(map[string]string{"patient_id": "patient not found"})
	}

	exists, err := cs.admin.ExistsDoctorByID(ctx, c.DoctorID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.Validation(map[string]string{"doctor_id": "doctor not found"})
	}

	if err = cs.admin.ValidateCenterID(ctx, c.CenterID); err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return apperr.Validation(map[string]string{"center_id": "center not found"})
		}
		return err
	}

	return nil
}

func (cs *ConsultationService) CreateConsultation(ctx context.Context, c domain.MedicalConsultation) (*domain.MedicalConsultation, error) {
	if err := cs.validateRefs(ctx, c); err != nil {
		return nil, err
	}

	created, err := cs.consultationRepository.CreateConsultation(ctx, c)
	if err != nil {
		return nil, apperr.Internal("failed to create consultation", err)
	}

	cs.mCounter.WithLabelValues("consultation_created_total").Inc()

	return created, nil
}

func (cs *ConsultationService) UpdateConsultation(ctx context.Context, c domain.MedicalConsultation) (*domain.MedicalConsultation, error) {
	updated, err := cs.consultationRepository.UpdateConsultation(ctx, c)
	if err != nil {
		return nil, apperr.Internal("failed to update consultation", err)
	}
	if updated == nil {
		cur, err := cs.consultationRepository.FetchConsultationByID(ctx, c.ID)
		if err != nil {
			return nil, apperr.Internal("failed to fetch consultation", err)
		}
		if cur == nil {
			return nil, apperr.NotFound("consultation not found")
		}
		return nil, apperr.Conflict("consultation was modified concurrently")
	}

	cs.mCounter.WithLabelValues("consultation_updated_total").Inc()

	return updated, nil
}

func (cs *ConsultationService) DeleteConsultation(ctx context.Context, id domain.ID) error {
	tx, err := cs.consultationRepository.Begin(ctx)
	if err != nil {
		return apperr.Internal("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	c, err := cs.consultationRepository.FetchConsultationForUpdate(ctx, tx, id)
	if err != nil {
		return apperr.Internal("failed to lock consultation", err)
	}
	if c == nil {
		return apperr.NotFound("consultation not found")
	}

	if err = cs.consultationRepository.SoftDeleteConsultation(ctx, tx, id); err != nil {
		return apperr.Internal("failed to delete consultation", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return apperr.Internal("failed to commit transaction", err)
	}

	cs.mCounter.WithLabelValues("consultation_deleted_total").Inc()

	return nil
}

func (cs *ConsultationService) HasFutureAppointments(ctx context.Context, doctorID uint64) (bool, error) {
	busy, err := cs.consultationRepository.HasFutureAppointments(ctx, doctorID, time.Now().UTC())
	if err != nil {
		return false, apperr.Internal("failed to check appointments", err)
	}

	return busy, nil
}

func (cs *ConsultationService) HasActiveAppointmentsInCenter(ctx context.Context, centerID uint64) (bool, error) {
	busy, err := cs.consultationRepository.HasActiveAppointmentsInCenter(ctx, centerID)
	if err != nil {
		return false, apperr.Internal("failed to check center appointments", err)
	}

	return busy, nil
}
