package ports

import (
	"context"

	"hospital-manager-api/internal/domain/consultation"
)

type ConsultationService interface {
	FindConsultations(ctx context.Context, page int) (consultation.MedicalConsultations, error)
	FindConsultationByID(ctx context.Context, id consultation.ID) (*consultation.MedicalConsultation, error)
	CreateConsultation(ctx context.Context, c consultation.MedicalConsultation) (*consultation.MedicalConsultation, error)
	UpdateConsultation(ctx context.Context, c consultation.MedicalConsultation) (*consultation.MedicalConsultation, error)
	DeleteConsultation(ctx context.Context, id consultation.ID) error
	HasFutureAppointments(ctx context.Context, doctorID uint64) (bool, error)
	HasActiveAppointmentsInCenter(ctx context.Context, centerID uint64) (bool, error)
}
