package ports

import (
	"context"

	"hospital-manager-api/internal/domain/patient"
)

type PatientService interface {
	FindPatients(ctx context.Context, page int) (patient.Patients, error)
	FindPatientByID(ctx context.Context, id patient.ID) (*patient.Patient, error)
	CreatePatient(ctx context.Context, p patient.Patient) (*patient.Patient, error)
	UpdatePatient(ctx context.Context, p patient.Patient) (*patient.Patient, error)
	DeletePatient(ctx context.Context, id patient.ID) error
	HasActivePatientsInCenter(ctx context.Context, centerID uint64) (bool, error)
}
