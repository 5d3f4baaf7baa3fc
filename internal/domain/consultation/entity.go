package consultation

import (
	"time"
)

type (
	ID uint64
	// MedicalConsultation references rows owned by three different services;
	// none of the references is backed by a database foreign key.
	MedicalConsultation struct {
		ID        ID
		Version   int64
		PatientID uint64
		DoctorID  uint64
		CenterID  uint64
		Date      time.Time
		Diagnosis string
		Treatment string
		Notes     string

		CreatedAt time.Time
		UpdatedAt time.Time

		Deleted bool
	}
	MedicalConsultations []*MedicalConsultation
)
