package consultation

import (
	"time"
)

type (
	MedicalConsultation struct {
		ID        uint64
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
