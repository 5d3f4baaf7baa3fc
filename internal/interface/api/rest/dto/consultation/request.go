package consultation

import (
	"time"
)

type Request struct {
	PatientID uint64    `json:"patient_id"`
	DoctorID  uint64    `json:"doctor_id"`
	CenterID  uint64    `json:"center_id"`
	Date      time.Time `json:"date"`
	Diagnosis string    `json:"diagnosis"`
	Treatment string    `json:"treatment"`
	Notes     string    `json:"notes"`
	Version   int64     `json:"version"`
}
