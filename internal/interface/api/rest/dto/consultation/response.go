package consultation

import (
	"time"
)

type (
	Response struct {
		ID        uint64    `json:"id"`
		Version   int64     `json:"version"`
		PatientID uint64    `json:"patient_id"`
		DoctorID  uint64    `json:"doctor_id"`
		CenterID  uint64    `json:"center_id"`
		Date      time.Time `json:"date"`
		Diagnosis string    `json:"diagnosis"`
		Treatment string    `json:"treatment"`
		Notes     string    `json:"notes"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
	Responses    []Response
	ResponseData struct {
		Data Responses `json:"data"`
	}
)
