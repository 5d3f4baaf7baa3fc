package doctor

import (
	"time"
)

type (
	Response struct {
		ID          uint64    `json:"id"`
		Version     int64     `json:"version"`
		UserID      uint64    `json:"user_id"`
		SpecialtyID *uint64   `json:"specialty_id,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
		UpdatedAt   time.Time `json:"updated_at"`
	}
	Responses    []Response
	ResponseData struct {
		Data Responses `json:"data"`
	}
)
