package patient

import (
	"time"
)

type (
	Response struct {
		ID        uint64    `json:"id"`
		Version   int64     `json:"version"`
		DNI       string    `json:"dni"`
		FirstName string    `json:"first_name"`
		LastName  string    `json:"last_name"`
		BirthDate string    `json:"birth_date"`
		Gender    string    `json:"gender"`
		CenterID  uint64    `json:"center_id"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
	Responses    []Response
	ResponseData struct {
		Data Responses `json:"data"`
	}
)
