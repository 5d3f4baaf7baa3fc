package specialty

import (
	"time"
)

type (
	Response struct {
		ID          uint64    `json:"id"`
		Version     int64     `json:"version"`
		Name        string    `json:"name"`
		Description *string   `json:"description,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
		UpdatedAt   time.Time `json:"updated_at"`
	}
	Responses    []Response
	ResponseData struct {
		Data Responses `json:"data"`
	}
)
