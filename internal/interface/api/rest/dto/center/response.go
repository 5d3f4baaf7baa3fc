package center

import (
	"time"
)

type (
	Response struct {
		ID        uint64    `json:"id"`
		Version   int64     `json:"version"`
		Name      string    `json:"name"`
		City      string    `json:"city"`
		Address   string    `json:"address"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
	Responses    []Response
	ResponseData struct {
		Data Responses `json:"data"`
	}
)
