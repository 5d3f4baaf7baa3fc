package specialty

import (
	"time"
)

type (
	ID        uint64
	Specialty struct {
		ID          ID
		Version     int64
		Name        string
		Description *string

		CreatedAt time.Time
		UpdatedAt time.Time

		Deleted bool
	}
	Specialties []*Specialty
)
