package specialty

import (
	"errors"
	"time"
)

var ErrNameAlreadyExists = errors.New("specialty name already in use")

type (
	Specialty struct {
		ID          uint64
		Version     int64
		Name        string
		Description *string

		CreatedAt time.Time
		UpdatedAt time.Time

		Deleted bool
	}
	Specialties []*Specialty
)
