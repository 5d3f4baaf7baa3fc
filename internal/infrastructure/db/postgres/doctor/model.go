package doctor

import (
	"errors"
	"time"
)

var ErrUserAlreadyAssigned = errors.New("user is already assigned to an active doctor")

type (
	Doctor struct {
		ID          uint64
		Version     int64
		UserID      uint64
		SpecialtyID *uint64

		CreatedAt time.Time
		UpdatedAt time.Time

		Deleted bool
	}
	Doctors []*Doctor
)
