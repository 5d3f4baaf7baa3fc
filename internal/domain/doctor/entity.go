package doctor

import (
	"time"
)

type (
	ID uint64
	// Doctor holds a weak reference to a User owned by the identity service.
	// UserID validity is checked remotely at write time, never by a foreign key.
	Doctor struct {
		ID          ID
		Version     int64
		UserID      uint64
		SpecialtyID *uint64

		CreatedAt time.Time
		UpdatedAt time.Time

		Deleted bool
	}
	Doctors []*Doctor
)
