package patient

import (
	"time"
)

type (
	ID      uint64
	Patient struct {
		ID        ID
		Version   int64
		DNI       string
		FirstName string
		LastName  string
		BirthDate time.Time
		Gender    string
		CenterID  uint64

		CreatedAt time.Time
		UpdatedAt time.Time

		Deleted bool
	}
	Patients []*Patient
)
