package patient

import (
	"errors"
	"time"
)

var ErrDNIAlreadyExists = errors.New("patient dni already registered")

type (
	Patient struct {
		ID        uint64
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
