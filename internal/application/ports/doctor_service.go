package ports

import (
	"context"

	"hospital-manager-api/internal/domain/doctor"
)

// RegisterDoctor carries the compound create: the identity-service user and
// the local doctor row it will reference.
type RegisterDoctor struct {
	Username    string
	Password    string
	Email       string
	Gender      string
	FirstName   string
	LastName    string
	CenterID    uint64
	SpecialtyID *uint64
}

type DoctorService interface {
	FindDoctors(ctx context.Context, page int) (doctor.Doctors, error)
	FindDoctorByID(ctx context.Context, id doctor.ID) (*doctor.Doctor, error)
	RegisterDoctor(ctx context.Context, reg RegisterDoctor) (*doctor.Doctor, error)
	UpdateDoctor(ctx context.Context, d doctor.Doctor) (*doctor.Doctor, error)
	DeleteDoctor(ctx context.Context, id doctor.ID) error
}
