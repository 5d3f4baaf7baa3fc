package ports

import (
	"context"

	"hospital-manager-api/internal/domain/specialty"
)

type SpecialtyService interface {
	FindSpecialties(ctx context.Context, page int) (specialty.Specialties, error)
	FindSpecialtyByID(ctx context.Context, id specialty.ID) (*specialty.Specialty, error)
	CreateSpecialty(ctx context.Context, s specialty.Specialty) (*specialty.Specialty, error)
	UpdateSpecialty(ctx context.Context, s specialty.Specialty) (*specialty.Specialty, error)
	DeleteSpecialty(ctx context.Context, id specialty.ID) error
}
