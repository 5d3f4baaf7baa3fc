package specialty

import (
	domain "hospital-manager-api/internal/domain/specialty"
)

func fromDBModel(model *Specialty) *domain.Specialty {
	return &domain.Specialty{
		ID:          domain.ID(model.ID),
		Version:     model.Version,
		Name:        model.Name,
		Description: model.Description,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,

		Deleted: model.Deleted,
	}
}

func fromDBModels(models *Specialties) domain.Specialties {
	ss := make(domain.Specialties, len(*models))
	for idx, s := range *models {
		ss[idx] = fromDBModel(s)
	}

	return ss
}
