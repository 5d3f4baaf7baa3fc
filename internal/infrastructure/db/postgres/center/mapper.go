package center

import (
	domain "hospital-manager-api/internal/domain/center"
)

func fromDBModel(model *Center) *domain.Center {
	return &domain.Center{
		ID:      domain.ID(model.ID),
		Version: model.Version,
		Name:    model.Name,
		City:    model.City,
		Address: model.Address,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,

		Deleted: model.Deleted,
	}
}

func fromDBModels(models *Centers) domain.Centers {
	cs := make(domain.Centers, len(*models))
	for idx, c := range *models {
		cs[idx] = fromDBModel(c)
	}

	return cs
}
