package doctor

import (
	domain "hospital-manager-api/internal/domain/doctor"
)

func fromDBModel(model *Doctor) *domain.Doctor {
	return &domain.Doctor{
		ID:          domain.ID(model.ID),
		Version:     model.Version,
		UserID:      model.UserID,
		SpecialtyID: model.SpecialtyID,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,

		Deleted: model.Deleted,
	}
}

func fromDBModels(models *Doctors) domain.Doctors {
	ds := make(domain.Doctors, len(*models))
	for idx, d := range *models {
		ds[idx] = fromDBModel(d)
	}

	return ds
}
