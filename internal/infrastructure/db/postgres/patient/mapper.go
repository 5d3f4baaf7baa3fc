package patient

import (
	domain "hospital-manager-api/internal/domain/patient"
)

func fromDBModel(model *Patient) *domain.Patient {
	return &domain.Patient{
		ID:        domain.ID(model.ID),
		Version:   model.Version,
		DNI:       model.DNI,
		FirstName: model.FirstName,
		LastName:  model.LastName,
		BirthDate: model.BirthDate,
		Gender:    model.Gender,
		CenterID:  model.CenterID,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,

		Deleted: model.Deleted,
	}
}

func fromDBModels(models *Patients) domain.Patients {
	ps := make(domain.Patients, len(*models))
	for idx, p := range *models {
		ps[idx] = fromDBModel(p)
	}

	return ps
}
