package consultation

import (
	domain "hospital-manager-api/internal/domain/consultation"
)

func fromDBModel(model *MedicalConsultation) *domain.MedicalConsultation {
	return &domain.MedicalConsultation{
		ID:        domain.ID(model.ID),
		Version:   model.Version,
		PatientID: model.PatientID,
		DoctorID:  model.DoctorID,
		CenterID:  model.CenterID,
		Date:      model.Date,
		Diagnosis: model.Diagnosis,
		Treatment: model.Treatment,
		Notes:     model.Notes,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,

		Deleted: model.Deleted,
	}
}

func fromDBModels(models *MedicalConsultations) domain.MedicalConsultations {
	cs := make(domain.MedicalConsultations, len(*models))
	for idx, c := range *models {
		cs[idx] = fromDBModel(c)
	}

	return cs
}
