package consultation

import (
	"hospital-manager-api/internal/domain/consultation"
)

func ToResponse(cDomain consultation.MedicalConsultation) Response {
	return Response{
		ID:        uint64(cDomain.ID),
		Version:   cDomain.Version,
		PatientID: cDomain.PatientID,
		DoctorID:  cDomain.DoctorID,
		CenterID:  cDomain.CenterID,
		Date:      cDomain.Date,
		Diagnosis: cDomain.Diagnosis,
		Treatment: cDomain.Treatment,
		Notes:     cDomain.Notes,
		CreatedAt: cDomain.CreatedAt,
		UpdatedAt: cDomain.UpdatedAt,
	}
}

func ToResponses(csDomain consultation.MedicalConsultations) Responses {
	cs := make(Responses, len(csDomain))
	for idx, c := range csDomain {
		cs[idx] = ToResponse(*c)
	}

	return cs
}

func ToDomain(req Request) consultation.MedicalConsultation {
	return consultation.MedicalConsultation{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		CenterID:  req.CenterID,
		Date:      req.Date,
		Diagnosis: req.Diagnosis,
		Treatment: req.Treatment,
		Notes:     req.Notes,
		Version:   req.Version,
	}
}
