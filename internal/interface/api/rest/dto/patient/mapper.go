package patient

import (
	"errors"
	"time"

	"hospital-manager-api/internal/domain/patient"
)

const birthDateLayout = "2006-01-02"

func ToResponse(pDomain patient.Patient) Response {
	return Response{
		ID:        uint64(pDomain.ID),
		Version:   pDomain.Version,
		DNI:       pDomain.DNI,
		FirstName: pDomain.FirstName,
		LastName:  pDomain.LastName,
		BirthDate: pDomain.BirthDate.Format(birthDateLayout),
		Gender:    pDomain.Gender,
		CenterID:  pDomain.CenterID,
		CreatedAt: pDomain.CreatedAt,
		UpdatedAt: pDomain.UpdatedAt,
	}
}

func ToResponses(psDomain patient.Patients) Responses {
	ps := make(Responses, len(psDomain))
	for idx, p := range psDomain {
		ps[idx] = ToResponse(*p)
	}

	return ps
}

func ToDomain(req Request) (patient.Patient, error) {
	d, err := time.Parse(birthDateLayout, req.BirthDate)
	if err != nil {
		return patient.Patient{}, errors.New("invalid birth_date format, want YYYY-MM-DD")
	}

	return patient.Patient{
		DNI:       req.DNI,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: d,
		Gender:    req.Gender,
		CenterID:  req.CenterID,
		Version:   req.Version,
	}, nil
}
