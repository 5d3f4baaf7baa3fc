package doctor

import (
	"hospital-manager-api/internal/application/ports"
	"hospital-manager-api/internal/domain/doctor"
)

func ToResponse(dDomain doctor.Doctor) Response {
	return Response{
		ID:          uint64(dDomain.ID),
		Version:     dDomain.Version,
		UserID:      dDomain.UserID,
		SpecialtyID: dDomain.SpecialtyID,
		CreatedAt:   dDomain.CreatedAt,
		UpdatedAt:   dDomain.UpdatedAt,
	}
}

func ToResponses(dsDomain doctor.Doctors) Responses {
	ds := make(Responses, len(dsDomain))
	for idx, d := range dsDomain {
		ds[idx] = ToResponse(*d)
	}

	return ds
}

func ToRegister(req RegisterRequest) ports.RegisterDoctor {
	return ports.RegisterDoctor{
		Username:    req.Username,
		Password:    req.Password,
		Email:       req.Email,
		Gender:      req.Gender,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		CenterID:    req.CenterID,
		SpecialtyID: req.SpecialtyID,
	}
}
