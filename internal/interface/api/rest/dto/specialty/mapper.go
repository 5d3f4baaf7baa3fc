package specialty

import (
	"hospital-manager-api/internal/domain/specialty"
)

func ToResponse(sDomain specialty.Specialty) Response {
	return Response{
		ID:          uint64(sDomain.ID),
		Version:     sDomain.Version,
		Name:        sDomain.Name,
		Description: sDomain.Description,
		CreatedAt:   sDomain.CreatedAt,
		UpdatedAt:   sDomain.UpdatedAt,
	}
}

func ToResponses(ssDomain specialty.Specialties) Responses {
	ss := make(Responses, len(ssDomain))
	for idx, s := range ssDomain {
		ss[idx] = ToResponse(*s)
	}

	return ss
}

func ToDomain(req Request) specialty.Specialty {
	return specialty.Specialty{
		Name:        req.Name,
		Description: req.Description,
		Version:     req.Version,
	}
}
