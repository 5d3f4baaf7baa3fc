package center

import (
	"hospital-manager-api/internal/domain/center"
)

func ToResponse(cDomain center.Center) Response {
	return Response{
		ID:        uint64(cDomain.ID),
		Version:   cDomain.Version,
		Name:      cDomain.Name,
		City:      cDomain.City,
		Address:   cDomain.Address,
		CreatedAt: cDomain.CreatedAt,
		UpdatedAt: cDomain.UpdatedAt,
	}
}

func ToResponses(csDomain center.Centers) Responses {
	cs := make(Responses, len(csDomain))
	for idx, c := range csDomain {
		cs[idx] = ToResponse(*c)
	}

	return cs
}

func ToDomain(req Request) center.Center {
	return center.Center{
		Name:    req.Name,
		City:    req.City,
		Address: req.Address,
		Version: req.Version,
	}
}
