package user

import (
	"hospital-manager-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) Response {
	return Response{
		ID:        uint64(uDomain.ID),
		Version:   uDomain.Version,
		Username:  uDomain.Username,
		Email:     uDomain.Email,
		Gender:    uDomain.Gender,
		FirstName: uDomain.FirstName,
		LastName:  uDomain.LastName,
		CenterID:  uDomain.CenterID,
		Roles:     uDomain.Roles,
		Enabled:   uDomain.Enabled,
	}
}

func ToResponseUsers(usDomain user.Users) Responses {
	us := make(Responses, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

func ToDomainUser(req Request) user.User {
	return user.User{
		Username:  req.Username,
		Email:     req.Email,
		Gender:    req.Gender,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		CenterID:  req.CenterID,
		Roles:     req.Roles,
	}
}
