package user

import (
	"errors"
	"time"
)

var ErrUserAlreadyExists = errors.New("username or email already in use")

type (
	User struct {
		ID           uint64
		Version      int64
		Username     string
		PasswordHash string
		Email        string
		Gender       string
		FirstName    string
		LastName     string
		CenterID     uint64
		Roles        []string

		CreatedAt time.Time
		UpdatedAt time.Time

		Enabled bool
	}
	Users []*User
)
