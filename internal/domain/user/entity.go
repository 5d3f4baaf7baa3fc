package user

import (
	"time"
)

type (
	ID uint64
	// User is owned by the identity service. Enabled=false denotes a
	// deleted/disabled user: the polarity is inverted versus the other
	// entities' Deleted flag and is part of the service's external contract.
	User struct {
		ID           ID
		Version      int64
		Username     string // DNI
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

const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleDoctor  = "DOCTOR"
	RoleUser    = "USER"
)
