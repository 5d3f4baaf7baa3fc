package center

import (
	"errors"
	"time"
)

var ErrCenterAlreadyExists = errors.New("center name or address already in use")

type (
	Center struct {
		ID      uint64
		Version int64
		Name    string
		City    string
		Address string

		CreatedAt time.Time
		UpdatedAt time.Time

		Deleted bool
	}
	Centers []*Center
)
