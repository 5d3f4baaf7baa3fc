package center

import (
	"time"
)

type (
	ID     uint64
	Center struct {
		ID      ID
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
