package ports

import (
	"context"
)

// RemoteUser is the identity service's view of a user as seen over the wire.
type RemoteUser struct {
	ID        uint64
	Version   int64
	Username  string
	Email     string
	Gender    string
	FirstName string
	LastName  string
	CenterID  uint64
	Roles     []string
	Enabled   bool
}

type RegisterUserRequest struct {
	Username  string
	Password  string
	Email     string
	Gender    string
	FirstName string
	LastName  string
	CenterID  uint64
	Roles     []string
}

// IdentityClient talks to the auth service. Existence probes map a remote
// 404 to false rather than an error; DeleteUser is idempotent (a 404 on
// repeat is success).
type IdentityClient interface {
	Register(ctx context.Context, req RegisterUserRequest) (*RemoteUser, error)
	GetUserByID(ctx context.Context, id uint64, includeDisabled bool) (*RemoteUser, error)
	DeleteUser(ctx context.Context, id uint64, hard bool) error
	ExistsUserByID(ctx context.Context, id uint64) (bool, error)
	HasActiveUsersInCenter(ctx context.Context, centerID uint64) (bool, error)
}

// ConsultingClient talks to the consulting service. Answers are snapshots
// valid only at query time; callers accept the check-then-act window.
type ConsultingClient interface {
	HasFutureAppointments(ctx context.Context, doctorID uint64) (bool, error)
	HasActiveAppointmentsInCenter(ctx context.Context, centerID uint64) (bool, error)
	HasActivePatientsInCenter(ctx context.Context, centerID uint64) (bool, error)
}

// AdminClient talks to the admin service.
type AdminClient interface {
	// ValidateCenterID probes center existence: nil when the center is
	// active, a NotFound classification when it is not.
	ValidateCenterID(ctx context.Context, id uint64) error
	ExistsDoctorByID(ctx context.Context, id uint64) (bool, error)
}
