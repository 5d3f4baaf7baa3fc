package peers

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"hospital-manager-api/config"
	"hospital-manager-api/internal/apperr"
	"hospital-manager-api/internal/application/ports"
)

type Identity struct {
	c *client
}

func NewIdentity(cfg config.Peer, logger *zap.Logger) ports.IdentityClient {
	return &Identity{c: newClient("identity", cfg, logger)}
}

type userPayload struct {
	ID        uint64   `json:"id"`
	Version   int64    `json:"version"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Gender    string   `json:"gender"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	CenterID  uint64   `json:"center_id"`
	Roles     []string `json:"roles"`
	Enabled   bool     `json:"enabled"`
}

type registerUserPayload struct {
	Username  string   `json:"username"`
	Password  string   `json:"password"`
	Email     string   `json:"email"`
	Gender    string   `json:"gender"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	CenterID  uint64   `json:"center_id"`
	Roles     []string `json:"roles"`
}

func fromPayload(p *userPayload) *ports.RemoteUser {
	return &ports.RemoteUser{
		ID:        p.ID,
		Version:   p.Version,
		Username:  p.Username,
		Email:     p.Email,
		Gender:    p.Gender,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		CenterID:  p.CenterID,
		Roles:     p.Roles,
		Enabled:   p.Enabled,
	}
}

func (i *Identity) Register(ctx context.Context, req ports.RegisterUserRequest) (*ports.RemoteUser, error) {
	in := registerUserPayload{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		Gender:    req.Gender,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		CenterID:  req.CenterID,
		Roles:     req.Roles,
	}

	var out userPayload
	if err := i.c.doJSON(ctx, http.MethodPost, "/api/v1/users", in, &out); err != nil {
		return nil, err
	}

	return fromPayload(&out), nil
}

func (i *Identity) GetUserByID(ctx context.Context, id uint64, includeDisabled bool) (*ports.RemoteUser, error) {
	path := fmt.Sprintf("/api/v1/users/%d", id)
	if includeDisabled {
		path += "?include_disabled=true"
	}

	var out userPayload
	if err := i.c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	return fromPayload(&out), nil
}

// DeleteUser is idempotent: a 404 means the user is already gone and counts
// as success, which is what makes the registration compensation safe to
// repeat.
func (i *Identity) DeleteUser(ctx context.Context, id uint64, hard bool) error {
	path := fmt.Sprintf("/api/v1/users/%d", id)
	if hard {
		path += "?hard=true"
	}

	err := i.c.doJSON(ctx, http.MethodDelete, path, nil, nil)
	if err != nil && apperr.KindOf(err) == apperr.KindNotFound {
		return nil
	}

	return err
}

func (i *Identity) ExistsUserByID(ctx context.Context, id uint64) (bool, error) {
	var out userPayload
	err := i.c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/v1/users/%d", id), nil, &out)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (i *Identity) HasActiveUsersInCenter(ctx context.Context, centerID uint64) (bool, error) {
	return i.c.getBool(ctx, fmt.Sprintf("/api/v1/centers/%d/active-users", centerID))
}
