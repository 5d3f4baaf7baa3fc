package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"hospital-manager-api/internal/apperr"
	domain "hospital-manager-api/internal/domain/user"
)

func validUser() domain.User {
	return domain.User{
		Username:  "12345678A",
		Email:     "ana@example.com",
		Gender:    "F",
		FirstName: "Ana",
		LastName:  "García",
		CenterID:  3,
		Enabled:   true,
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	var created domain.User

	repo := &FakeUserRepo{
		CreateUserFunc: func(_ context.Context, req domain.User) (*domain.User, error) {
			created = req
			stored := req
			stored.ID = 7
			return &stored, nil
		},
	}
	admin := &FakeAdminClient{
		ValidateCenterIDFunc: func(_ context.Context, id uint64) error {
			require.Equal(t, uint64(3), id)
			return nil
		},
	}
	rabbit := NewFakeRabbit()
	counter := newTestCounter()

	svc := NewUserService(repo, admin, rabbit, zap.NewNop(), counter)

	u, err := svc.RegisterUser(context.Background(), validUser(), "correct-horse")

	require.NoError(t, err)
	assert.Equal(t, domain.ID(7), u.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("correct-horse")))
	assert.Equal(t, []string{domain.RoleUser}, created.Roles, "default role when none given")
	assert.Equal(t, 1.0, counterValue(counter, "user_registered_total"))

	events := rabbit.Events()
	require.Len(t, events, 1)
	assert.Equal(t, http.MethodPost, events[0].Method)
	assert.Equal(t, "user", events[0].Entity)
	assert.Equal(t, "7", events[0].EntityID)
}

func TestUserService_RegisterUser_PrechecksAndCenter(t *testing.T) {
	tests := []struct {
		name          string
		usernameTaken bool
		emailTaken    bool
		centerErr     error
		wantKind      apperr.Kind
		wantFields    []string
	}{
		{
			name:          "username already in use",
			usernameTaken: true,
			wantKind:      apperr.KindValidation,
			wantFields:    []string{"username"},
		},
		{
			name:          "both unique checks fail together",
			usernameTaken: true,
			emailTaken:    true,
			wantKind:      apperr.KindValidation,
			wantFields:    []string{"username", "email"},
		},
		{
			name:       "unknown center maps to a field error",
			centerErr:  apperr.NotFound("center not found"),
			wantKind:   apperr.KindValidation,
			wantFields: []string{"center_id"},
		},
		{
			name:      "admin service down is not a validation failure",
			centerErr: apperr.RemoteUnavailable("admin service is unavailable", errors.New("dial tcp")),
			wantKind:  apperr.KindRemoteUnavailable,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := &FakeUserRepo{
				ExistsByUsernameFunc: func(_ context.Context, _ string, _ domain.ID) (bool, error) {
					return tt.usernameTaken, nil
				},
				ExistsByEmailFunc: func(_ context.Context, _ string, _ domain.ID) (bool, error) {
					return tt.emailTaken, nil
				},
				CreateUserFunc: func(_ context.Context, _ domain.User) (*domain.User, error) {
					t.Fatal("create must not run after a failed pre-check")
					return nil, nil
				},
			}
			admin := &FakeAdminClient{
				ValidateCenterIDFunc: func(_ context.Context, _ uint64) error {
					return tt.centerErr
				},
			}
			rabbit := NewFakeRabbit()

			svc := NewUserService(repo, admin, rabbit, zap.NewNop(), newTestCounter())

			_, err := svc.RegisterUser(context.Background(), validUser(), "correct-horse")

			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperr.KindOf(err))
			for _, f := range tt.wantFields {
				assert.Contains(t, apperr.FieldsOf(err), f)
			}
			assert.Empty(t, rabbit.Events(), "nothing may be published on failure")
		})
	}
}

func TestUserService_UpdateUser_CenterRevalidation(t *testing.T) {
	tests := []struct {
		name          string
		currentCenter uint64
		newCenter     uint64
		centerErr     error
		wantKind      apperr.Kind
		wantChecked   bool
		wantCommitted bool
	}{
		{
			name:          "unchanged center skips the remote check",
			currentCenter: 3,
			newCenter:     3,
			wantChecked:   false,
			wantCommitted: true,
		},
		{
			name:          "changed center is validated under the lock",
			currentCenter: 3,
			newCenter:     4,
			wantChecked:   true,
			wantCommitted: true,
		},
		{
			name:          "changed center rejected by admin",
			currentCenter: 3,
			newCenter:     9,
			centerErr:     apperr.NotFound("center not found"),
			wantKind:      apperr.KindValidation,
			wantChecked:   true,
			wantCommitted: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			checked := false

			repo := &FakeUserRepo{
				FetchUserForUpdateFunc: func(_ context.Context, _ pgx.Tx, id domain.ID) (*domain.User, error) {
					u := validUser()
					u.ID = id
					u.CenterID = tt.currentCenter
					return &u, nil
				},
				UpdateUserFunc: func(_ context.Context, _ pgx.Tx, req domain.User) (*domain.User, error) {
					updated := req
					updated.Version = req.Version + 1
					return &updated, nil
				},
			}
			admin := &FakeAdminClient{
				ValidateCenterIDFunc: func(_ context.Context, id uint64) error {
					checked = true
					require.Equal(t, tt.newCenter, id)
					return tt.centerErr
				},
			}
			rabbit := NewFakeRabbit()

			svc := NewUserService(repo, admin, rabbit, zap.NewNop(), newTestCounter())

			u := validUser()
			u.ID = 7
			u.CenterID = tt.newCenter

			_, err := svc.UpdateUser(context.Background(), u)

			assert.Equal(t, tt.wantChecked, checked)
			assert.Equal(t, tt.wantCommitted, repo.tx.committed)
			if tt.wantKind == apperr.KindUnknown {
				require.NoError(t, err)
				events := rabbit.Events()
				require.Len(t, events, 1)
				assert.Equal(t, http.MethodPut, events[0].Method)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apperr.KindOf(err))
				assert.True(t, repo.tx.rolledBack)
				assert.Empty(t, rabbit.Events())
			}
		})
	}
}

func TestUserService_DeleteUser_HardDeleteIsIdempotentForTheCaller(t *testing.T) {
	present := true

	repo := &FakeUserRepo{
		HardDeleteUserFunc: func(_ context.Context, id domain.ID) (bool, error) {
			require.Equal(t, domain.ID(42), id)
			was := present
			present = false
			return was, nil
		},
	}
	rabbit := NewFakeRabbit()
	counter := newTestCounter()

	svc := NewUserService(repo, &FakeAdminClient{}, rabbit, zap.NewNop(), counter)

	// first run removes the row
	require.NoError(t, svc.DeleteUser(context.Background(), 42, true))
	assert.Len(t, rabbit.Events(), 1)
	assert.Equal(t, 1.0, counterValue(counter, "user_deleted_total"))

	// a repeated compensation run answers 404 so the client side can treat
	// it as success
	err := svc.DeleteUser(context.Background(), 42, true)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Equal(t, "user not found", apperr.MessageOf(err))
	assert.Empty(t, rabbit.Events(), "the repeat must not publish")
	assert.Equal(t, 1.0, counterValue(counter, "user_deleted_total"))
}

func TestUserService_DeleteUser_SoftDisablesUnderLock(t *testing.T) {
	disabled := false

	repo := &FakeUserRepo{
		FetchUserForUpdateFunc: func(_ context.Context, _ pgx.Tx, id domain.ID) (*domain.User, error) {
			u := validUser()
			u.ID = id
			return &u, nil
		},
		DisableUserFunc: func(_ context.Context, _ pgx.Tx, _ domain.ID) error {
			disabled = true
			return nil
		},
	}
	rabbit := NewFakeRabbit()

	svc := NewUserService(repo, &FakeAdminClient{}, rabbit, zap.NewNop(), newTestCounter())

	require.NoError(t, svc.DeleteUser(context.Background(), 42, false))
	assert.True(t, disabled)
	assert.True(t, repo.tx.committed)

	events := rabbit.Events()
	require.Len(t, events, 1)
	assert.Equal(t, http.MethodDelete, events[0].Method)
	assert.Equal(t, "42", events[0].EntityID)
}

func TestUserService_DeleteUser_SoftOnMissingUser(t *testing.T) {
	repo := &FakeUserRepo{
		FetchUserForUpdateFunc: func(_ context.Context, _ pgx.Tx, _ domain.ID) (*domain.User, error) {
			return nil, nil
		},
	}
	rabbit := NewFakeRabbit()

	svc := NewUserService(repo, &FakeAdminClient{}, rabbit, zap.NewNop(), newTestCounter())

	err := svc.DeleteUser(context.Background(), 99, false)

	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.False(t, repo.tx.committed)
	assert.Empty(t, rabbit.Events())
}
