package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"hospital-manager-api/internal/apperr"
	"hospital-manager-api/internal/domain/token"
	domain "hospital-manager-api/internal/domain/user"
	"hospital-manager-api/internal/infrastructure/jwt"
)

type FakeUserRepo struct {
	FetchUserByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
	FetchUserByEmailFunc    func(ctx context.Context, email string) (*domain.User, error)
	UpdatePasswordFunc      func(ctx context.Context, id domain.ID, passwordHash string) error
	ExistsByUsernameFunc    func(ctx context.Context, username string, excludeID domain.ID) (bool, error)
	ExistsByEmailFunc       func(ctx context.Context, email string, excludeID domain.ID) (bool, error)
	CreateUserFunc          func(ctx context.Context, req domain.User) (*domain.User, error)
	HardDeleteUserFunc      func(ctx context.Context, id domain.ID) (bool, error)
	FetchUserForUpdateFunc  func(ctx context.Context, tx pgx.Tx, id domain.ID) (*domain.User, error)
	UpdateUserFunc          func(ctx context.Context, tx pgx.Tx, req domain.User) (*domain.User, error)
	DisableUserFunc         func(ctx context.Context, tx pgx.Tx, id domain.ID) error

	tx *stubTx
}

func (f *FakeUserRepo) FetchUsers(_ context.Context, _ int) (domain.Users, error) {
	return nil, errors.New("not used")
}
func (f *FakeUserRepo) FetchUserByID(_ context.Context, _ domain.ID, _ bool) (*domain.User, error) {
	return nil, errors.New("not used")
}
func (f *FakeUserRepo) FetchUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if f.FetchUserByUsernameFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchUserByUsernameFunc(ctx, username)
}
func (f *FakeUserRepo) FetchUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.FetchUserByEmailFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchUserByEmailFunc(ctx, email)
}
func (f *FakeUserRepo) ExistsByUsername(ctx context.Context, username string, excludeID domain.ID) (bool, error) {
	if f.ExistsByUsernameFunc == nil {
		return false, nil
	}
	return f.ExistsByUsernameFunc(ctx, username, excludeID)
}
func (f *FakeUserRepo) ExistsByEmail(ctx context.Context, email string, excludeID domain.ID) (bool, error) {
	if f.ExistsByEmailFunc == nil {
		return false, nil
	}
	return f.ExistsByEmailFunc(ctx, email, excludeID)
}
func (f *FakeUserRepo) HasEnabledUsersInCenter(_ context.Context, _ uint64) (bool, error) {
	return false, errors.New("not used")
}
func (f *FakeUserRepo) CreateUser(ctx context.Context, req domain.User) (*domain.User, error) {
	if f.CreateUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateUserFunc(ctx, req)
}
func (f *FakeUserRepo) UpdatePassword(ctx context.Context, id domain.ID, passwordHash string) error {
	if f.UpdatePasswordFunc == nil {
		return errors.New("not used")
	}
	return f.UpdatePasswordFunc(ctx, id, passwordHash)
}
func (f *FakeUserRepo) HardDeleteUser(ctx context.Context, id domain.ID) (bool, error) {
	if f.HardDeleteUserFunc == nil {
		return false, errors.New("not used")
	}
	return f.HardDeleteUserFunc(ctx, id)
}
func (f *FakeUserRepo) Begin(_ context.Context) (pgx.Tx, error) {
	if f.tx == nil {
		f.tx = &stubTx{}
	}
	return f.tx, nil
}
func (f *FakeUserRepo) FetchUserForUpdate(ctx context.Context, tx pgx.Tx, id domain.ID) (*domain.User, error) {
	if f.FetchUserForUpdateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchUserForUpdateFunc(ctx, tx, id)
}
func (f *FakeUserRepo) UpdateUser(ctx context.Context, tx pgx.Tx, req domain.User) (*domain.User, error) {
	if f.UpdateUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateUserFunc(ctx, tx, req)
}
func (f *FakeUserRepo) DisableUser(ctx context.Context, tx pgx.Tx, id domain.ID) error {
	if f.DisableUserFunc == nil {
		return errors.New("not used")
	}
	return f.DisableUserFunc(ctx, tx, id)
}

type FakeTokenRepo struct {
	CreateTokenFunc  func(ctx context.Context, req token.VerificationToken) (*token.VerificationToken, error)
	FetchByTokenFunc func(ctx context.Context, tok string) (*token.VerificationToken, error)
	MarkAsUsedFunc   func(ctx context.Context, id token.ID) (bool, error)
}

func (f *FakeTokenRepo) CreateToken(ctx context.Context, req token.VerificationToken) (*token.VerificationToken, error) {
	if f.CreateTokenFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateTokenFunc(ctx, req)
}
func (f *FakeTokenRepo) FetchByToken(ctx context.Context, tok string) (*token.VerificationToken, error) {
	if f.FetchByTokenFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchByTokenFunc(ctx, tok)
}
func (f *FakeTokenRepo) MarkAsUsed(ctx context.Context, id token.ID) (bool, error) {
	if f.MarkAsUsedFunc == nil {
		return false, errors.New("not used")
	}
	return f.MarkAsUsedFunc(ctx, id)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthService_Login(t *testing.T) {
	existing := &domain.User{
		ID:           7,
		Username:     "12345678A",
		PasswordHash: "",
		Roles:        []string{domain.RoleDoctor},
		CenterID:     3,
		Enabled:      true,
	}

	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{"valid credentials", "12345678A", "correct-horse", false},
		{"wrong password", "12345678A", "wrong", true},
		{"unknown user", "00000000Z", "correct-horse", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			existing.PasswordHash = hashOf(t, "correct-horse")

			users := &FakeUserRepo{
				FetchUserByUsernameFunc: func(_ context.Context, username string) (*domain.User, error) {
					if username == existing.Username {
						return existing, nil
					}
					return nil, nil
				},
			}

			jwtService := jwt.New("test-secret")
			svc := NewAuthService(users, &FakeTokenRepo{}, jwtService, zap.NewNop())

			tok, err := svc.Login(context.Background(), tt.username, tt.password)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
				assert.Equal(t, "invalid credentials", apperr.MessageOf(err))
				return
			}

			require.NoError(t, err)
			claims, err := jwtService.ValidateToken(tok)
			require.NoError(t, err)
			assert.Equal(t, uint64(7), claims.UserID)
			assert.Equal(t, []string{domain.RoleDoctor}, claims.Roles)
			assert.Equal(t, uint64(3), claims.CenterID)
		})
	}
}

func TestAuthService_RequestPasswordReset(t *testing.T) {
	var stored token.VerificationToken

	users := &FakeUserRepo{
		FetchUserByEmailFunc: func(_ context.Context, email string) (*domain.User, error) {
			if email == "ana@example.com" {
				return &domain.User{ID: 7, Email: email}, nil
			}
			return nil, nil
		},
	}
	tokens := &FakeTokenRepo{
		CreateTokenFunc: func(_ context.Context, req token.VerificationToken) (*token.VerificationToken, error) {
			stored = req
			return &req, nil
		},
	}

	svc := NewAuthService(users, tokens, jwt.New("test-secret"), zap.NewNop())

	tok, err := svc.RequestPasswordReset(context.Background(), "ana@example.com")

	require.NoError(t, err)
	assert.Len(t, tok, 2*resetTokenBytes, "hex encoded token")
	assert.Equal(t, tok, stored.Token)
	assert.Equal(t, domain.ID(7), stored.UserID)
	assert.WithinDuration(t, time.Now().Add(resetTokenTTL), stored.ExpiresAt, time.Minute)

	_, err = svc.RequestPasswordReset(context.Background(), "nobody@example.com")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestAuthService_ResetPassword(t *testing.T) {
	valid := token.VerificationToken{
		ID:        1,
		UserID:    7,
		Token:     "tok-valid",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	expired := token.VerificationToken{
		ID:        2,
		UserID:    7,
		Token:     "tok-expired",
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	used := token.VerificationToken{
		ID:        3,
		UserID:    7,
		Token:     "tok-used",
		Used:      true,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	tests := []struct {
		name       string
		token      string
		consumed   bool
		wantKind   apperr.Kind
		wantUpdate bool
	}{
		{"valid token", "tok-valid", true, apperr.KindUnknown, true},
		{"unknown token", "tok-missing", false, apperr.KindValidation, false},
		{"expired token", "tok-expired", false, apperr.KindValidation, false},
		{"already used token", "tok-used", false, apperr.KindValidation, false},
		{"lost the consume race", "tok-valid", false, apperr.KindConflict, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var updatedHash string

			users := &FakeUserRepo{
				UpdatePasswordFunc: func(_ context.Context, id domain.ID, passwordHash string) error {
					require.Equal(t, domain.ID(7), id)
					updatedHash = passwordHash
					return nil
				},
			}
			tokens := &FakeTokenRepo{
				FetchByTokenFunc: func(_ context.Context, tok string) (*token.VerificationToken, error) {
					switch tok {
					case valid.Token:
						v := valid
						return &v, nil
					case expired.Token:
						v := expired
						return &v, nil
					case used.Token:
						v := used
						return &v, nil
					}
					return nil, nil
				},
				MarkAsUsedFunc: func(_ context.Context, _ token.ID) (bool, error) {
					return tt.consumed, nil
				},
			}

			svc := NewAuthService(users, tokens, jwt.New("test-secret"), zap.NewNop())

			err := svc.ResetPassword(context.Background(), tt.token, "new-password-1")

			if tt.wantKind == apperr.KindUnknown {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apperr.KindOf(err))
			}

			if tt.wantUpdate {
				require.NotEmpty(t, updatedHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updatedHash), []byte("new-password-1")))
			} else {
				assert.Empty(t, updatedHash)
			}
		})
	}
}
