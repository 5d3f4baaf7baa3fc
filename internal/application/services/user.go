package services

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"hospital-manager-api/internal/apperr"
	"hospital-manager-api/internal/application/ports"
	domain "hospital-manager-api/internal/domain/user"
	userDB "hospital-manager-api/internal/infrastructure/db/postgres/user"
	"hospital-manager-api/internal/infrastructure/mq"
	userDTO "hospital-manager-api/internal/interface/api/rest/dto/user"
)

type UserService struct {
	userRepository domain.Repository
	admin          ports.AdminClient
	mq             ports.RabbitMQ
	log            *zap.Logger
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	admin ports.AdminClient,
	rabbit ports.RabbitMQ,
	log *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		admin:          admin,
		mq:             rabbit,
		log:            log,
		mCounter:       mCounter,
	}
}

func (us *UserService) publish(method string, id domain.ID, payload any) {
	us.mq.GetInputChan() <- mq.Event{
		Id:       uuid.New(),
		TS:       time.Now(),
		Method:   method,
		Entity:   "user",
		EntityID: strconv.FormatUint(uint64(id), 10),
		Payload:  payload,
	}
}

func (us *UserService) FindUsers(ctx context.Context, page int) (domain.Users, error) {
	users, err := us.userRepository.FetchUsers(ctx, page)
	if err != nil {
		return nil, apperr.Internal("failed to fetch users", err)
	}

	return users, nil
}

func (us *UserService) FindUserByID(ctx context.Context, id domain.ID, includeDisabled bool) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, id, includeDisabled)
	if err != nil {
		return nil, apperr.Internal("failed to fetch user", err)
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}

	return u, nil
}

func (us *UserService) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByUsername(ctx, username)
	if err != nil {
		return nil, apperr.Internal("failed to fetch user", err)
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}

	return u, nil
}

func (us *UserService) uniqueFields(ctx context.Context, u domain.User) (map[string]string, error) {
	fields := map[string]string{}

	taken, err := us.userRepository.ExistsByUsername(ctx, u.Username, u.ID)
	if err != nil {
		return nil, apperr.Internal("failed to check username", err)
	}
	if taken {
		fields["username"] = "username already in use"
	}

	taken, err = us.userRepository.ExistsByEmail(ctx, u.Email, u.ID)
	if err != nil {
		return nil, apperr.Internal("failed to check email", err)
	}
	if taken {
		fields["email"] = "email already in use"
	}

	return fields, nil
}

func (us *UserService) validateCenter(ctx context.Context, centerID uint64) error {
	err := us.admin.ValidateCenterID(ctx, centerID)
	if err == nil {
		return nil
	}
	if apperr.KindOf(err) == apperr.KindNotFound {
		return apperr.Validation(map[string]string{"center_id": "center not found"})
	}

	return err
}

func (us *UserService) RegisterUser(ctx context.Context, u domain.User, password string) (*domain.User, error) {
	fields, err := us.uniqueFields(ctx, u)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		return nil, apperr.Validation(fields)
	}
	if err = us.validateCenter(ctx, u.CenterID); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal("failed to hash password", err)
	}
	u.PasswordHash = string(hash)
	if len(u.Roles) == 0 {
		u.Roles = []string{domain.RoleUser}
	}

	created, err := us.userRepository.CreateUser(ctx, u)
	if err != nil {
		if errors.Is(err, userDB.ErrUserAlreadyExists) {
			return nil, apperr.Conflict(err.Error())
		}
		return nil, apperr.Internal("failed to create user", err)
	}

	us.publish(http.MethodPost, created.ID, userDTO.ToResponseUser(*created))
	us.mCounter.WithLabelValues("user_registered_total").Inc()

	return created, nil
}

// UpdateUser rewrites the profile under a row lock. The lock is held across
// the remote center check so the validated state cannot be swapped out
// before the write lands.
func (us *UserService) UpdateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	fields, err := us.uniqueFields(ctx, u)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		return nil, apperr.Validation(fields)
	}

	tx, err := us.userRepository.Begin(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cur, err := us.userRepository.FetchUserForUpdate(ctx, tx, u.ID)
	if err != nil {
		return nil, apperr.Internal("failed to lock user", err)
	}
	if cur == nil {
		return nil, apperr.NotFound("user not found")
	}

	if cur.CenterID != u.CenterID {
		if err = us.validateCenter(ctx, u.CenterID); err != nil {
			return nil, err
		}
	}

	updated, err := us.userRepository.UpdateUser(ctx, tx, u)
	if err != nil {
		if errors.Is(err, userDB.ErrUserAlreadyExists) {
			return nil, apperr.Conflict(err.Error())
		}
		return nil, apperr.Internal("failed to update user", err)
	}
	if updated == nil {
		return nil, apperr.NotFound("user not found")
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, apperr.Internal("failed to commit transaction", err)
	}

	us.publish(http.MethodPut, updated.ID, userDTO.ToResponseUser(*updated))
	us.mCounter.WithLabelValues("user_updated_total").Inc()

	return updated, nil
}

func (us *UserService) DeleteUser(ctx context.Context, id domain.ID, hard bool) error {
	if hard {
		deleted, err := us.userRepository.HardDeleteUser(ctx, id)
		if err != nil {
			return apperr.Internal("failed to delete user", err)
		}
		if !deleted {
			// a repeated compensation run lands here; the 404 tells the
			// caller the user is already gone
			return apperr.NotFound("user not found")
		}
	} else {
		tx, err := us.userRepository.Begin(ctx)
		if err != nil {
			return apperr.Internal("failed to begin transaction", err)
		}
		defer func() { _ = tx.Rollback(ctx) }()

		cur, err := us.userRepository.FetchUserForUpdate(ctx, tx, id)
		if err != nil {
			return apperr.Internal("failed to lock user", err)
		}
		if cur == nil {
			return apperr.NotFound("user not found")
		}
		if err = us.userRepository.DisableUser(ctx, tx, id); err != nil {
			return apperr.Internal("failed to disable user", err)
		}
		if err = tx.Commit(ctx); err != nil {
			return apperr.Internal("failed to commit transaction", err)
		}
	}

	us.publish(http.MethodDelete, id, nil)
	us.mCounter.WithLabelValues("user_deleted_total").Inc()

	return nil
}

func (us *UserService) HasActiveUsersInCenter(ctx context.Context, centerID uint64) (bool, error) {
	busy, err := us.userRepository.HasEnabledUsersInCenter(ctx, centerID)
	if err != nil {
		return false, apperr.Internal("failed to check center users", err)
	}

	return busy, nil
}
