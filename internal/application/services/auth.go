package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"hospital-manager-api/internal/apperr"
	"hospital-manager-api/internal/application/ports"
	"hospital-manager-api/internal/domain/token"
	"hospital-manager-api/internal/domain/user"
	"hospital-manager-api/internal/infrastructure/jwt"
)

const (
	accessTokenTTL  = time.Hour
	resetTokenTTL   = 24 * time.Hour
	resetTokenBytes = 32
)

type AuthService struct {
	userRepository  user.Repository
	tokenRepository token.Repository
	jwt             *jwt.Service
	log             *zap.Logger
}

func NewAuthService(
	userRepository user.Repository,
	tokenRepository token.Repository,
	jwtService *jwt.Service,
	log *zap.Logger,
) ports.Auth {
	return &AuthService{
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		jwt:             jwtService,
		log:             log,
	}
}

func (as *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := as.userRepository.FetchUserByUsername(ctx, username)
	if err != nil {
		return "", apperr.Internal("failed to fetch user", err)
	}
	// same answer for unknown user and bad password
	if u == nil {
		return "", apperr.Unauthorized("invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", apperr.Unauthorized("invalid credentials")
	}

	tok, err := as.jwt.GenerateJWT(uint64(u.ID), u.Roles, u.CenterID, accessTokenTTL)
	if err != nil {
		return "", apperr.Internal("failed to sign token", err)
	}

	return tok, nil
}

func (as *AuthService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	u, err := as.userRepository.FetchUserByEmail(ctx, email)
	if err != nil {
		return "", apperr.Internal("failed to fetch user", err)
	}
	if u == nil {
		return "", apperr.NotFound("user not found")
	}

	buf := make([]byte, resetTokenBytes)
	if _, err = rand.Read(buf); err != nil {
		return "", apperr.Internal("failed to generate token", err)
	}
	tok := hex.EncodeToString(buf)

	if _, err = as.tokenRepository.CreateToken(ctx, token.VerificationToken{
		UserID:    u.ID,
		Token:     tok,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}); err != nil {
		return "", apperr.Internal("failed to store token", err)
	}

	return tok, nil
}

func (as *AuthService) ResetPassword(ctx context.Context, tok, newPassword string) error {
	vt, err := as.tokenRepository.FetchByToken(ctx, tok)
	if err != nil {
		return apperr.Internal("failed to fetch token", err)
	}
	if vt == nil {
		return apperr.Validation(map[string]string{"token": "invalid token"})
	}
	if !vt.ValidAt(time.Now()) {
		return apperr.Validation(map[string]string{"token": "token expired or already used"})
	}

	// the conditional update decides the race between two concurrent resets
	consumed, err := as.tokenRepository.MarkAsUsed(ctx, vt.ID)
	if err != nil {
		return apperr.Internal("failed to consume token", err)
	}
	if !consumed {
		return apperr.Conflict("token already used")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Internal("failed to hash password", err)
	}
	if err = as.userRepository.UpdatePassword(ctx, vt.UserID, string(hash)); err != nil {
		return apperr.Internal("failed to update password", err)
	}

	as.log.Info("password reset completed", zap.Uint64("user_id", uint64(vt.UserID)))

	return nil
}
