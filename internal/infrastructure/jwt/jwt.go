package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Service struct {
	jwtSecret string
}

func New(jwtSecret string) *Service { return &Service{jwtSecret: jwtSecret} }

// Claims carry what the gateway needs to mint the trusted identity headers
// (X-User-Id, X-Roles, X-Center-Id) after verifying the signature.
type Claims struct {
	UserID   uint64   `json:"user_id"`
	Roles    []string `json:"roles"`
	CenterID uint64   `json:"center_id"`
	jwt.RegisteredClaims
}

func (s *Service) GenerateJWT(userID uint64, roles []string, centerID uint64, expiresIn time.Duration) (string, error) {
	claims := Claims{
		UserID:   userID,
		Roles:    roles,
		CenterID: centerID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.jwtSecret))
}

func (s *Service) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}
