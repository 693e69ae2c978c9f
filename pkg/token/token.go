package token

import (
	"errors"
	"time"

	"dental-clinic-portal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalid covers bad signatures, malformed tokens and missing subjects.
	ErrInvalid = errors.New("invalid token")
	// ErrExpired is returned when a token carries an expiry that has elapsed.
	ErrExpired = errors.New("token expired")
)

type Claims struct {
	Role    string `json:"role"`
	TokenID string `json:"token_id"`
	jwt.RegisteredClaims
}

// Username is the token subject.
func (c *Claims) Username() string {
	return c.Subject
}

// Service issues and verifies HS256-signed identity tokens.
// Verification is a pure function of (token, secret, clock); nothing is stored.
type Service struct {
	secret []byte
	expiry time.Duration
}

func NewService(cfg config.JWTConfig) *Service {
	return &Service{
		secret: []byte(cfg.Secret),
		expiry: cfg.Expiry,
	}
}

// Issue signs a token for the given subject. A ttl of zero omits the expiry
// claim entirely, producing a token that never expires.
func (s *Service) Issue(username, role string, ttl time.Duration) (string, string, error) {
	tokenID := uuid.New().String()
	claims := Claims{
		Role:    role,
		TokenID: tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  username,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.secret)
	if err != nil {
		return "", "", err
	}

	return signedToken, tokenID, nil
}

// Verify checks the signature and expiry and returns the embedded claims.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalid
	}
	if claims.Subject == "" {
		return nil, ErrInvalid
	}

	return claims, nil
}

// Expiry is the configured ttl for tokens issued at login.
func (s *Service) Expiry() time.Duration {
	return s.expiry
}
