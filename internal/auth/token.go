package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// FallbackTokenTTL applies when neither the caller nor the service default
// supplies a lifetime.
const FallbackTokenTTL = 15 * time.Minute

// Token verification failures. Callers at the HTTP boundary must not expose
// which one occurred.
var (
	ErrInvalidSignature = errors.New("token signature is invalid")
	ErrExpired          = errors.New("token has expired")
	ErrMalformed        = errors.New("token is malformed")
)

// Claims are the JWT claims of an access token. The subject is the user's
// email address.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 access tokens.
type TokenService struct {
	secret     []byte
	defaultTTL time.Duration
	now        func() time.Time
}

// TokenOption customizes a TokenService.
type TokenOption func(*TokenService)

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) {
		s.now = now
	}
}

// NewTokenService returns a TokenService signing with secret. defaultTTL is
// used when Issue is called without a lifetime; zero selects
// FallbackTokenTTL.
func NewTokenService(secret []byte, defaultTTL time.Duration, opts ...TokenOption) (*TokenService, error) {
	if len(secret) == 0 {
		return nil, errors.New("token signing secret is required")
	}
	s := &TokenService{
		secret:     append([]byte(nil), secret...),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ResolveTTL applies the lifetime policy: a positive ttl wins, then the
// service default, then FallbackTokenTTL.
func (s *TokenService) ResolveTTL(ttl time.Duration) time.Duration {
	if ttl > 0 {
		return ttl
	}
	if s.defaultTTL > 0 {
		return s.defaultTTL
	}
	return FallbackTokenTTL
}

// Issue signs a token for subject valid for ttl (see ResolveTTL) and returns
// it together with its expiry.
func (s *TokenService) Issue(subject string, ttl time.Duration) (string, time.Time, error) {
	if subject == "" {
		return "", time.Time{}, errors.New("token subject is required")
	}

	// exp is stored with second precision. Rounding up keeps the token valid
	// for at least ttl.
	now := s.now()
	expiresAt := now.Add(s.ResolveTTL(ttl))
	if whole := expiresAt.Truncate(time.Second); !whole.Equal(expiresAt) {
		expiresAt = whole.Add(time.Second)
	}

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks the token signature and expiry and returns its subject.
// The error is one of ErrInvalidSignature, ErrExpired or ErrMalformed.
func (s *TokenService) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrMalformed
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", classify(err)
	}

	if claims.Subject == "" {
		return "", ErrMalformed
	}
	return claims.Subject, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrInvalidSignature
	default:
		return ErrMalformed
	}
}

// IsTokenError reports whether err is one of the verification failures.
func IsTokenError(err error) bool {
	return errors.Is(err, ErrInvalidSignature) || errors.Is(err, ErrExpired) || errors.Is(err, ErrMalformed)
}
