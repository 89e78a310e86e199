package api

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ericogr/novel-tactics/internal/constants"
)

// NarrativeClaims identify the narrative layer calling the engine.
type NarrativeClaims struct {
	jwt.RegisteredClaims
}

var (
	devSecretOnce sync.Once
	devSecret     []byte
	devSecretErr  error
)

// NarrativeSecret returns the configured signing secret, or an in-memory
// secret for development when none is configured. Tokens signed with the
// development secret stop working when the process restarts.
func NarrativeSecret(configured string) ([]byte, error) {
	if configured != "" {
		return []byte(configured), nil
	}
	devSecretOnce.Do(func() {
		devSecret = make([]byte, 32)
		if _, err := crand.Read(devSecret); err != nil {
			devSecretErr = errors.New("failed to generate dev narrative secret")
		}
	})
	return devSecret, devSecretErr
}

// CreateNarrativeToken signs an HS256 token for subject valid for ttl.
func CreateNarrativeToken(secret []byte, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := NarrativeClaims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    constants.NarrativeIssuer,
		Audience:  jwt.ClaimStrings{constants.NarrativeAudience},
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func parseNarrativeToken(token string, secret []byte) (*NarrativeClaims, error) {
	var claims NarrativeClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(constants.NarrativeIssuer),
		jwt.WithAudience(constants.NarrativeAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("parse narrative token: %w", err)
	}
	return &claims, nil
}
