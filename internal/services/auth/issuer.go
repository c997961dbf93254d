package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mcoot/easylog/internal/dependencies/clock"
	"github.com/mcoot/easylog/internal/dependencies/random"
	"github.com/mcoot/easylog/internal/model"
)

// MockTokenPrefix prefixes every token MockIssuer fabricates
const MockTokenPrefix = "dummy-jwt-token-"

// TokenIssuer fabricates the opaque token handed out on login.
// Tokens are never validated; holding one is the only signal.
type TokenIssuer interface {
	Issue(user model.User) (string, error)
}

// MockIssuer returns "dummy-jwt-token-<unix millis>"
type MockIssuer struct {
	clock clock.Clock
}

// NewMockIssuer creates a MockIssuer
func NewMockIssuer(clk clock.Clock) *MockIssuer {
	return &MockIssuer{clock: clk}
}

func (i *MockIssuer) Issue(model.User) (string, error) {
	return MockTokenPrefix + strconv.FormatInt(clock.UnixMilli(i.clock), 10), nil
}

// Claims carried by tokens from JWTIssuer
type Claims struct {
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTIssuer signs HS256 tokens with a shared secret
type JWTIssuer struct {
	secret []byte
	clock  clock.Clock
	random random.Random
}

// NewJWTIssuer creates a JWTIssuer
func NewJWTIssuer(secret string, clk clock.Clock, rnd random.Random) *JWTIssuer {
	return &JWTIssuer{secret: []byte(secret), clock: clk, random: rnd}
}

func (i *JWTIssuer) Issue(user model.User) (string, error) {
	claims := Claims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  user.ID,
			IssuedAt: jwt.NewNumericDate(i.clock.Now().Truncate(time.Second)),
			ID:       i.random.ID(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
