package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tripsplit/internal/fault"
)

// DefaultTokenTTL is how long issued access tokens remain valid.
const DefaultTokenTTL = 30 * time.Minute

// JWTManager issues and validates signed bearer tokens. Tokens are
// HS256-signed with a process-wide symmetric secret and carry the
// subject email in the standard "sub" claim.
type JWTManager struct {
	secretKey []byte
	tokenTTL  time.Duration
}

// NewJWTManager creates a JWT manager with the given secret and token
// lifetime. A zero ttl falls back to DefaultTokenTTL.
func NewJWTManager(secretKey string, ttl time.Duration) *JWTManager {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTManager{
		secretKey: []byte(secretKey),
		tokenTTL:  ttl,
	}
}

// Issue creates a signed token for the given subject email with an
// absolute expiry of now + ttl.
func (m *JWTManager) Issue(subjectEmail string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subjectEmail,
		ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a token, returning the subject email.
// Any signature, structure or expiry problem, and a missing subject
// claim, are all Unauthorized.
func (m *JWTManager) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
	)
	if err != nil {
		return "", fault.Wrap(fault.Unauthorized, "could not validate credentials", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", fault.New(fault.Unauthorized, "could not validate credentials")
	}
	return claims.Subject, nil
}
