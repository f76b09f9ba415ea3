package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/lingreader-backend/internal/domain"
)

// TokenManager mints and verifies JWT access tokens and generates opaque
// refresh tokens. Verification is fully stateless: everything needed to
// accept or reject a token is in the token and the configured secret.
type TokenManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
}

// NewTokenManager creates a new token manager.
// secret must be at least 32 characters for HS256 security.
func NewTokenManager(secret string, issuer string, accessTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

// accessClaims extends standard JWT claims with the user identity snapshot.
type accessClaims struct {
	jwt.RegisteredClaims
	User domain.ClaimsUser `json:"user"`
}

// Issue creates a signed HS256 JWT carrying the given identity snapshot.
// The snapshot is embedded as-is; nothing is re-read at verification time.
func (m *TokenManager) Issue(user domain.ClaimsUser) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		User: user,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates an access token and returns the embedded
// identity. Expired tokens map to domain.ErrTokenExpired; every other
// failure (malformed, bad signature, wrong issuer, missing identity) maps
// to domain.ErrTokenInvalid. Claim contents never appear in errors.
func (m *TokenManager) Verify(tokenString string) (domain.ClaimsUser, error) {
	claims, err := m.parse(tokenString)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.ClaimsUser{}, domain.ErrTokenExpired
		}
		return domain.ClaimsUser{}, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}
	return claims.User, nil
}

// DecodeExpired parses an access token accepting an elapsed expiry. The
// signature, signing method, and issuer are still enforced, so only tokens
// this manager once issued decode successfully.
func (m *TokenManager) DecodeExpired(tokenString string) (domain.ClaimsUser, error) {
	claims, err := m.parse(tokenString, jwt.WithoutClaimsValidation())
	if err != nil {
		return domain.ClaimsUser{}, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}
	return claims.User, nil
}

func (m *TokenManager) parse(tokenString string, opts ...jwt.ParserOption) (*accessClaims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.Issuer != m.issuer {
		return nil, fmt.Errorf("invalid issuer")
	}
	if claims.User.ID == uuid.Nil {
		return nil, fmt.Errorf("missing user claim")
	}
	return claims, nil
}

// GenerateRefreshToken creates a cryptographically random refresh token.
// Returns both the raw token (to send to the client) and its SHA-256 hash
// (to store on the user row).
func (m *TokenManager) GenerateRefreshToken() (raw string, hash string, err error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("generate random bytes: %w", err)
	}

	raw = base64.RawURLEncoding.EncodeToString(b)
	hash = HashToken(raw)

	return raw, hash, nil
}

// HashToken computes the SHA-256 hash of a token and returns it as a hex
// string. Refresh tokens are stored only in this form.
func HashToken(raw string) string {
	h := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(h[:])
}
