// Package auth issues and verifies the HS256 access tokens of the intranet
// API. Claims carry the authorization payload the client session consumes:
// username, role names and the persona the account belongs to.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dserranox/blschool-intranet/internal/common"
)

// Claims includes the registered claims plus the intranet authorization
// fields.
type Claims struct {
	jwt.RegisteredClaims
	Username  string   `json:"username"`
	Roles     []string `json:"roles,omitempty"`
	PersonaID int64    `json:"personaId,omitempty"`
}

// GenerateToken signs a token for the given account and returns it together
// with its expiry instant. Each token gets a fresh jti so revocation lists
// can address individual tokens.
func GenerateToken(username string, roles []string, personaID int64, secretKey []byte, validityDuration time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(validityDuration)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Username:  username,
		Roles:     roles,
		PersonaID: personaID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ParseToken verifies the signature and expiry of tokenString and returns
// its claims.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
