// Package auth implements the authentication use cases: login with
// progressive account lockout, password reset, token issuance and credential
// hashing.
package auth

import (
	"errors"
	"time"

	"github.com/calidadsoft/loginbackend/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the registered claims plus the authenticated principal's id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// TokenIssuer issues an opaque signed token bound to a principal. The service
// treats the token as a black box; swapping the implementation does not
// change the login flow.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// JWTIssuer signs HS256 tokens with a shared secret.
type JWTIssuer struct {
	secret   []byte
	validity time.Duration
}

func NewJWTIssuer(secret []byte, validity time.Duration) *JWTIssuer {
	return &JWTIssuer{secret: secret, validity: validity}
}

func (i *JWTIssuer) Issue(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.validity)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// UserID extracts and verifies the principal id from a token string.
func (i *JWTIssuer) UserID(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", err
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
