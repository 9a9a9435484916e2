package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const UploadScope = "upload"

var ErrInvalidToken = errors.New("invalid token")

type UploadClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// GenerateUploadToken signs an HS256 token granting the upload scope to
// subject. A zero ttl yields a token without expiry.
func GenerateUploadToken(secret, subject string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("empty signing secret")
	}
	now := time.Now()
	claims := UploadClaims{
		Scope: UploadScope,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   subject,
		},
	}
	if ttl != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseUploadToken(secret, tokenString string) (*UploadClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UploadClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*UploadClaims)
	if !ok || !token.Valid || claims.Scope != UploadScope {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
