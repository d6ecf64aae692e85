package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type AuthClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// CreateAccessToken signs an HS256 bearer token whose subject is the user ID.
func CreateAccessToken(userID uint64, name, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ExtractUserID verifies the token's signature and expiry and returns the
// user ID carried in the subject claim.
func ExtractUserID(requestToken, secret string) (uint64, error) {
	token, err := jwt.ParseWithClaims(requestToken, &AuthClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return 0, errors.New("invalid token")
	}

	return strconv.ParseUint(claims.Subject, 10, 64)
}
