package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the payload carried by the session cookie.
type SessionClaims struct {
	UserID  uint
	IsAdmin bool
}

// GenerateSessionToken signs an HS256 token identifying the user.
func GenerateSessionToken(secretKey string, userID uint, isAdmin bool, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  userID,
		"is_admin": isAdmin,
		"exp":      time.Now().Add(ttl).Unix(),
	})
	return token.SignedString([]byte(secretKey))
}

// ValidateSessionToken parses and verifies a session token.
func ValidateSessionToken(secretKey, tokenString string) (*SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("error parsing token: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, errors.New("invalid or missing expiration claim")
	}
	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, errors.New("token has expired")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, errors.New("user_id not found in token")
	}
	isAdmin, _ := claims["is_admin"].(bool)

	return &SessionClaims{UserID: uint(userID), IsAdmin: isAdmin}, nil
}
