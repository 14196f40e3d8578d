// Package token is used to create and validate session tokens
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/thelifesavers/backend/config"
)

// Details is a struct that contains the data of a created token
type Details struct {
	Token     string
	ExpiresIn int64
	UserID    string
}

// SessionToken is a struct that manages the signed session token issued at login
type SessionToken struct {
	Env *config.Env
}

// Create is a function that is used to create a new session token
// carrying the users id
func (s *SessionToken) Create(userID string) (tokenDetails *Details, err error) {
	now := time.Now().UTC()

	tokenDetails = &Details{
		UserID:    userID,
		ExpiresIn: now.Add(s.Env.SessionTokenExpires).Unix(),
	}

	claims := make(jwt.MapClaims)
	claims["sub"] = userID
	claims["exp"] = tokenDetails.ExpiresIn
	claims["iat"] = now.Unix()
	claims["nbf"] = now.Unix()

	tokenDetails.Token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.Env.SessionSecret))
	if err != nil {
		return nil, err
	}

	return tokenDetails, nil
}

// Validate is a function that is used to validate the session token and
// extract the user id it carries
func (s *SessionToken) Validate(tokenStr string) (userID string, err error) {
	parsed, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method : %s", t.Header["alg"])
		}

		return []byte(s.Env.SessionSecret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return "", fmt.Errorf("validate : invalid token")
	}

	return fmt.Sprint(claims["sub"]), nil
}
