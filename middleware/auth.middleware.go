// Package middleware contains the http middlewares
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/thelifesavers/backend/config"
	"github.com/thelifesavers/backend/errors"
	"github.com/thelifesavers/backend/session"
	"github.com/thelifesavers/backend/token"
)

// Auth contains auth related middlewares
type Auth struct {
	Env *config.Env
}

// Check is a function that is used to check wether the user is authenticated;
// expired and malformed tokens are both rejected with 401 but the response
// message distinguishes the two
func (a *Auth) Check(c *fiber.Ctx) error {
	var sessionToken string
	authorization := c.Get("Authorization")

	if strings.HasPrefix(authorization, "Bearer ") {
		sessionToken = strings.TrimPrefix(authorization, "Bearer ")
	} else {
		return errors.TokenNotProvided(c)
	}

	sessionTokenS := token.SessionToken{
		Env: a.Env,
	}

	userID, err := sessionTokenS.Validate(sessionToken)
	if err != nil {
		if isExpired := (errors.CheckTokenError{}.Expired(err)); isExpired {
			return errors.TokenExpired(c)
		}

		return errors.InvalidToken(c)
	}

	session.Add(c, userID)

	return c.Next()
}
