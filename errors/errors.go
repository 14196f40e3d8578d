// Package errors contians http errors and other custom errors
package errors

import (
	errs "errors"
	"fmt"
	"strings"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/thelifesavers/backend/config"
	"github.com/thelifesavers/backend/schemas"
	"go.mongodb.org/mongo-driver/mongo"
)

//revive:disable

var (
	ErrInternalServerError  = fmt.Errorf("internal_server_error")
	ErrUnauthorized         = fmt.Errorf("unauthorized")
	ErrTokenNotProvided     = fmt.Errorf("token_not_provided")
	ErrTokenExpired         = fmt.Errorf("token_expired")
	ErrInvalidToken         = fmt.Errorf("invalid_token")
	ErrBadRequest           = fmt.Errorf("bad_request")
	ErrInvalidCredentials   = fmt.Errorf("invalid_credentials")
	ErrUserAlreadyExists    = fmt.Errorf("user_already_exists")
	ErrUserNotFound         = fmt.Errorf("user_not_found")
	ErrNoUsersFound         = fmt.Errorf("no_users_found")
	ErrInvalidOrExpiredOTP  = fmt.Errorf("invalid_or_expired_otp")
	ErrSamePassword         = fmt.Errorf("same_as_current_password")
	ErrReviewAlreadyExists  = fmt.Errorf("review_already_submitted")
	ErrReviewNotFound       = fmt.Errorf("review_not_found")
	ErrNoReviewsFound       = fmt.Errorf("no_reviews_found")
	ErrBlogNotFound         = fmt.Errorf("blog_not_found")
	ErrNotFound             = fmt.Errorf("not_found")
	ErrEmailDeliveryFailed  = fmt.Errorf("email_delivery_failed")
	ErrNotificationGateway  = fmt.Errorf("notification_gateway_unavailable")
	ErrNotificationDelivery = fmt.Errorf("notification_delivery_failed")
	Okay                    = "okay"
)

type res schemas.Res

func InternalServerErr(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(res{
		Status: ErrInternalServerError.Error(),
	})
}

func unauthorized(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(res{
		Status: err.Error(),
	})
}

func Unauthorized(c *fiber.Ctx) error {
	return unauthorized(c, ErrUnauthorized)
}

func TokenNotProvided(c *fiber.Ctx) error {
	return unauthorized(c, ErrTokenNotProvided)
}

func TokenExpired(c *fiber.Ctx) error {
	return unauthorized(c, ErrTokenExpired)
}

func InvalidToken(c *fiber.Ctx) error {
	return unauthorized(c, ErrInvalidToken)
}

// InvalidCredentials is sent for unknown identifiers and for wrong
// passwords alike; the response must not reveal which one it was
func InvalidCredentials(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(res{
		Status: ErrInvalidCredentials.Error(),
	})
}

func badrequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(res{
		Status: err.Error(),
	})
}

func BadRequest(c *fiber.Ctx) error {
	return badrequest(c, ErrBadRequest)
}

func UserAlreadyExists(c *fiber.Ctx) error {
	return badrequest(c, ErrUserAlreadyExists)
}

func InvalidOrExpiredOTP(c *fiber.Ctx) error {
	return badrequest(c, ErrInvalidOrExpiredOTP)
}

func SamePassword(c *fiber.Ctx) error {
	return badrequest(c, ErrSamePassword)
}

func ReviewAlreadyExists(c *fiber.Ctx) error {
	return badrequest(c, ErrReviewAlreadyExists)
}

func notfound(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusNotFound).JSON(res{
		Status: err.Error(),
	})
}

func UserNotFound(c *fiber.Ctx) error {
	return notfound(c, ErrUserNotFound)
}

func NoUsersFound(c *fiber.Ctx) error {
	return notfound(c, ErrNoUsersFound)
}

func ReviewNotFound(c *fiber.Ctx) error {
	return notfound(c, ErrReviewNotFound)
}

func NoReviewsFound(c *fiber.Ctx) error {
	return notfound(c, ErrNoReviewsFound)
}

func BlogNotFound(c *fiber.Ctx) error {
	return notfound(c, ErrBlogNotFound)
}

func EmailDeliveryFailed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(res{
		Status: ErrEmailDeliveryFailed.Error(),
	})
}

func NotificationDeliveryFailed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(res{
		Status: ErrNotificationDelivery.Error(),
	})
}

// NotificationGatewayUnavailable is sent when the push gateway was not
// configured at startup
func NotificationGatewayUnavailable(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(res{
		Status: ErrNotificationGateway.Error(),
	})
}

func Done(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(schemas.Res{
		Status: Okay,
	})
}

//revive:enable

// NotFoundHandler is the catch all handler that terminates the middleware chain
func NotFoundHandler(c *fiber.Ctx) error {
	return notfound(c, ErrNotFound)
}

// Handler formats unhandled errors bubbled up through the middleware
// chain; stack traces are logged outside of production only
func Handler(env *config.Env) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var fiberErr *fiber.Error
		if errs.As(err, &fiberErr) {
			code = fiberErr.Code
		}

		if config.GetDevEnv(env) != config.Prod {
			logger.Error(err)
		}

		return c.Status(code).JSON(fiber.Map{
			"message": err.Error(),
			"status":  code,
		})
	}
}

// CheckDBError is a struct that is used to identify the database errors
type CheckDBError struct{}

// DuplicateKey is a function that is used to find wether the returned
// mongo error is due to a duplicate key entry (a unique index violation)
func (CheckDBError) DuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// NotFound is a function that is used to find wether the query matched no documents
func (CheckDBError) NotFound(err error) bool {
	return errs.Is(err, mongo.ErrNoDocuments)
}

// CheckTokenError is a struct that is used to handle token related errors
type CheckTokenError struct{}

// Expired is a function that is used to identify wether the token is expired or not
func (CheckTokenError) Expired(err error) bool {
	return strings.Contains(err.Error(), "token is expired")
}
