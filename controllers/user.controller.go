package controllers

import (
	"github.com/VinukaThejana/go-utils/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/thelifesavers/backend/config"
	"github.com/thelifesavers/backend/connect"
	"github.com/thelifesavers/backend/errors"
	"github.com/thelifesavers/backend/schemas"
	"github.com/thelifesavers/backend/services"
	"github.com/thelifesavers/backend/session"
	"github.com/thelifesavers/backend/validate"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// User struct contains all the user related controllers
type User struct {
	Conn *connect.Connector
	Env  *config.Env
}

// Update is a function that is used to update user details; only the
// supplied fields overwrite the stored ones
func (u *User) Update(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return errors.BadRequest(c)
	}

	var payload struct {
		FirstName    *string `json:"firstName" validate:"omitempty,max=50"`
		LastName     *string `json:"lastName" validate:"omitempty,max=50"`
		Email        *string `json:"email" validate:"omitempty,email"`
		MobileNumber *string `json:"mobileNumber" validate:"omitempty,validate_mobile"`
		BloodGroup   *string `json:"bloodGroup" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
		Gender       *string `json:"gender" validate:"omitempty,oneof=male female other"`
		Availability *bool   `json:"availability"`
		Country      *string `json:"country"`
		State        *string `json:"state"`
		District     *string `json:"district"`
		City         *string `json:"city"`
	}

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	v := validator.New()
	v.RegisterValidation("validate_mobile", validate.Mobile)
	err = v.Struct(payload)
	if err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	updates := bson.M{}
	setIf := func(key string, value *string) {
		if value != nil {
			updates[key] = *value
		}
	}
	setIf("firstName", payload.FirstName)
	setIf("lastName", payload.LastName)
	setIf("email", payload.Email)
	setIf("mobileNumber", payload.MobileNumber)
	setIf("bloodGroup", payload.BloodGroup)
	setIf("gender", payload.Gender)
	setIf("country", payload.Country)
	setIf("state", payload.State)
	setIf("district", payload.District)
	setIf("city", payload.City)
	if payload.Availability != nil {
		updates["availability"] = *payload.Availability
	}

	if len(updates) == 0 {
		return errors.BadRequest(c)
	}

	userS := services.User{
		Conn: u.Conn,
	}

	user, err := userS.Update(c.Context(), id, updates)
	if err != nil {
		if ok := (errors.CheckDBError{}.NotFound(err)); ok {
			return errors.UserNotFound(c)
		}
		if ok := (errors.CheckDBError{}.DuplicateKey(err)); ok {
			return errors.UserAlreadyExists(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": errors.Okay,
		"user":   schemas.FilterUser(user),
	})
}

// VerifyPassword is a function that is used to check the password of the
// authenticated user
func (u *User) VerifyPassword(c *fiber.Ctx) error {
	var payload struct {
		Password string `json:"password" validate:"required"`
	}

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	v := validator.New()
	err := v.Struct(payload)
	if err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	id, err := primitive.ObjectIDFromHex(session.Get(c))
	if err != nil {
		return errors.Unauthorized(c)
	}

	userS := services.User{
		Conn: u.Conn,
	}

	user, err := userS.GetByID(c.Context(), id)
	if err != nil {
		if ok := (errors.CheckDBError{}.NotFound(err)); ok {
			return errors.UserNotFound(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"isValid": err == nil,
	})
}

// GetUsers is a function that is used to list users matching the given
// filters, always excluding the caller; an empty result set is a not
// found outcome, not an empty list
func (u *User) GetUsers(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(session.Get(c))
	if err != nil {
		return errors.Unauthorized(c)
	}

	return u.filter(c, &id)
}

// FilterUsers is the public variant of GetUsers without the self exclusion
func (u *User) FilterUsers(c *fiber.Ctx) error {
	return u.filter(c, nil)
}

func (u *User) filter(c *fiber.Ctx, exclude *primitive.ObjectID) error {
	userS := services.User{
		Conn: u.Conn,
	}

	users, err := userS.Filter(c.Context(), exclude, services.FilterQuery{
		BloodGroup: c.Query("bloodGroup"),
		Country:    c.Query("country"),
		State:      c.Query("state"),
		District:   c.Query("district"),
		City:       c.Query("city"),
	})
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	if len(users) == 0 {
		return errors.NoUsersFound(c)
	}

	return c.Status(fiber.StatusOK).JSON(schemas.FilterUsers(users))
}
