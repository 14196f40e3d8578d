// Package controllers contains the http request handlers
package controllers

import (
	"time"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/thelifesavers/backend/config"
	"github.com/thelifesavers/backend/connect"
	"github.com/thelifesavers/backend/enums"
	"github.com/thelifesavers/backend/errors"
	"github.com/thelifesavers/backend/models"
	"github.com/thelifesavers/backend/schemas"
	"github.com/thelifesavers/backend/services"
	"github.com/thelifesavers/backend/token"
	"github.com/thelifesavers/backend/validate"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the salted hash cost factor of every stored password
const bcryptCost = 12

// Auth struct contains all the auth related controllers
type Auth struct {
	Conn *connect.Connector
	Env  *config.Env
}

// Register is a function that is used to register users to the platfrom
func (a *Auth) Register(c *fiber.Ctx) error {
	var payload struct {
		FirstName     string    `json:"firstName" validate:"required,max=50"`
		LastName      string    `json:"lastName" validate:"required,max=50"`
		Email         string    `json:"email" validate:"required,email"`
		Password      string    `json:"password" validate:"required,min=6,max=200,validate_password"`
		MobileNumber  string    `json:"mobileNumber" validate:"required,validate_mobile"`
		DOB           time.Time `json:"dob" validate:"required"`
		BloodGroup    string    `json:"bloodGroup" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
		Gender        string    `json:"gender" validate:"omitempty,oneof=male female other"`
		Availability  *bool     `json:"availability"`
		Country       string    `json:"country"`
		State         string    `json:"state"`
		District      string    `json:"district"`
		City          string    `json:"city"`
		TermsAccepted bool      `json:"termsAccepted"`
	}

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	v := validator.New()
	v.RegisterValidation("validate_password", validate.Password)
	v.RegisterValidation("validate_mobile", validate.Mobile)
	err := v.Struct(payload)
	if err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	if !payload.DOB.Before(time.Now()) {
		return errors.BadRequest(c)
	}

	userS := services.User{
		Conn: a.Conn,
	}

	exists, err := userS.Exists(c.Context(), payload.Email, payload.MobileNumber)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}
	if exists {
		return errors.UserAlreadyExists(c)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcryptCost)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	availability := true
	if payload.Availability != nil {
		availability = *payload.Availability
	}

	bloodGroup := payload.BloodGroup
	if bloodGroup != "" && !enums.IsBloodGroup(bloodGroup) {
		return errors.BadRequest(c)
	}
	if payload.Gender != "" && !enums.IsGender(payload.Gender) {
		return errors.BadRequest(c)
	}

	_, err = userS.Create(c.Context(), models.User{
		FirstName:     payload.FirstName,
		LastName:      payload.LastName,
		Email:         payload.Email,
		Password:      string(hashedPassword),
		MobileNumber:  payload.MobileNumber,
		DOB:           payload.DOB,
		BloodGroup:    bloodGroup,
		Gender:        payload.Gender,
		Availability:  availability,
		Country:       payload.Country,
		State:         payload.State,
		District:      payload.District,
		City:          payload.City,
		TermsAccepted: payload.TermsAccepted,
	})
	if err != nil {
		// the existence check above races with concurrent registrations,
		// the unique indexes are the backstop
		if ok := (errors.CheckDBError{}.DuplicateKey(err)); ok {
			return errors.UserAlreadyExists(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return c.Status(fiber.StatusCreated).JSON(schemas.Res{
		Status: errors.Okay,
	})
}

// Login is a funciton that is used to login the user with an email or a
// mobile number; the failure response is identical for unknown
// identifiers and wrong passwords
func (a *Auth) Login(c *fiber.Ctx) error {
	var payload struct {
		Identifier string `json:"identifier" validate:"required"`
		Password   string `json:"password" validate:"required"`
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

	userS := services.User{
		Conn: a.Conn,
	}

	user, err := userS.GetByIdentifier(c.Context(), payload.Identifier)
	if err != nil {
		if ok := (errors.CheckDBError{}.NotFound(err)); ok {
			return errors.InvalidCredentials(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password))
	if err != nil {
		return errors.InvalidCredentials(c)
	}

	sessionTokenS := token.SessionToken{
		Env: a.Env,
	}

	tokenDetails, err := sessionTokenS.Create(user.ID.Hex())
	if err != nil {
		logger.ErrorWithMsg(err, "Failed to create the session token")
		return errors.InternalServerErr(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"token": tokenDetails.Token,
		"user":  schemas.FilterUser(user),
	})
}
