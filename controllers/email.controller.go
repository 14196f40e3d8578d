package controllers

import (
	"github.com/VinukaThejana/go-utils/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/thelifesavers/backend/config"
	"github.com/thelifesavers/backend/connect"
	"github.com/thelifesavers/backend/errors"
	"github.com/thelifesavers/backend/otp"
	"github.com/thelifesavers/backend/services"
	"github.com/thelifesavers/backend/utils"
	"github.com/thelifesavers/backend/validate"
	"golang.org/x/crypto/bcrypt"
)

// Email struct contains the otp and contact form controllers
type Email struct {
	Conn *connect.Connector
	Env  *config.Env

	// ResetOTP persists codes on the user document and survives restarts;
	// VerificationOTP lives in a process local map and does not
	ResetOTP        *otp.Service
	VerificationOTP *otp.Service
}

// ForgotPassword is a function that is used to issue a password reset OTP
// and send it to the users email address
func (e *Email) ForgotPassword(c *fiber.Ctx) error {
	var payload struct {
		Email string `json:"email" validate:"required,email"`
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
		Conn: e.Conn,
	}

	user, err := userS.GetByEmail(c.Context(), payload.Email)
	if err != nil {
		if ok := (errors.CheckDBError{}.NotFound(err)); ok {
			return errors.UserNotFound(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	code, validTill, err := e.ResetOTP.Issue(c.Context(), user.Email)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	emailClient := utils.Email{
		Env: e.Env,
	}
	err = emailClient.SendPasswordResetOTP(user.Email, user.FirstName, code, validTill)
	if err != nil {
		logger.ErrorWithMsg(err, "Failed to send the password reset OTP")
		return errors.EmailDeliveryFailed(c)
	}

	return errors.Done(c)
}

// ResetPassword is a function that is used to change the password of a
// user holding a valid reset OTP; the lookup that validates the OTP also
// locates the user to update
func (e *Email) ResetPassword(c *fiber.Ctx) error {
	var payload struct {
		Email       string `json:"email" validate:"required,email"`
		OTP         string `json:"otp" validate:"required,len=6,numeric"`
		NewPassword string `json:"newPassword" validate:"required,min=6,max=200"`
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
		Conn: e.Conn,
	}

	user, err := userS.GetByResetOTP(c.Context(), payload.Email, payload.OTP)
	if err != nil {
		if ok := (errors.CheckDBError{}.NotFound(err)); ok {
			return errors.InvalidOrExpiredOTP(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	// an unchanged password would make the reset a no-op
	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.NewPassword))
	if err == nil {
		return errors.SamePassword(c)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(payload.NewPassword), bcryptCost)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	err = userS.CompleteReset(c.Context(), user.ID, payload.OTP, string(hashedPassword))
	if err != nil {
		if err == services.ErrOTPConsumed {
			return errors.InvalidOrExpiredOTP(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return errors.Done(c)
}

// SendOTP is a function that is used to issue an email verification OTP;
// reissuing unconditionally replaces the previous code
func (e *Email) SendOTP(c *fiber.Ctx) error {
	var payload struct {
		Email string `json:"email" validate:"required,email"`
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

	code, validTill, err := e.VerificationOTP.Issue(c.Context(), payload.Email)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	emailClient := utils.Email{
		Env: e.Env,
	}
	err = emailClient.SendVerificationOTP(payload.Email, code, validTill)
	if err != nil {
		logger.ErrorWithMsg(err, "Failed to send the verification OTP")
		return errors.EmailDeliveryFailed(c)
	}

	return errors.Done(c)
}

// VerifyOTP is a function that is used to verify an email verification
// OTP; a successful verification consumes the code
func (e *Email) VerifyOTP(c *fiber.Ctx) error {
	var payload struct {
		Email string `json:"email" validate:"required,email"`
		OTP   string `json:"otp" validate:"required,len=6,numeric"`
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

	valid, err := e.VerificationOTP.Verify(c.Context(), payload.Email, payload.OTP)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}
	if !valid {
		return errors.InvalidOrExpiredOTP(c)
	}

	return errors.Done(c)
}

// Contact is a function that forwards a contact form submission to the
// platform email address
func (e *Email) Contact(c *fiber.Ctx) error {
	var payload struct {
		Name        string `json:"name" validate:"required"`
		Email       string `json:"email" validate:"required,email"`
		PhoneNumber string `json:"phoneNumber" validate:"required,validate_mobile"`
		Subject     string `json:"subject" validate:"required"`
		Message     string `json:"message" validate:"required"`
	}

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	v := validator.New()
	v.RegisterValidation("validate_mobile", validate.Mobile)
	err := v.Struct(payload)
	if err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	emailClient := utils.Email{
		Env: e.Env,
	}
	err = emailClient.SendContact(payload.Name, payload.Email, payload.PhoneNumber, payload.Subject, payload.Message)
	if err != nil {
		logger.ErrorWithMsg(err, "Failed to send the contact form email")
		return errors.EmailDeliveryFailed(c)
	}

	return errors.Done(c)
}
