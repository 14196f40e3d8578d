// Package validate contains custom validation functions
package validate

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	passwordvalidator "github.com/wagslane/go-password-validator"
)

var (
	mobileRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	urlRegex    = regexp.MustCompile(`^(https?://[^\s$.?#].[^\s]*)$`)
	base64Regex = regexp.MustCompile(`^data:image/(png|jpg|jpeg|gif);base64,`)
)

// Password is a custom validation function that is used to validate passwords
func Password(fl validator.FieldLevel) bool {
	const minEntropy = 40
	password := fl.Field().String()

	err := passwordvalidator.Validate(password, minEntropy)
	return err == nil
}

// Mobile is a custom validation function that is used to validate mobile numbers
func Mobile(fl validator.FieldLevel) bool {
	return IsMobile(fl.Field().String())
}

// IsMobile reports wether the given value is a valid mobile number
func IsMobile(mobile string) bool {
	return mobileRegex.MatchString(mobile)
}

// Image is a custom validation function that accepts either an image URL
// or a base64 encoded image string
func Image(fl validator.FieldLevel) bool {
	image := fl.Field().String()
	if image == "" {
		return true
	}

	return urlRegex.MatchString(image) || base64Regex.MatchString(image)
}
