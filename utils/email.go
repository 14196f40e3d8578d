// Package utils contains the utility packages
package utils

import (
	"fmt"
	"time"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/resendlabs/resend-go"
	"github.com/thelifesavers/backend/config"
	"github.com/thelifesavers/backend/templates"
)

// Email is a struct that contains email related operations
type Email struct {
	Env *config.Env
}

func (e *Email) send(to, cc, subject, html string) error {
	client := resend.NewClient(e.Env.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    e.Env.EmailFrom,
		To:      []string{to},
		Html:    html,
		Subject: subject,
		ReplyTo: e.Env.EmailFrom,
	}
	if cc != "" {
		params.Cc = []string{cc}
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return err
	}

	logger.Log(fmt.Sprintf("[ %s ] : %s email sent", sent.Id, subject))
	return nil
}

// SendPasswordResetOTP is a function that is used to send the OTP that is
// used to reset the users password
func (e *Email) SendPasswordResetOTP(to, firstName, code string, validTill time.Time) error {
	emailHTML, err := templates.Email{}.PasswordResetTmpl(firstName, code, validTill)
	if err != nil {
		return err
	}

	return e.send(to, "", "Password Reset OTP - Act Now", emailHTML)
}

// SendVerificationOTP is a function that is used to send the OTP that is
// used to verify an email address
func (e *Email) SendVerificationOTP(to, code string, validTill time.Time) error {
	emailHTML, err := templates.Email{}.VerificationTmpl(code, validTill)
	if err != nil {
		return err
	}

	return e.send(to, "", "Verify Your Email - OTP Inside", emailHTML)
}

// SendContact forwards a contact form submission to the platform address
// with a copy to the sender
func (e *Email) SendContact(name, email, phoneNumber, subject, message string) error {
	emailHTML, err := templates.Email{}.ContactTmpl(name, email, phoneNumber, subject, message)
	if err != nil {
		return err
	}

	return e.send(e.Env.EmailFrom, email, fmt.Sprintf("New Contact Us Message - %s", subject), emailHTML)
}
