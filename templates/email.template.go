// Package templates contains the html email templates
package templates

import (
	"bytes"
	"text/template"
	"time"
)

// Email contains all the templates that are related to email
type Email struct{}

// expiryFormat renders the absolute instant until which an OTP is valid
const expiryFormat = "January 2 2006, 3:04:05 pm"

type otpData struct {
	Code      string
	ValidTill string
	Heading   string
	Body      string
}

var otpTmpl = template.Must(template.New("otpEmail").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 20px auto; padding: 30px; border: 1px solid #e0e0e0; border-radius: 12px; background-color: #ffffff;">
  <div style="text-align: center; padding-bottom: 15px;">
    <h1 style="color: #d9534f; font-size: 32px; margin: 10px 0;">The Life Savers</h1>
    <p style="font-size: 18px; color: #777;">Together for a Healthier Tomorrow</p>
  </div>
  <div style="background-color: #f8f9fa; border-radius: 10px; padding: 20px;">
    <h2 style="color: #d9534f; text-align: center; font-size: 24px; margin-bottom: 10px;">{{.Heading}}</h2>
    <p style="font-size: 16px; color: #333;">{{.Body}}</p>
    <div style="text-align: center; margin: 25px 0;">
      <span style="display: inline-block; padding: 12px 24px; font-size: 26px; font-weight: bold; color: #d9534f; border: 2px solid #d9534f; border-radius: 8px;">{{.Code}}</span>
    </div>
    <p style="font-size: 16px; color: #333;"><strong>This OTP is valid until {{.ValidTill}} (expires in 10 minutes).</strong></p>
    <p style="font-size: 16px; color: #333;">If you did not initiate this request, simply disregard this email.</p>
    <p style="font-size: 16px; color: #333;">The Life Savers Team</p>
  </div>
</div>
`))

// PasswordResetTmpl is a function that is used to get the email carrying
// the OTP to reset the password
func (Email) PasswordResetTmpl(firstName, code string, validTill time.Time) (emailHTML string, err error) {
	var buf bytes.Buffer
	err = otpTmpl.Execute(&buf, otpData{
		Code:      code,
		ValidTill: validTill.Format(expiryFormat),
		Heading:   "Password Reset OTP",
		Body:      "Dear " + firstName + ", it seems like you (or someone else) requested a password reset for your account. Please use the following OTP to reset your password:",
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

// VerificationTmpl is a function that is used to get the email carrying
// the OTP to verify an email address
func (Email) VerificationTmpl(code string, validTill time.Time) (emailHTML string, err error) {
	var buf bytes.Buffer
	err = otpTmpl.Execute(&buf, otpData{
		Code:      code,
		ValidTill: validTill.Format(expiryFormat),
		Heading:   "Email Verification OTP",
		Body:      "We have received a request to verify your email address. Please use the OTP below to complete your verification:",
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

type contactData struct {
	Name        string
	Email       string
	PhoneNumber string
	Subject     string
	Message     string
}

var contactTmpl = template.Must(template.New("contactEmail").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 10px auto; padding: 20px; border: 1px solid #e0e0e0; border-radius: 8px; background-color: #ffffff;">
  <div style="text-align: center; padding-bottom: 10px;">
    <h1 style="color: #d9534f; font-size: 26px; margin: 5px 0;">New Contact Us Message</h1>
  </div>
  <div style="background-color: #f8f9fa; border-radius: 8px; padding: 15px;">
    <p style="font-size: 14px; color: #333;"><strong>Name:</strong> {{.Name}}</p>
    <p style="font-size: 14px; color: #333;"><strong>Email:</strong> {{.Email}}</p>
    <p style="font-size: 14px; color: #333;"><strong>Phone Number:</strong> {{.PhoneNumber}}</p>
    <p style="font-size: 14px; color: #333;"><strong>Subject:</strong> {{.Subject}}</p>
    <p style="font-size: 14px; color: #333;"><strong>Message:</strong> {{.Message}}</p>
  </div>
  <div style="text-align: center; padding: 10px 0; font-size: 12px; color: #999;">
    <p>Thank you for reaching out. We will get back to you shortly.</p>
  </div>
</div>
`))

// ContactTmpl is a function that is used to get the contact form email
func (Email) ContactTmpl(name, email, phoneNumber, subject, message string) (emailHTML string, err error) {
	var buf bytes.Buffer
	err = contactTmpl.Execute(&buf, contactData{
		Name:        name,
		Email:       email,
		PhoneNumber: phoneNumber,
		Subject:     subject,
		Message:     message,
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}
