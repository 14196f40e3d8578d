// Package models contains the documents stored in the database
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the user document
type User struct {
	ID                   primitive.ObjectID  `json:"_id" bson:"_id,omitempty"`
	FirstName            string              `json:"firstName" bson:"firstName"`
	LastName             string              `json:"lastName" bson:"lastName"`
	Email                string              `json:"email" bson:"email"`
	Password             string              `json:"-" bson:"password"`
	MobileNumber         string              `json:"mobileNumber" bson:"mobileNumber"`
	DOB                  time.Time           `json:"dob" bson:"dob"`
	BloodGroup           string              `json:"bloodGroup" bson:"bloodGroup"`
	Gender               string              `json:"gender" bson:"gender"`
	Availability         bool                `json:"availability" bson:"availability"`
	Country              string              `json:"country" bson:"country"`
	State                string              `json:"state" bson:"state"`
	District             string              `json:"district" bson:"district"`
	City                 string              `json:"city" bson:"city"`
	TermsAccepted        bool                `json:"termsAccepted" bson:"termsAccepted"`
	ResetPasswordOtp     string              `json:"-" bson:"resetPasswordOtp,omitempty"`
	ResetPasswordExpires time.Time           `json:"-" bson:"resetPasswordExpires,omitempty"`
	ReviewID             *primitive.ObjectID `json:"reviewId,omitempty" bson:"reviewId,omitempty"`
	CreatedAt            time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt            time.Time           `json:"updatedAt" bson:"updatedAt"`
}
