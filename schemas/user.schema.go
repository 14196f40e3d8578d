package schemas

import (
	"time"

	"github.com/thelifesavers/backend/models"
)

// User is a schema that contians user freindly user details
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	MobileNumber string    `json:"mobileNumber"`
	DOB          time.Time `json:"dob"`
	BloodGroup   string    `json:"bloodGroup"`
	Gender       string    `json:"gender"`
	Availability bool      `json:"availability"`
	Country      string    `json:"country"`
	State        string    `json:"state"`
	District     string    `json:"district"`
	City         string    `json:"city"`
	ReviewID     string    `json:"reviewId,omitempty"`
}

// FilterUser is a function that is used to filter the user document to a user freindly format
func FilterUser(user models.User) User {
	filtered := User{
		ID:           user.ID.Hex(),
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		MobileNumber: user.MobileNumber,
		DOB:          user.DOB,
		BloodGroup:   user.BloodGroup,
		Gender:       user.Gender,
		Availability: user.Availability,
		Country:      user.Country,
		State:        user.State,
		District:     user.District,
		City:         user.City,
	}
	if user.ReviewID != nil {
		filtered.ReviewID = user.ReviewID.Hex()
	}

	return filtered
}

// FilterUsers filters a list of user documents
func FilterUsers(users []models.User) []User {
	filtered := make([]User, 0, len(users))
	for _, user := range users {
		filtered = append(filtered, FilterUser(user))
	}

	return filtered
}
