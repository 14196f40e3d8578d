package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is the review document; the username is a snapshot of the
// first name of the user that submitted the review, it is never updated
// when the user changes their name
type Review struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Username  string             `json:"username" bson:"username"`
	Rating    int                `json:"rating" bson:"rating"`
	Comment   string             `json:"comment" bson:"comment"`
	Image     string             `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
