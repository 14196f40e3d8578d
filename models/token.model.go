package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationToken is a push notification token registered by a client device
type NotificationToken struct {
	ID     primitive.ObjectID  `json:"_id" bson:"_id,omitempty"`
	Token  string              `json:"token" bson:"token"`
	UserID *primitive.ObjectID `json:"userId" bson:"userId"`
}
