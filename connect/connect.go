// Package connect is used to initialize connections to thrid party services
package connect

import (
	"firebase.google.com/go/v4/messaging"
	"github.com/gofiber/storage/redis"
	"go.mongodb.org/mongo-driver/mongo"
)

// Connector contains various connections to thrid party serivces
type Connector struct {
	Client     *mongo.Client
	DB         *mongo.Database
	Ratelimter *redis.Storage
	Messaging  *messaging.Client
}

// Users returns the users collection
func (c *Connector) Users() *mongo.Collection {
	return c.DB.Collection("users")
}

// Reviews returns the reviews collection
func (c *Connector) Reviews() *mongo.Collection {
	return c.DB.Collection("reviews")
}

// Messages returns the chat messages collection
func (c *Connector) Messages() *mongo.Collection {
	return c.DB.Collection("messages")
}

// Tokens returns the notification tokens collection
func (c *Connector) Tokens() *mongo.Collection {
	return c.DB.Collection("tokens")
}

// Blogs returns the blogs collection
func (c *Connector) Blogs() *mongo.Collection {
	return c.DB.Collection("blogs")
}
