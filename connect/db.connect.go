package connect

import (
	"context"
	"time"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/thelifesavers/backend/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InitDatabase is a fucntion to initialize the connection with the mongo database;
// failure to reach the database at startup is fatal and is not retried
func (c *Connector) InitDatabase(env *config.Env) {
	opts := options.Client().
		ApplyURI(env.DatabaseURL).
		SetServerSelectionTimeout(5 * time.Second).
		SetSocketTimeout(45 * time.Second).
		SetMaxPoolSize(10)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		logger.Errorf(err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		logger.Errorf(err)
	}

	c.Client = client
	c.DB = client.Database(env.DatabaseName)

	c.ensureIndexes(ctx)
}

func (c *Connector) ensureIndexes(ctx context.Context) {
	unique := options.Index().SetUnique(true)

	_, err := c.Users().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "mobileNumber", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "bloodGroup", Value: 1}}},
		{Keys: bson.D{{Key: "city", Value: 1}}},
	})
	if err != nil {
		logger.Error(err)
	}

	_, err = c.Tokens().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "token", Value: 1}},
		Options: unique,
	})
	if err != nil {
		logger.Error(err)
	}
}
