package services

import (
	"context"

	"github.com/thelifesavers/backend/connect"
	"github.com/thelifesavers/backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Notification contains the push notification token registry services
type Notification struct {
	Conn *connect.Connector
}

// SaveToken registers a device token with upsert semantics
func (n *Notification) SaveToken(ctx context.Context, deviceToken string, userID *primitive.ObjectID) error {
	_, err := n.Conn.Tokens().UpdateOne(
		ctx,
		bson.M{"token": deviceToken},
		bson.M{"$set": bson.M{
			"token":  deviceToken,
			"userId": userID,
		}},
		options.Update().SetUpsert(true),
	)

	return err
}

// AllTokens is a function that is used to list every registered device token
func (n *Notification) AllTokens(ctx context.Context) ([]string, error) {
	cursor, err := n.Conn.Tokens().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var records []models.NotificationToken
	err = cursor.All(ctx, &records)
	if err != nil {
		return nil, err
	}

	tokens := make([]string, 0, len(records))
	for _, record := range records {
		tokens = append(tokens, record.Token)
	}

	return tokens, nil
}
