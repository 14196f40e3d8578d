package services

import (
	"context"
	"time"

	"github.com/thelifesavers/backend/connect"
	"github.com/thelifesavers/backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Chat contains all the chat message related services
type Chat struct {
	Conn *connect.Connector
}

// SaveMessage persists a relayed chat message; the hub calls this after
// the broadcast already went out
func (s *Chat) SaveMessage(ctx context.Context, name, message string) error {
	_, err := s.Conn.Messages().InsertOne(ctx, models.Message{
		Name:      name,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	})

	return err
}

// History is a function that is used to get the chat history in the order
// the messages were stored
func (s *Chat) History(ctx context.Context) ([]models.Message, error) {
	cursor, err := s.Conn.Messages().Find(
		ctx,
		bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}

	var messages []models.Message
	err = cursor.All(ctx, &messages)
	if err != nil {
		return nil, err
	}

	return messages, nil
}
