package services

import (
	"context"
	"time"

	"github.com/thelifesavers/backend/connect"
	"github.com/thelifesavers/backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review contains all the review related services
type Review struct {
	Conn *connect.Connector
}

// Create is a function that is used to create a new review
func (r *Review) Create(ctx context.Context, review models.Review) (models.Review, error) {
	now := time.Now().UTC()
	review.CreatedAt = now
	review.UpdatedAt = now

	result, err := r.Conn.Reviews().InsertOne(ctx, review)
	if err != nil {
		return models.Review{}, err
	}

	review.ID = result.InsertedID.(primitive.ObjectID)
	return review, nil
}

// GetByID is a function that is used to get a review by its id
func (r *Review) GetByID(ctx context.Context, id primitive.ObjectID) (review models.Review, err error) {
	err = r.Conn.Reviews().FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	return review, err
}

// Update is a function that is used to update the supplied review fields
func (r *Review) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	updates["updatedAt"] = time.Now().UTC()

	_, err := r.Conn.Reviews().UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)

	return err
}

// Delete is a function that is used to delete a review by its id
func (r *Review) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.Conn.Reviews().DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// All is a function that is used to list every review
func (r *Review) All(ctx context.Context) ([]models.Review, error) {
	cursor, err := r.Conn.Reviews().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var reviews []models.Review
	err = cursor.All(ctx, &reviews)
	if err != nil {
		return nil, err
	}

	return reviews, nil
}
