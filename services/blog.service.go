package services

import (
	"context"
	"time"

	"github.com/thelifesavers/backend/connect"
	"github.com/thelifesavers/backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Blog contains all the blog related services
type Blog struct {
	Conn *connect.Connector
}

// Create is a function that is used to create a new blog post
func (b *Blog) Create(ctx context.Context, blog models.Blog) (models.Blog, error) {
	now := time.Now().UTC()
	blog.CreatedAt = now
	blog.UpdatedAt = now

	result, err := b.Conn.Blogs().InsertOne(ctx, blog)
	if err != nil {
		return models.Blog{}, err
	}

	blog.ID = result.InsertedID.(primitive.ObjectID)
	return blog, nil
}

// All is a function that is used to list every blog post
func (b *Blog) All(ctx context.Context) ([]models.Blog, error) {
	cursor, err := b.Conn.Blogs().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var blogs []models.Blog
	err = cursor.All(ctx, &blogs)
	if err != nil {
		return nil, err
	}

	return blogs, nil
}

// GetByID is a function that is used to get a blog post by its id
func (b *Blog) GetByID(ctx context.Context, id primitive.ObjectID) (blog models.Blog, err error) {
	err = b.Conn.Blogs().FindOne(ctx, bson.M{"_id": id}).Decode(&blog)
	return blog, err
}

// Update is a function that is used to update the supplied blog fields
func (b *Blog) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	updates["updatedAt"] = time.Now().UTC()

	result, err := b.Conn.Blogs().UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}

// Delete is a function that is used to delete a blog post by its id
func (b *Blog) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := b.Conn.Blogs().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}
