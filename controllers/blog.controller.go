package controllers

import (
	"github.com/VinukaThejana/go-utils/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/thelifesavers/backend/config"
	"github.com/thelifesavers/backend/connect"
	"github.com/thelifesavers/backend/errors"
	"github.com/thelifesavers/backend/models"
	"github.com/thelifesavers/backend/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog struct contains all the blog related controllers
type Blog struct {
	Conn *connect.Connector
	Env  *config.Env
}

// Create is a function that is used to create a new blog post
func (b *Blog) Create(c *fiber.Ctx) error {
	var payload struct {
		Title   string `json:"title" validate:"required"`
		Content string `json:"content" validate:"required"`
		Author  string `json:"author" validate:"required"`
	}

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	v := validator.New()
	err := v.Struct(payload)
	if err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	blogS := services.Blog{
		Conn: b.Conn,
	}

	blog, err := blogS.Create(c.Context(), models.Blog{
		Title:   payload.Title,
		Content: payload.Content,
		Author:  payload.Author,
	})
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return c.Status(fiber.StatusCreated).JSON(blog)
}

// List is a function that is used to list every blog post
func (b *Blog) List(c *fiber.Ctx) error {
	blogS := services.Blog{
		Conn: b.Conn,
	}

	blogs, err := blogS.All(c.Context())
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return c.Status(fiber.StatusOK).JSON(blogs)
}

// Get is a function that is used to get a blog post by its id
func (b *Blog) Get(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return errors.BadRequest(c)
	}

	blogS := services.Blog{
		Conn: b.Conn,
	}

	blog, err := blogS.GetByID(c.Context(), id)
	if err != nil {
		if ok := (errors.CheckDBError{}.NotFound(err)); ok {
			return errors.BlogNotFound(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return c.Status(fiber.StatusOK).JSON(blog)
}

// Update is a function that is used to update a blog post
func (b *Blog) Update(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return errors.BadRequest(c)
	}

	var payload struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
		Author  *string `json:"author"`
	}

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	updates := bson.M{}
	if payload.Title != nil {
		updates["title"] = *payload.Title
	}
	if payload.Content != nil {
		updates["content"] = *payload.Content
	}
	if payload.Author != nil {
		updates["author"] = *payload.Author
	}

	if len(updates) == 0 {
		return errors.BadRequest(c)
	}

	blogS := services.Blog{
		Conn: b.Conn,
	}

	err = blogS.Update(c.Context(), id, updates)
	if err != nil {
		if ok := (errors.CheckDBError{}.NotFound(err)); ok {
			return errors.BlogNotFound(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return errors.Done(c)
}

// Delete is a function that is used to delete a blog post
func (b *Blog) Delete(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return errors.BadRequest(c)
	}

	blogS := services.Blog{
		Conn: b.Conn,
	}

	err = blogS.Delete(c.Context(), id)
	if err != nil {
		if ok := (errors.CheckDBError{}.NotFound(err)); ok {
			return errors.BlogNotFound(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return errors.Done(c)
}
