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
	"github.com/thelifesavers/backend/validate"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review struct contains all the review related controllers
type Review struct {
	Conn *connect.Connector
	Env  *config.Env
}

// Create is a function that is used to submit a review; a user can have
// at most one review, enforced through the back-reference on the user
// document. The check and the link are two separate steps, a concurrent
// create for the same user can slip between them
func (r *Review) Create(c *fiber.Ctx) error {
	var payload struct {
		UserID  string `json:"userId" validate:"required"`
		Rating  int    `json:"rating" validate:"required,min=1,max=5"`
		Comment string `json:"comment" validate:"required"`
		Image   string `json:"image" validate:"omitempty,validate_image"`
	}

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	v := validator.New()
	v.RegisterValidation("validate_image", validate.Image)
	err := v.Struct(payload)
	if err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	userID, err := primitive.ObjectIDFromHex(payload.UserID)
	if err != nil {
		return errors.BadRequest(c)
	}

	userS := services.User{
		Conn: r.Conn,
	}
	reviewS := services.Review{
		Conn: r.Conn,
	}

	user, err := userS.GetByID(c.Context(), userID)
	if err != nil {
		if ok := (errors.CheckDBError{}.NotFound(err)); ok {
			return errors.UserNotFound(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	if user.ReviewID != nil {
		return errors.ReviewAlreadyExists(c)
	}

	// the username is snapshotted from the users first name at creation
	// time and never updated afterwards
	review, err := reviewS.Create(c.Context(), models.Review{
		Username: user.FirstName,
		Rating:   payload.Rating,
		Comment:  payload.Comment,
		Image:    payload.Image,
	})
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	err = userS.LinkReview(c.Context(), user.ID, review.ID)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": errors.Okay,
		"review": review,
	})
}

// Update is a function that is used to update a review; only the supplied
// fields overwrite the stored ones
func (r *Review) Update(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("reviewId"))
	if err != nil {
		return errors.BadRequest(c)
	}

	var payload struct {
		Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
		Comment *string `json:"comment"`
		Image   *string `json:"image" validate:"omitempty,validate_image"`
	}

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	v := validator.New()
	v.RegisterValidation("validate_image", validate.Image)
	err = v.Struct(payload)
	if err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	reviewS := services.Review{
		Conn: r.Conn,
	}

	review, err := reviewS.GetByID(c.Context(), id)
	if err != nil {
		if ok := (errors.CheckDBError{}.NotFound(err)); ok {
			return errors.ReviewNotFound(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	updates := bson.M{}
	if payload.Rating != nil {
		updates["rating"] = *payload.Rating
	}
	if payload.Comment != nil {
		updates["comment"] = *payload.Comment
	}
	if payload.Image != nil {
		updates["image"] = *payload.Image
	}

	if len(updates) == 0 {
		return errors.BadRequest(c)
	}

	err = reviewS.Update(c.Context(), review.ID, updates)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return errors.Done(c)
}

// Delete is a function that is used to delete a review; the
// back-reference of whichever user points at the review is cleared before
// the review itself is removed
func (r *Review) Delete(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return errors.BadRequest(c)
	}

	userS := services.User{
		Conn: r.Conn,
	}
	reviewS := services.Review{
		Conn: r.Conn,
	}

	_, err = reviewS.GetByID(c.Context(), id)
	if err != nil {
		if ok := (errors.CheckDBError{}.NotFound(err)); ok {
			return errors.ReviewNotFound(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	err = userS.ClearReviewRef(c.Context(), id)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	err = reviewS.Delete(c.Context(), id)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return errors.Done(c)
}

// List is a function that is used to list every review; an empty result
// set is a not found outcome, matching the user directory convention
func (r *Review) List(c *fiber.Ctx) error {
	reviewS := services.Review{
		Conn: r.Conn,
	}

	reviews, err := reviewS.All(c.Context())
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	if len(reviews) == 0 {
		return errors.NoReviewsFound(c)
	}

	return c.Status(fiber.StatusOK).JSON(reviews)
}
