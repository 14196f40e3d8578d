package controllers

import (
	"firebase.google.com/go/v4/messaging"
	"github.com/VinukaThejana/go-utils/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/thelifesavers/backend/config"
	"github.com/thelifesavers/backend/connect"
	"github.com/thelifesavers/backend/errors"
	"github.com/thelifesavers/backend/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification struct contains the push notification controllers
type Notification struct {
	Conn *connect.Connector
	Env  *config.Env
}

// SaveToken registers a device token; tokens are upserted, registering an
// already known token rebinds it to the given user
func (n *Notification) SaveToken(c *fiber.Ctx) error {
	var payload struct {
		Token  string `json:"token" validate:"required"`
		UserID string `json:"userId"`
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

	var userID *primitive.ObjectID
	if payload.UserID != "" {
		id, err := primitive.ObjectIDFromHex(payload.UserID)
		if err != nil {
			return errors.BadRequest(c)
		}
		userID = &id
	}

	notificationS := services.Notification{
		Conn: n.Conn,
	}

	err = notificationS.SaveToken(c.Context(), payload.Token, userID)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return errors.Done(c)
}

// SendToUser pushes a notification to a single device through the gateway
func (n *Notification) SendToUser(c *fiber.Ctx) error {
	if n.Conn.Messaging == nil {
		return errors.NotificationGatewayUnavailable(c)
	}

	var payload struct {
		Token string `json:"token" validate:"required"`
		Title string `json:"title" validate:"required"`
		Body  string `json:"body" validate:"required"`
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

	_, err = n.Conn.Messaging.Send(c.Context(), &messaging.Message{
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Token: payload.Token,
	})
	if err != nil {
		logger.ErrorWithMsg(err, "Failed to push the notification")
		return errors.NotificationDeliveryFailed(c)
	}

	return errors.Done(c)
}

// Broadcast pushes a notification to every registered device
func (n *Notification) Broadcast(c *fiber.Ctx) error {
	if n.Conn.Messaging == nil {
		return errors.NotificationGatewayUnavailable(c)
	}

	var payload struct {
		Title string `json:"title" validate:"required"`
		Body  string `json:"body" validate:"required"`
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

	notificationS := services.Notification{
		Conn: n.Conn,
	}

	tokens, err := notificationS.AllTokens(c.Context())
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	notifications := make([]*messaging.Message, 0, len(tokens))
	for _, deviceToken := range tokens {
		notifications = append(notifications, &messaging.Message{
			Notification: &messaging.Notification{
				Title: payload.Title,
				Body:  payload.Body,
			},
			Token: deviceToken,
		})
	}

	response, err := n.Conn.Messaging.SendEach(c.Context(), notifications)
	if err != nil {
		logger.ErrorWithMsg(err, "Failed to broadcast the notification")
		return errors.NotificationDeliveryFailed(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  errors.Okay,
		"success": response.SuccessCount,
		"failure": response.FailureCount,
	})
}
