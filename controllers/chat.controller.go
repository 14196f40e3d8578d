package controllers

import (
	"github.com/VinukaThejana/go-utils/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/thelifesavers/backend/config"
	"github.com/thelifesavers/backend/connect"
	"github.com/thelifesavers/backend/errors"
	"github.com/thelifesavers/backend/hub"
	"github.com/thelifesavers/backend/services"
)

// Chat struct contains the chat history and notification broadcast controllers
type Chat struct {
	Conn *connect.Connector
	Env  *config.Env
	Hub  *hub.Hub
}

// History is a function that is used to get the chat history in the order
// the messages arrived
func (h *Chat) History(c *fiber.Ctx) error {
	chatS := services.Chat{
		Conn: h.Conn,
	}

	messages, err := chatS.History(c.Context())
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return c.Status(fiber.StatusOK).JSON(messages)
}

// Notify broadcasts an ad hoc notification string to every connected client
func (h *Chat) Notify(c *fiber.Ctx) error {
	var payload struct {
		Message string `json:"message"`
	}

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	message := payload.Message
	if message == "" {
		message = "Default notification message"
	}

	h.Hub.Notify(message)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Notification sent to all users!",
	})
}
