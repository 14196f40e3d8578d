// Package session contains session related activity
package session

import (
	"github.com/gofiber/fiber/v2"
)

// Add is a function that is used to add the authenticated user id to the session
func Add(c *fiber.Ctx, userID string) {
	c.Locals("id", userID)
}

// Get the authenticated user id from the session
func Get(c *fiber.Ctx) string {
	id, _ := c.Locals("id").(string)
	return id
}
