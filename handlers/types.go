package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// respondError writes the standard failure envelope.
func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// respondList writes the standard listing envelope. An empty result is not
// an error: count 0 with an empty data array.
func respondList(c *fiber.Ctx, count int, data any) error {
	return c.JSON(fiber.Map{
		"success": true,
		"count":   count,
		"data":    data,
	})
}
