package utils

import (
	"github.com/gofiber/fiber/v2"
)

// NoJobFoundMessage is the body returned for any unknown job id.
const NoJobFoundMessage = "No Job With This ID Was Found"

// RespondWithError sends a plain-text error response.
func RespondWithError(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).SendString(message)
}

// RespondWithJSON sends data as the JSON body, unwrapped.
func RespondWithJSON(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(data)
}

// RespondNoContent sends a 204 with an empty body.
func RespondNoContent(c *fiber.Ctx) error {
	c.Status(fiber.StatusNoContent)
	return nil
}
