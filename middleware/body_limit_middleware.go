package middleware

import (
	apimodels "attachment-hub-backend/models/api"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// WithBodyLimit rejects requests whose declared body is larger than limit bytes.
// It narrows the app wide limit for routes that never take uploads.
func WithBodyLimit(limit int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if size := int64(c.Request().Header.ContentLength()); size > limit {
			return c.Status(fiber.StatusRequestEntityTooLarge).
				JSON(apimodels.NewError(fmt.Sprintf("request body too large, at most %d bytes allowed", limit)))
		}
		return c.Next()
	}
}
