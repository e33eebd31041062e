package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// ============================================================
// Request ID Middleware
// ============================================================

const RequestIDHeader = "X-Request-ID"

// RequestID проставляет идентификатор запроса, если клиент не
// прислал свой.
func RequestID() fiber.Handler {
	return func(c fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}
