package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

const ClientIDKey = "clientID"

// EnsureClientID resolves the caller's client id from the X-Client-ID header or
// the clientId query parameter, generating one when neither is present. The id
// keys the caller's websocket connection within a game.
func EnsureClientID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals(ClientIDKey) != nil {
			return c.Next()
		}

		clientID := c.Get("X-Client-ID")
		if clientID == "" {
			clientID = c.Query("clientId")
		}
		if clientID == "" {
			clientID = uuid.New().String()
			log.Debugf("generated client id %s", clientID)
		}

		c.Locals(ClientIDKey, clientID)
		return c.Next()
	}
}
