package server

import (
	"chat-hub/domain"
	"chat-hub/errors"
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const identityKey = "identity"

// Authenticator resolves a bearer credential into an identity.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (domain.Identity, error)
}

// bearerToken reads the credential from the Authorization header,
// falling back to the token query parameter browsers use for the push channel.
func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if token, found := strings.CutPrefix(header, "Bearer "); found {
		return strings.TrimSpace(token)
	}
	return c.Query("token")
}

// Authenticated rejects the request unless it carries a valid credential.
func Authenticated(auth Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return errors.ErrUnauthenticated
		}
		identity, err := auth.Authenticate(c.UserContext(), token)
		if err != nil {
			return err
		}
		c.Locals(identityKey, identity)
		return c.Next()
	}
}

// OptionalAuth attaches the identity when a valid credential is present
// and lets anonymous requests through otherwise.
func OptionalAuth(auth Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := bearerToken(c); token != "" {
			if identity, err := auth.Authenticate(c.UserContext(), token); err == nil {
				c.Locals(identityKey, identity)
			}
		}
		return c.Next()
	}
}

func identityOf(c *fiber.Ctx) (domain.Identity, bool) {
	identity, found := c.Locals(identityKey).(domain.Identity)
	return identity, found
}

func mustIdentity(c *fiber.Ctx) (domain.Identity, error) {
	identity, found := identityOf(c)
	if !found {
		return domain.Identity{}, errors.ErrUnauthenticated
	}
	return identity, nil
}

// requestLogger writes one line per request through the service logger.
// A handler error is rendered here so the logged status is the one sent.
func requestLogger(log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if err := c.Next(); err != nil {
			if handleErr := c.App().ErrorHandler(c, err); handleErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		log.Info("HTTP request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"latency", time.Since(start),
			"ip", c.IP(),
		)
		return nil
	}
}
