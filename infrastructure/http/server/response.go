package server

import (
	"chat-hub/errors"
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
)

// envelope is the body of every response of the request/response surface.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func ok(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(envelope{Success: true, Message: message, Data: data})
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(envelope{Success: false, Message: message})
}

// errorHandler is the single place where errors become responses.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if stderrors.As(err, &fe) {
		return fail(c, fe.Code, fe.Message)
	}
	status := errors.Status(err)
	if status >= fiber.StatusInternalServerError {
		s.log.Error("Request failed", "method", c.Method(), "path", c.Path(), "error", err)
	}
	return fail(c, status, errors.Message(err))
}
