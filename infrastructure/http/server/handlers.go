package server

import (
	"chat-hub/auth"
	"chat-hub/domain"
	"chat-hub/errors"
	"chat-hub/services"
	goruntime "runtime"

	"github.com/gofiber/fiber/v2"
)

func parse(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return errors.ErrInvalidPayload
	}
	return nil
}

func pageOf(c *fiber.Ctx, defaultLimit int) domain.PageRequest {
	return domain.NewPageRequest(c.QueryInt("page", 1), c.QueryInt("limit", defaultLimit), defaultLimit)
}

func (s *Server) register(c *fiber.Ctx) error {
	var req auth.RegisterRequest
	if err := parse(c, &req); err != nil {
		return err
	}
	result, err := s.deps.Auth.Register(c.UserContext(), req)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusCreated, "User registered successfully", result)
}

func (s *Server) login(c *fiber.Ctx) error {
	var req auth.LoginRequest
	if err := parse(c, &req); err != nil {
		return err
	}
	result, err := s.deps.Auth.Login(c.UserContext(), req)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "Login successful", result)
}

func (s *Server) profile(c *fiber.Ctx) error {
	identity, err := mustIdentity(c)
	if err != nil {
		return err
	}
	user, err := s.deps.Auth.Profile(c.UserContext(), identity.UserID)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", fiber.Map{"user": user})
}

func (s *Server) createRoom(c *fiber.Ctx) error {
	identity, err := mustIdentity(c)
	if err != nil {
		return err
	}
	var req auth.CreateRoomRequest
	if err := parse(c, &req); err != nil {
		return err
	}
	room, err := s.deps.Rooms.CreateRoom(c.UserContext(), identity, req)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusCreated, "Room created successfully", fiber.Map{"room": room})
}

func (s *Server) myRooms(c *fiber.Ctx) error {
	identity, err := mustIdentity(c)
	if err != nil {
		return err
	}
	page, err := s.deps.Rooms.MyRooms(c.UserContext(), identity.UserID, pageOf(c, domain.DefaultRoomPageLimit))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", page)
}

func (s *Server) publicRooms(c *fiber.Ctx) error {
	page, err := s.deps.Rooms.PublicRooms(c.UserContext(), pageOf(c, domain.DefaultRoomPageLimit))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", page)
}

func (s *Server) joinRoom(c *fiber.Ctx) error {
	identity, err := mustIdentity(c)
	if err != nil {
		return err
	}
	var req auth.JoinRoomRequest
	if err := parse(c, &req); err != nil {
		return err
	}
	roomID, err := s.deps.Rooms.JoinRoom(c.UserContext(), identity, req)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "Successfully joined room", fiber.Map{"roomId": roomID})
}

func (s *Server) roomDetails(c *fiber.Ctx) error {
	identity, err := mustIdentity(c)
	if err != nil {
		return err
	}
	room, err := s.deps.Rooms.RoomDetails(c.UserContext(), identity.UserID, c.Params("roomId"))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", fiber.Map{"room": room})
}

func (s *Server) roomMessages(c *fiber.Ctx) error {
	identity, err := mustIdentity(c)
	if err != nil {
		return err
	}
	page, err := s.deps.Chat.GetMessages(c.UserContext(), identity.UserID, c.Params("roomId"),
		pageOf(c, domain.DefaultMessagePageLimit))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", page)
}

func (s *Server) searchMessages(c *fiber.Ctx) error {
	identity, err := mustIdentity(c)
	if err != nil {
		return err
	}
	messages, err := s.deps.Chat.Search(c.UserContext(), identity.UserID, c.Params("roomId"), services.SearchQuery{
		Text:  c.Query("q"),
		Lang:  c.Query("lang"),
		Limit: c.QueryInt("limit", services.DefaultSearchLimit),
	})
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", fiber.Map{"messages": messages})
}

func (s *Server) postMessage(c *fiber.Ctx) error {
	identity, err := mustIdentity(c)
	if err != nil {
		return err
	}
	var req auth.PostMessageRequest
	if err := parse(c, &req); err != nil {
		return err
	}
	message, err := s.deps.Chat.PostMessage(c.UserContext(), identity, req)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusCreated, "Message sent successfully", fiber.Map{"message": message})
}

func (s *Server) editMessage(c *fiber.Ctx) error {
	identity, err := mustIdentity(c)
	if err != nil {
		return err
	}
	var req auth.EditMessageRequest
	if err := parse(c, &req); err != nil {
		return err
	}
	message, err := s.deps.Chat.EditMessage(c.UserContext(), identity, c.Params("messageId"), req)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "Message updated successfully", fiber.Map{"message": message})
}

func (s *Server) deleteMessage(c *fiber.Ctx) error {
	identity, err := mustIdentity(c)
	if err != nil {
		return err
	}
	if err := s.deps.Chat.DeleteMessage(c.UserContext(), identity, c.Params("messageId")); err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "Message deleted successfully", nil)
}

type healthReport struct {
	Status      string `json:"status"`
	Connections int    `json:"connections"`
	Rooms       int    `json:"rooms"`
	OnlineUsers int    `json:"online_users"`
	Goroutines  int    `json:"goroutines"`
	Monitoring  any    `json:"monitoring,omitempty"`
}

func (s *Server) health(c *fiber.Ctx) error {
	report := healthReport{Status: "ok", Goroutines: goruntime.NumGoroutine()}
	if s.deps.Registry != nil {
		report.Connections, report.Rooms = s.deps.Registry.Stats()
	}
	if s.deps.Presence != nil {
		report.OnlineUsers = s.deps.Presence.Online()
	}
	if s.deps.Monitor != nil {
		report.Monitoring = s.deps.Monitor.GetLatest()
	}
	return ok(c, fiber.StatusOK, "Chat hub is running", report)
}
