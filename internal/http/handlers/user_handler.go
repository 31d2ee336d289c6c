package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "internboat/internal/log"
	"internboat/internal/repos"
	"internboat/internal/services"
)

type UserHandler struct {
	Users *services.UserService
}

// credentials is the body shape for both /register and /login.
// Decoding into a typed struct fails closed: absent keys come out as
// empty strings and are rejected below, never defaulted past.
type credentials struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// parseCredentials decodes and validates the request body. A nil
// result means the 400 response has already been written.
func parseCredentials(c *fiber.Ctx) (*credentials, error) {
	var req credentials
	if err := c.BodyParser(&req); err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Request must be JSON",
		})
	}
	if req.Name == "" || req.Email == "" {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Name and email are required",
		})
	}
	return &req, nil
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	req, err := parseCredentials(c)
	if req == nil {
		return err
	}

	u, err := h.Users.Register(req.Name, req.Email)
	if errors.Is(err, repos.ErrDuplicateEmail) {
		applog.Security(c, "user.register.duplicate", map[string]any{"email": req.Email})
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Email already registered",
		})
	}
	if err != nil {
		return err
	}

	applog.Audit(c, "user.register.success", map[string]any{"name": u.Name, "email": u.Email})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Registration successful!",
		"user":    u,
	})
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	req, err := parseCredentials(c)
	if req == nil {
		return err
	}

	u, err := h.Users.Login(req.Name, req.Email)
	if errors.Is(err, services.ErrBadCreds) {
		applog.Security(c, "user.login.fail", map[string]any{"email": req.Email})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid name or email",
			"status":  "fail",
		})
	}
	if err != nil {
		return err
	}

	applog.Audit(c, "user.login.success", map[string]any{"email": u.Email})
	return c.JSON(fiber.Map{
		"message": "Login successful!",
		"status":  "success",
		"user":    u,
	})
}

func (h *UserHandler) ViewRegistrations(c *fiber.Ctx) error {
	users, err := h.Users.List()
	if err != nil {
		return err
	}
	return c.JSON(users)
}
