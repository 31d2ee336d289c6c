package handlers

import (
	"github.com/gofiber/fiber/v2"

	"internboat/internal/services"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
}

func (h *CatalogHandler) Courses(c *fiber.Ctx) error {
	return c.JSON(h.Catalog.Courses())
}
