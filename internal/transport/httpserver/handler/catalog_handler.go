package handler

import (
	"github.com/gofiber/fiber/v2"

	"catalog-search-service/internal/domain"
	"catalog-search-service/internal/transport/httpserver/dto"
)

// CatalogHandler serves the static catalog vocabulary.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Media handles GET /api/v1/media
func (h *CatalogHandler) Media(c *fiber.Ctx) error {
	return c.JSON(dto.FromMediaKinds(domain.MediaKinds()))
}

// Kinds handles GET /api/v1/kinds
func (h *CatalogHandler) Kinds(c *fiber.Ctx) error {
	return c.JSON(dto.FromResultKinds(domain.ResultKinds()))
}
