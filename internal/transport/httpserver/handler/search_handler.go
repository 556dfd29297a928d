// Package handler provides HTTP handlers for the API.
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"catalog-search-service/internal/app/service"
	"catalog-search-service/internal/domain"
	"catalog-search-service/internal/transport/httpserver/dto"
	"catalog-search-service/internal/validator"
)

// SearchHandler handles search-related HTTP requests.
type SearchHandler struct {
	service   *service.CatalogService
	validator *validator.Validator
	logger    *zap.Logger
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(svc *service.CatalogService, v *validator.Validator, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		service:   svc,
		validator: v,
		logger:    logger,
	}
}

// Search handles GET /api/v1/search
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid query parameters",
			Code:  "INVALID_PARAMS",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation failed",
			Code:    "VALIDATION_ERROR",
			Details: err,
		})
	}

	opts, err := req.ToOptions()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: err.Error(),
			Code:  "INVALID_MEDIA",
		})
	}

	searchReq, err := h.service.Builder().Build(req.Term, opts...)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: err.Error(),
			Code:  "INVALID_TERM",
		})
	}

	grouped, err := h.service.Execute(c.UserContext(), searchReq)
	if err != nil {
		return h.searchError(c, err)
	}

	return c.JSON(dto.FromGroupedResults(searchReq, grouped))
}

func (h *SearchHandler) searchError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrTransport):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: "catalog service unavailable",
			Code:  "UPSTREAM_ERROR",
		})
	case errors.Is(err, domain.ErrDecode):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: "unexpected catalog response",
			Code:  "DECODE_ERROR",
		})
	default:
		h.logger.Error("search failed", zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "search failed",
			Code:  "INTERNAL_ERROR",
		})
	}
}
