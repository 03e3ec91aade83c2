package types

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rentstack/rental-admin-backend/internal/auth"
	"github.com/rentstack/rental-admin-backend/internal/dto"
	"github.com/rentstack/rental-admin-backend/internal/query"
	"github.com/rentstack/rental-admin-backend/internal/resources"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateType(c *fiber.Ctx) error {
	adminID, err := auth.AdminID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Success: false, Message: "Authentication required"})
	}

	var req CreateTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Invalid request body"})
	}

	t, err := h.service.Create(adminID, &req)
	if err != nil {
		var verr *resources.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Validation failed", Errors: verr.Fields})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Success: false, Message: "Failed to create type", Err: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{Success: true, Message: "Type created successfully", Data: t})
}

func (h *Handler) ListTypes(c *fiber.Ctx) error {
	records, meta, err := h.service.List(query.FromContext(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Success: false, Message: "Failed to fetch types", Err: err.Error()})
	}

	return c.JSON(dto.PagedResponse{
		Success: true,
		Count:   meta.Count,
		Total:   meta.Total,
		Page:    meta.Page,
		Pages:   meta.Pages,
		Data:    records,
	})
}

func (h *Handler) GetType(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Success: false, Message: "Type not found"})
	}

	t, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, ErrTypeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Success: false, Message: "Type not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Success: false, Message: "Server error", Err: err.Error()})
	}

	return c.JSON(dto.DataResponse{Success: true, Data: t})
}

func (h *Handler) UpdateType(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Success: false, Message: "Type not found"})
	}

	var req UpdateTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Invalid request body"})
	}

	t, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, ErrTypeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Success: false, Message: "Type not found"})
		}
		var verr *resources.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Validation failed", Errors: verr.Fields})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Failed to update type", Err: err.Error()})
	}

	return c.JSON(dto.DataResponse{Success: true, Data: t})
}

func (h *Handler) DeleteType(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Success: false, Message: "Type not found"})
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrTypeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Success: false, Message: "Type not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Success: false, Message: "Failed to delete type", Err: err.Error()})
	}

	return c.JSON(dto.DeleteResponse{Success: true, Message: "Type deleted successfully", DeletedID: c.Params("id")})
}
