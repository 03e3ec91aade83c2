package equipment

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

func (h *Handler) CreateEquipment(c *fiber.Ctx) error {
	adminID, err := auth.AdminID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Success: false, Message: "Authentication required"})
	}

	var req CreateEquipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Invalid request body"})
	}

	eq, err := h.service.Create(adminID, &req)
	if err != nil {
		var verr *resources.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Validation failed", Errors: verr.Fields})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Success: false, Message: "Server error while creating equipment", Err: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{Success: true, Message: "Equipment created successfully", Data: eq})
}

func (h *Handler) ListEquipment(c *fiber.Ctx) error {
	records, meta, err := h.service.List(query.FromContext(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Success: false, Message: "Failed to fetch equipment", Err: err.Error()})
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

func (h *Handler) GetEquipment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Success: false, Message: "Equipment not found"})
	}

	eq, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, ErrEquipmentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Success: false, Message: "Equipment not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Success: false, Message: "Server error", Err: err.Error()})
	}

	return c.JSON(dto.DataResponse{Success: true, Data: eq})
}

func (h *Handler) UpdateEquipment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Success: false, Message: "Equipment not found"})
	}

	var req UpdateEquipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Invalid request body"})
	}

	eq, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, ErrEquipmentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Success: false, Message: "Equipment not found"})
		}
		var verr *resources.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Validation failed", Errors: verr.Fields})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Failed to update equipment", Err: err.Error()})
	}

	return c.JSON(dto.DataResponse{Success: true, Data: eq})
}

func (h *Handler) DeleteEquipment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Success: false, Message: "Equipment not found"})
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrEquipmentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Success: false, Message: "Equipment not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Success: false, Message: "Failed to delete equipment", Err: err.Error()})
	}

	return c.JSON(dto.DeleteResponse{Success: true, Message: "Equipment deleted successfully", DeletedID: c.Params("id")})
}
