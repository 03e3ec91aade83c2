package customers

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

func (h *Handler) CreateCustomer(c *fiber.Ctx) error {
	adminID, err := auth.AdminID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Success: false, Message: "Authentication required"})
	}

	var req CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Invalid request body"})
	}

	customer, err := h.service.Create(adminID, &req)
	if err != nil {
		var verr *resources.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Validation failed", Errors: verr.Fields})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Success: false, Message: "Failed to create customer", Err: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{Success: true, Message: "Customer created successfully", Data: customer})
}

func (h *Handler) ListCustomers(c *fiber.Ctx) error {
	records, meta, err := h.service.List(query.FromContext(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Success: false, Message: "Failed to fetch customers", Err: err.Error()})
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

func (h *Handler) GetCustomer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Success: false, Message: "Customer not found"})
	}

	customer, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Success: false, Message: "Customer not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Success: false, Message: "Server error", Err: err.Error()})
	}

	return c.JSON(dto.DataResponse{Success: true, Data: customer})
}

func (h *Handler) UpdateCustomer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Success: false, Message: "Customer not found"})
	}

	var req UpdateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Invalid request body"})
	}

	customer, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Success: false, Message: "Customer not found"})
		}
		var verr *resources.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Validation failed", Errors: verr.Fields})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Failed to update customer", Err: err.Error()})
	}

	return c.JSON(dto.DataResponse{Success: true, Data: customer})
}

func (h *Handler) DeleteCustomer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Success: false, Message: "Customer not found"})
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Success: false, Message: "Customer not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Success: false, Message: "Failed to delete customer", Err: err.Error()})
	}

	return c.JSON(dto.DeleteResponse{Success: true, Message: "Customer deleted successfully", DeletedID: c.Params("id")})
}
