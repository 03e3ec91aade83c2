package customers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rentstack/rental-admin-backend/internal/dto"
	"github.com/rentstack/rental-admin-backend/internal/query"
	"github.com/rentstack/rental-admin-backend/internal/resources"
	"gorm.io/gorm"
)

var ErrCustomerNotFound = errors.New("customer not found")

var listDef = query.Definition{
	SearchColumns: []string{"name", "email"},
	SortColumns: map[string]string{
		"createdAt": "created_at",
		"updatedAt": "updated_at",
		"name":      "name",
		"email":     "email",
	},
	DefaultSort: "created_at",
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(adminID uuid.UUID, req *CreateCustomerRequest) (*CustomerResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var fields []string
	if name == "" {
		fields = append(fields, "name is required")
	}
	if email == "" {
		fields = append(fields, "email is required")
	} else if !resources.ValidEmail(email) {
		fields = append(fields, "email must be a valid email address")
	}
	if len(fields) > 0 {
		return nil, &resources.ValidationError{Fields: fields}
	}

	customer := Customer{
		ID:          uuid.New(),
		Name:        name,
		Email:       email,
		Phone:       strings.TrimSpace(req.Phone),
		CreatedByID: adminID,
	}

	if err := s.db.Create(&customer).Error; err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	// Re-read so the response reflects persisted state with the creator resolved.
	return s.Get(customer.ID)
}

func (s *Service) List(p query.Params) ([]CustomerResponse, query.Meta, error) {
	rows, meta, err := query.List[Customer](s.db, listDef, p)
	if err != nil {
		return nil, query.Meta{}, err
	}

	resp := make([]CustomerResponse, len(rows))
	for i := range rows {
		resp[i] = *mapCustomerToResponse(&rows[i])
	}
	return resp, meta, nil
}

func (s *Service) Get(id uuid.UUID) (*CustomerResponse, error) {
	var customer Customer
	if err := s.db.Preload("CreatedBy").First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return mapCustomerToResponse(&customer), nil
}

func (s *Service) Update(id uuid.UUID, req *UpdateCustomerRequest) (*CustomerResponse, error) {
	var customer Customer
	if err := s.db.First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	// Field-by-field merge; createdBy is never part of the patch.
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return nil, &resources.ValidationError{Fields: []string{"name is required"}}
		}
		customer.Name = trimmed
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if !resources.ValidEmail(email) {
			return nil, &resources.ValidationError{Fields: []string{"email must be a valid email address"}}
		}
		customer.Email = email
	}
	if req.Phone != nil {
		customer.Phone = strings.TrimSpace(*req.Phone)
	}

	if err := s.db.Save(&customer).Error; err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return s.Get(id)
}

func (s *Service) Delete(id uuid.UUID) error {
	var customer Customer
	if err := s.db.First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCustomerNotFound
		}
		return err
	}
	return s.db.Delete(&customer).Error
}

func mapCustomerToResponse(c *Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
		CreatedBy: dto.CreatorRef{
			ID:    c.CreatedBy.ID,
			Name:  c.CreatedBy.Name,
			Email: c.CreatedBy.Email,
		},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
