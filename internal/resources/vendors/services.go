package vendors

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

var ErrVendorNotFound = errors.New("vendor not found")

var listDef = query.Definition{
	SearchColumns: []string{"name", "email"},
	SortColumns: map[string]string{
		"createdAt":          "created_at",
		"updatedAt":          "updated_at",
		"name":               "name",
		"email":              "email",
		"numberOfEquipments": "number_of_equipments",
	},
	DefaultSort: "created_at",
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(adminID uuid.UUID, req *CreateVendorRequest) (*VendorResponse, error) {
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
	if req.NumberOfEquipments == nil {
		fields = append(fields, "numberOfEquipments is required")
	} else if *req.NumberOfEquipments < 0 {
		fields = append(fields, "numberOfEquipments must not be negative")
	}
	if len(fields) > 0 {
		return nil, &resources.ValidationError{Fields: fields}
	}

	vendor := Vendor{
		ID:                 uuid.New(),
		Name:               name,
		Email:              email,
		NumberOfEquipments: *req.NumberOfEquipments,
		CreatedByID:        adminID,
	}

	if err := s.db.Create(&vendor).Error; err != nil {
		return nil, fmt.Errorf("failed to create vendor: %w", err)
	}

	return s.Get(vendor.ID)
}

func (s *Service) List(p query.Params) ([]VendorResponse, query.Meta, error) {
	rows, meta, err := query.List[Vendor](s.db, listDef, p)
	if err != nil {
		return nil, query.Meta{}, err
	}

	resp := make([]VendorResponse, len(rows))
	for i := range rows {
		resp[i] = *mapVendorToResponse(&rows[i])
	}
	return resp, meta, nil
}

func (s *Service) Get(id uuid.UUID) (*VendorResponse, error) {
	var vendor Vendor
	if err := s.db.Preload("CreatedBy").First(&vendor, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}
	return mapVendorToResponse(&vendor), nil
}

func (s *Service) Update(id uuid.UUID, req *UpdateVendorRequest) (*VendorResponse, error) {
	var vendor Vendor
	if err := s.db.First(&vendor, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return nil, &resources.ValidationError{Fields: []string{"name is required"}}
		}
		vendor.Name = trimmed
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if !resources.ValidEmail(email) {
			return nil, &resources.ValidationError{Fields: []string{"email must be a valid email address"}}
		}
		vendor.Email = email
	}
	if req.NumberOfEquipments != nil {
		if *req.NumberOfEquipments < 0 {
			return nil, &resources.ValidationError{Fields: []string{"numberOfEquipments must not be negative"}}
		}
		vendor.NumberOfEquipments = *req.NumberOfEquipments
	}

	if err := s.db.Save(&vendor).Error; err != nil {
		return nil, fmt.Errorf("failed to update vendor: %w", err)
	}

	return s.Get(id)
}

func (s *Service) Delete(id uuid.UUID) error {
	var vendor Vendor
	if err := s.db.First(&vendor, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVendorNotFound
		}
		return err
	}
	return s.db.Delete(&vendor).Error
}

func mapVendorToResponse(v *Vendor) *VendorResponse {
	return &VendorResponse{
		ID:                 v.ID,
		Name:               v.Name,
		Email:              v.Email,
		NumberOfEquipments: v.NumberOfEquipments,
		CreatedBy: dto.CreatorRef{
			ID:    v.CreatedBy.ID,
			Name:  v.CreatedBy.Name,
			Email: v.CreatedBy.Email,
		},
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
