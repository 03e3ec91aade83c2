package types

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

var ErrTypeNotFound = errors.New("type not found")

var listDef = query.Definition{
	SearchColumns: []string{"name"},
	SortColumns: map[string]string{
		"createdAt": "created_at",
		"updatedAt": "updated_at",
		"name":      "name",
	},
	DefaultSort: "created_at",
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(adminID uuid.UUID, req *CreateTypeRequest) (*TypeResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, &resources.ValidationError{Fields: []string{"name is required"}}
	}

	t := Type{
		ID:          uuid.New(),
		Name:        name,
		CreatedByID: adminID,
	}

	if err := s.db.Create(&t).Error; err != nil {
		return nil, fmt.Errorf("failed to create type: %w", err)
	}

	return s.Get(t.ID)
}

func (s *Service) List(p query.Params) ([]TypeResponse, query.Meta, error) {
	rows, meta, err := query.List[Type](s.db, listDef, p)
	if err != nil {
		return nil, query.Meta{}, err
	}

	resp := make([]TypeResponse, len(rows))
	for i := range rows {
		resp[i] = *mapTypeToResponse(&rows[i])
	}
	return resp, meta, nil
}

func (s *Service) Get(id uuid.UUID) (*TypeResponse, error) {
	var t Type
	if err := s.db.Preload("CreatedBy").First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTypeNotFound
		}
		return nil, err
	}
	return mapTypeToResponse(&t), nil
}

func (s *Service) Update(id uuid.UUID, req *UpdateTypeRequest) (*TypeResponse, error) {
	var t Type
	if err := s.db.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTypeNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return nil, &resources.ValidationError{Fields: []string{"name is required"}}
		}
		t.Name = trimmed
	}

	if err := s.db.Save(&t).Error; err != nil {
		return nil, fmt.Errorf("failed to update type: %w", err)
	}

	return s.Get(id)
}

func (s *Service) Delete(id uuid.UUID) error {
	var t Type
	if err := s.db.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTypeNotFound
		}
		return err
	}
	return s.db.Delete(&t).Error
}

func mapTypeToResponse(t *Type) *TypeResponse {
	return &TypeResponse{
		ID:   t.ID,
		Name: t.Name,
		CreatedBy: dto.CreatorRef{
			ID:    t.CreatedBy.ID,
			Name:  t.CreatedBy.Name,
			Email: t.CreatedBy.Email,
		},
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
