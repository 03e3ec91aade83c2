package equipment

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rentstack/rental-admin-backend/internal/dto"
	"github.com/rentstack/rental-admin-backend/internal/query"
	"github.com/rentstack/rental-admin-backend/internal/resources"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrEquipmentNotFound = errors.New("equipment not found")

var listDef = query.Definition{
	SearchColumns: []string{"title"},
	SortColumns: map[string]string{
		"createdAt": "created_at",
		"updatedAt": "updated_at",
		"title":     "title",
	},
	DefaultSort: "created_at",
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(adminID uuid.UUID, req *CreateEquipmentRequest) (*EquipmentResponse, error) {
	title := strings.TrimSpace(req.Title)

	var fields []string
	if title == "" {
		fields = append(fields, "title is required")
	}

	// The type reference is validated for shape only before any write.
	var typeID uuid.UUID
	if strings.TrimSpace(req.Type) == "" {
		fields = append(fields, "type is required (must be a valid Type ID)")
	} else {
		var err error
		typeID, err = uuid.Parse(req.Type)
		if err != nil {
			fields = append(fields, "invalid Type ID format")
		}
	}
	if len(fields) > 0 {
		return nil, &resources.ValidationError{Fields: fields}
	}

	specs, err := marshalKeySpecs(req.KeySpecs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode keySpecs: %w", err)
	}

	eq := Equipment{
		ID:          uuid.New(),
		Title:       title,
		TypeID:      typeID,
		Description: strings.TrimSpace(req.Description),
		KeySpecs:    specs,
		CreatedByID: adminID,
	}

	if err := s.db.Create(&eq).Error; err != nil {
		return nil, fmt.Errorf("failed to create equipment: %w", err)
	}

	return s.Get(eq.ID)
}

func (s *Service) List(p query.Params) ([]EquipmentResponse, query.Meta, error) {
	rows, meta, err := query.List[Equipment](s.db, listDef, p)
	if err != nil {
		return nil, query.Meta{}, err
	}

	resp := make([]EquipmentResponse, len(rows))
	for i := range rows {
		resp[i] = *mapEquipmentToResponse(&rows[i])
	}
	return resp, meta, nil
}

func (s *Service) Get(id uuid.UUID) (*EquipmentResponse, error) {
	var eq Equipment
	if err := s.db.Preload("CreatedBy").First(&eq, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}
	return mapEquipmentToResponse(&eq), nil
}

func (s *Service) Update(id uuid.UUID, req *UpdateEquipmentRequest) (*EquipmentResponse, error) {
	var eq Equipment
	if err := s.db.First(&eq, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		if trimmed == "" {
			return nil, &resources.ValidationError{Fields: []string{"title is required"}}
		}
		eq.Title = trimmed
	}
	if req.Type != nil {
		typeID, err := uuid.Parse(*req.Type)
		if err != nil {
			return nil, &resources.ValidationError{Fields: []string{"invalid Type ID format"}}
		}
		eq.TypeID = typeID
	}
	if req.Description != nil {
		eq.Description = strings.TrimSpace(*req.Description)
	}
	if req.KeySpecs != nil {
		specs, err := marshalKeySpecs(*req.KeySpecs)
		if err != nil {
			return nil, fmt.Errorf("failed to encode keySpecs: %w", err)
		}
		eq.KeySpecs = specs
	}

	if err := s.db.Save(&eq).Error; err != nil {
		return nil, fmt.Errorf("failed to update equipment: %w", err)
	}

	return s.Get(id)
}

func (s *Service) Delete(id uuid.UUID) error {
	var eq Equipment
	if err := s.db.First(&eq, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEquipmentNotFound
		}
		return err
	}
	return s.db.Delete(&eq).Error
}

func marshalKeySpecs(specs []KeySpec) (datatypes.JSON, error) {
	if specs == nil {
		specs = []KeySpec{}
	}
	b, err := json.Marshal(specs)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func mapEquipmentToResponse(e *Equipment) *EquipmentResponse {
	specs := []KeySpec{}
	if len(e.KeySpecs) > 0 {
		// Tolerate malformed stored specs rather than failing the read.
		_ = json.Unmarshal(e.KeySpecs, &specs)
	}

	return &EquipmentResponse{
		ID:          e.ID,
		Title:       e.Title,
		Type:        e.TypeID,
		Description: e.Description,
		KeySpecs:    specs,
		CreatedBy: dto.CreatorRef{
			ID:    e.CreatedBy.ID,
			Name:  e.CreatedBy.Name,
			Email: e.CreatedBy.Email,
		},
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
