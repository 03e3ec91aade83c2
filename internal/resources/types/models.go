package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/rentstack/rental-admin-backend/internal/dto"
	"github.com/rentstack/rental-admin-backend/internal/models"
)

// Type is a master equipment category. Deleting a Type does not cascade to
// Equipment referencing it.
type Type struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string       `gorm:"not null;size:255" json:"name"`
	CreatedByID uuid.UUID    `gorm:"type:uuid;not null;index" json:"-"`
	CreatedBy   models.Admin `gorm:"foreignKey:CreatedByID" json:"-"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// --- DTOs ---

type CreateTypeRequest struct {
	Name string `json:"name"`
}

type UpdateTypeRequest struct {
	Name *string `json:"name"`
}

type TypeResponse struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	CreatedBy dto.CreatorRef `json:"createdBy"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
