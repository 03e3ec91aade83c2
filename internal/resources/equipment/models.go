package equipment

import (
	"time"

	"github.com/google/uuid"
	"github.com/rentstack/rental-admin-backend/internal/dto"
	"github.com/rentstack/rental-admin-backend/internal/models"
	"gorm.io/datatypes"
)

// Equipment is a rentable machine. TypeID references a Type record; the
// reference is checked for shape only, never for existence, so a deleted Type
// may leave dangling references behind.
type Equipment struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string         `gorm:"not null;size:255" json:"title"`
	TypeID      uuid.UUID      `gorm:"type:uuid;index" json:"type"`
	Description string         `gorm:"size:2000" json:"description,omitempty"`
	KeySpecs    datatypes.JSON `gorm:"type:jsonb" json:"keySpecs"`
	CreatedByID uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	CreatedBy   models.Admin   `gorm:"foreignKey:CreatedByID" json:"-"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// KeySpec is one headline specification of a machine.
type KeySpec struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Weight      string `json:"weight"`
}

// --- DTOs ---

type CreateEquipmentRequest struct {
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	KeySpecs    []KeySpec `json:"keySpecs"`
}

type UpdateEquipmentRequest struct {
	Title       *string    `json:"title"`
	Type        *string    `json:"type"`
	Description *string    `json:"description"`
	KeySpecs    *[]KeySpec `json:"keySpecs"`
}

type EquipmentResponse struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	Type        uuid.UUID      `json:"type"`
	Description string         `json:"description,omitempty"`
	KeySpecs    []KeySpec      `json:"keySpecs"`
	CreatedBy   dto.CreatorRef `json:"createdBy"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
