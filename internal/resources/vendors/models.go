package vendors

import (
	"time"

	"github.com/google/uuid"
	"github.com/rentstack/rental-admin-backend/internal/dto"
	"github.com/rentstack/rental-admin-backend/internal/models"
)

// Vendor is an equipment vendor record.
type Vendor struct {
	ID                 uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Name               string       `gorm:"not null;size:255" json:"name"`
	Email              string       `gorm:"not null;size:255;uniqueIndex" json:"email"`
	NumberOfEquipments int          `gorm:"not null" json:"numberOfEquipments"`
	CreatedByID        uuid.UUID    `gorm:"type:uuid;not null;index" json:"-"`
	CreatedBy          models.Admin `gorm:"foreignKey:CreatedByID" json:"-"`
	CreatedAt          time.Time    `json:"createdAt"`
	UpdatedAt          time.Time    `json:"updatedAt"`
}

// --- DTOs ---

type CreateVendorRequest struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	NumberOfEquipments *int   `json:"numberOfEquipments"`
}

type UpdateVendorRequest struct {
	Name               *string `json:"name"`
	Email              *string `json:"email"`
	NumberOfEquipments *int    `json:"numberOfEquipments"`
}

type VendorResponse struct {
	ID                 uuid.UUID      `json:"id"`
	Name               string         `json:"name"`
	Email              string         `json:"email"`
	NumberOfEquipments int            `json:"numberOfEquipments"`
	CreatedBy          dto.CreatorRef `json:"createdBy"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}
