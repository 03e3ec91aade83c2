package customers

import (
	"time"

	"github.com/google/uuid"
	"github.com/rentstack/rental-admin-backend/internal/dto"
	"github.com/rentstack/rental-admin-backend/internal/models"
)

// Customer is a rental customer record. CreatedByID is stamped once at
// creation from the authenticated admin and never updated afterwards.
type Customer struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string       `gorm:"not null;size:255" json:"name"`
	Email       string       `gorm:"not null;size:255" json:"email"`
	Phone       string       `gorm:"size:50" json:"phone,omitempty"`
	CreatedByID uuid.UUID    `gorm:"type:uuid;not null;index" json:"-"`
	CreatedBy   models.Admin `gorm:"foreignKey:CreatedByID" json:"-"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// --- DTOs ---

type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type UpdateCustomerRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

type CustomerResponse struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone,omitempty"`
	CreatedBy dto.CreatorRef `json:"createdBy"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
