package vendors

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rentstack/rental-admin-backend/internal/config"
	"gorm.io/gorm"
)

type VendorsPlugin struct{}

func New() *VendorsPlugin {
	return &VendorsPlugin{}
}

func (p *VendorsPlugin) ID() string { return "vendors" }

func (p *VendorsPlugin) Models() []interface{} {
	return []interface{}{&Vendor{}}
}

func (p *VendorsPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := NewHandler(NewService(db))

	router.Post("/", handler.CreateVendor)
	router.Get("/", handler.ListVendors)
	router.Get("/:id", handler.GetVendor)
	router.Put("/:id", handler.UpdateVendor)
	router.Delete("/:id", handler.DeleteVendor)
}
