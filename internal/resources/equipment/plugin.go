package equipment

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rentstack/rental-admin-backend/internal/config"
	"gorm.io/gorm"
)

type EquipmentPlugin struct{}

func New() *EquipmentPlugin {
	return &EquipmentPlugin{}
}

// ID matches the original API surface, which mounts this resource at
// /api/equipments.
func (p *EquipmentPlugin) ID() string { return "equipments" }

func (p *EquipmentPlugin) Models() []interface{} {
	return []interface{}{&Equipment{}}
}

func (p *EquipmentPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := NewHandler(NewService(db))

	router.Post("/", handler.CreateEquipment)
	router.Get("/", handler.ListEquipment)
	router.Get("/:id", handler.GetEquipment)
	router.Put("/:id", handler.UpdateEquipment)
	router.Delete("/:id", handler.DeleteEquipment)
}
