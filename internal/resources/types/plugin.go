package types

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rentstack/rental-admin-backend/internal/config"
	"gorm.io/gorm"
)

type TypesPlugin struct{}

func New() *TypesPlugin {
	return &TypesPlugin{}
}

func (p *TypesPlugin) ID() string { return "types" }

func (p *TypesPlugin) Models() []interface{} {
	return []interface{}{&Type{}}
}

func (p *TypesPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := NewHandler(NewService(db))

	router.Post("/", handler.CreateType)
	router.Get("/", handler.ListTypes)
	router.Get("/:id", handler.GetType)
	router.Put("/:id", handler.UpdateType)
	router.Delete("/:id", handler.DeleteType)
}
