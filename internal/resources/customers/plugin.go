package customers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rentstack/rental-admin-backend/internal/config"
	"gorm.io/gorm"
)

type CustomersPlugin struct{}

func New() *CustomersPlugin {
	return &CustomersPlugin{}
}

func (p *CustomersPlugin) ID() string { return "customers" }

func (p *CustomersPlugin) Models() []interface{} {
	return []interface{}{&Customer{}}
}

func (p *CustomersPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := NewHandler(NewService(db))

	router.Post("/", handler.CreateCustomer)
	router.Get("/", handler.ListCustomers)
	router.Get("/:id", handler.GetCustomer)
	router.Put("/:id", handler.UpdateCustomer)
	router.Delete("/:id", handler.DeleteCustomer)
}
