package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/rentstack/rental-admin-backend/internal/config"
	"github.com/rentstack/rental-admin-backend/internal/handlers"
	"github.com/rentstack/rental-admin-backend/internal/middleware"
	"github.com/rentstack/rental-admin-backend/internal/resources"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	plugins []resources.Plugin,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health
	api.Get("/health", healthHandler.Check)

	// Admin auth — public routes get a stricter rate limit: 10 req/min per IP
	admin := api.Group("/admin")
	admin.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	admin.Post("/register", authHandler.Register)
	admin.Post("/login", authHandler.Login)
	admin.Post("/refresh", authHandler.Refresh)
	admin.Post("/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	admin.Get("/profile", middleware.JWTProtected(cfg), authHandler.Profile)

	// Resource plugins, each mounted at /api/{resource} behind the JWT guard
	for _, p := range plugins {
		group := api.Group("/"+p.ID(), middleware.JWTProtected(cfg))
		p.RegisterRoutes(group, db, cfg)
	}
}
