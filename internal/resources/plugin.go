// Package resources defines the interface every resource plugin implements
// and the validation error type their services share.
package resources

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rentstack/rental-admin-backend/internal/config"
	"gorm.io/gorm"
)

// Plugin defines the interface every resource must implement.
type Plugin interface {
	// ID returns the resource identifier, which is also its mount path
	// segment under /api.
	ID() string

	// Models returns the list of GORM model pointers for AutoMigrate.
	Models() []interface{}

	// RegisterRoutes mounts the resource routes on the given Fiber group.
	// The group is already prefixed with /api/{id} and has JWT middleware
	// applied.
	RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config)
}
