package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rentstack/rental-admin-backend/internal/config"
	"github.com/rentstack/rental-admin-backend/internal/dto"
	"github.com/rentstack/rental-admin-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Admin{}, &models.RefreshToken{}))

	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  time.Hour,
		JWTRefreshExpiry: 168 * time.Hour,
	}
	return NewAuthService(db, cfg), db
}

func TestRegisterAndLogin(t *testing.T) {
	service, _ := setupAuthService(t)

	resp, err := service.Register(&dto.RegisterRequest{Name: "Ada", Email: "Ada@Example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "ada@example.com", resp.Admin.Email)
	assert.Equal(t, "admin", resp.Admin.Role)

	// Email lookup is case-insensitive via normalization.
	login, err := service.Login(&dto.LoginRequest{Email: "ADA@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, resp.Admin.ID, login.Admin.ID)

	_, err = service.Login(&dto.LoginRequest{Email: "ada@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	service, _ := setupAuthService(t)

	_, err := service.Register(&dto.RegisterRequest{Email: "ada@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = service.Register(&dto.RegisterRequest{Email: "ada@example.com", Password: "secret456"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	service, _ := setupAuthService(t)

	_, err := service.Register(&dto.RegisterRequest{Email: "ada@example.com", Password: "short"})
	assert.Error(t, err)
}

func TestRefreshRotatesToken(t *testing.T) {
	service, _ := setupAuthService(t)

	reg, err := service.Register(&dto.RegisterRequest{Email: "ada@example.com", Password: "secret123"})
	require.NoError(t, err)

	refreshed, err := service.Refresh(&dto.RefreshRequest{RefreshToken: reg.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, reg.RefreshToken, refreshed.RefreshToken)

	// The spent token is revoked and cannot be replayed.
	_, err = service.Refresh(&dto.RefreshRequest{RefreshToken: reg.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesToken(t *testing.T) {
	service, _ := setupAuthService(t)

	reg, err := service.Register(&dto.RegisterRequest{Email: "ada@example.com", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, service.Logout(&dto.LogoutRequest{RefreshToken: reg.RefreshToken}))

	_, err = service.Refresh(&dto.RefreshRequest{RefreshToken: reg.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestProfile(t *testing.T) {
	service, _ := setupAuthService(t)

	reg, err := service.Register(&dto.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret123"})
	require.NoError(t, err)

	profile, err := service.Profile(reg.Admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.Name)
	assert.Equal(t, "ada@example.com", profile.Email)
	assert.Equal(t, "admin", profile.Role)
}
