package customers

import (
	"bytes"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rentstack/rental-admin-backend/internal/models"
	"github.com/rentstack/rental-admin-backend/internal/query"
	"github.com/rentstack/rental-admin-backend/internal/resources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) (*gorm.DB, models.Admin) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Admin{}, &Customer{}))

	admin := models.Admin{ID: uuid.New(), Name: "Ada", Email: "ada@example.com", Password: "hash", Role: "admin"}
	require.NoError(t, db.Create(&admin).Error)
	return db, admin
}

func listParams(page, limit int, search string) query.Params {
	return query.Params{Search: search, Page: page, Limit: limit, SortBy: "createdAt", Order: "desc"}
}

func TestCreateStampsCreator(t *testing.T) {
	db, admin := setupTestDB(t)
	service := NewService(db)

	resp, err := service.Create(admin.ID, &CreateCustomerRequest{Name: "  Bob Builder ", Email: "BOB@Example.com", Phone: "555-0101"})
	require.NoError(t, err)

	assert.Equal(t, "Bob Builder", resp.Name)
	assert.Equal(t, "bob@example.com", resp.Email)
	assert.Equal(t, admin.ID, resp.CreatedBy.ID)
	assert.Equal(t, "Ada", resp.CreatedBy.Name)
	assert.Equal(t, "ada@example.com", resp.CreatedBy.Email)
	assert.False(t, resp.CreatedAt.IsZero())
}

func TestCreateValidation(t *testing.T) {
	db, admin := setupTestDB(t)
	service := NewService(db)

	_, err := service.Create(admin.ID, &CreateCustomerRequest{Name: "   ", Email: "not-an-email"})
	var verr *resources.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)

	// Validation happens before any write.
	var count int64
	require.NoError(t, db.Model(&Customer{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetRoundTrip(t *testing.T) {
	db, admin := setupTestDB(t)
	service := NewService(db)

	created, err := service.Create(admin.ID, &CreateCustomerRequest{Name: "Carol", Email: "carol@example.com"})
	require.NoError(t, err)

	got, err := service.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Email, got.Email)
	assert.Equal(t, created.CreatedBy, got.CreatedBy)
}

func TestGetNotFound(t *testing.T) {
	db, _ := setupTestDB(t)
	service := NewService(db)

	_, err := service.Get(uuid.New())
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestUpdatePreservesCreator(t *testing.T) {
	db, admin := setupTestDB(t)
	service := NewService(db)

	created, err := service.Create(admin.ID, &CreateCustomerRequest{Name: "Dave", Email: "dave@example.com"})
	require.NoError(t, err)

	other := models.Admin{ID: uuid.New(), Name: "Eve", Email: "eve@example.com", Password: "hash"}
	require.NoError(t, db.Create(&other).Error)

	name := "David"
	updated, err := service.Update(created.ID, &UpdateCustomerRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "David", updated.Name)
	assert.Equal(t, admin.ID, updated.CreatedBy.ID)

	var stored Customer
	require.NoError(t, db.First(&stored, "id = ?", created.ID).Error)
	assert.Equal(t, admin.ID, stored.CreatedByID)
}

// A createdBy value supplied in the request body is silently dropped: the
// patch DTO has no such field, so the stored creator never changes.
func TestUpdateHandlerIgnoresClientCreatedBy(t *testing.T) {
	db, admin := setupTestDB(t)
	service := NewService(db)
	handler := NewHandler(service)

	created, err := service.Create(admin.ID, &CreateCustomerRequest{Name: "Frank", Email: "frank@example.com"})
	require.NoError(t, err)

	app := fiber.New()
	app.Put("/api/customers/:id", handler.UpdateCustomer)

	body := fmt.Sprintf(`{"name":"Franklin","createdBy":"%s"}`, uuid.New())
	req := httptest.NewRequest("PUT", "/api/customers/"+created.ID.String(), bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stored Customer
	require.NoError(t, db.First(&stored, "id = ?", created.ID).Error)
	assert.Equal(t, "Franklin", stored.Name)
	assert.Equal(t, admin.ID, stored.CreatedByID)
}

func TestUpdateNotFoundWritesNothing(t *testing.T) {
	db, _ := setupTestDB(t)
	service := NewService(db)

	name := "Ghost"
	_, err := service.Update(uuid.New(), &UpdateCustomerRequest{Name: &name})
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	var count int64
	require.NoError(t, db.Model(&Customer{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteHardDeletes(t *testing.T) {
	db, admin := setupTestDB(t)
	service := NewService(db)

	created, err := service.Create(admin.ID, &CreateCustomerRequest{Name: "Grace", Email: "grace@example.com"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(created.ID))

	_, err = service.Get(created.ID)
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	// Delete is terminal: a second delete is NotFound, not an error.
	assert.ErrorIs(t, service.Delete(created.ID), ErrCustomerNotFound)
}

func TestListEmpty(t *testing.T) {
	db, _ := setupTestDB(t)
	service := NewService(db)

	records, meta, err := service.List(listParams(1, 20, ""))
	require.NoError(t, err)

	assert.NotNil(t, records)
	assert.Empty(t, records)
	assert.Equal(t, 0, meta.Count)
	assert.EqualValues(t, 0, meta.Total)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 0, meta.Pages)
}

func TestListPagination(t *testing.T) {
	db, admin := setupTestDB(t)
	service := NewService(db)

	for i := 0; i < 25; i++ {
		_, err := service.Create(admin.ID, &CreateCustomerRequest{
			Name:  fmt.Sprintf("Customer %02d", i),
			Email: fmt.Sprintf("customer%02d@example.com", i),
		})
		require.NoError(t, err)
	}

	records, meta, err := service.List(listParams(2, 10, ""))
	require.NoError(t, err)
	assert.Len(t, records, 10)
	assert.Equal(t, 10, meta.Count)
	assert.EqualValues(t, 25, meta.Total)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 3, meta.Pages)

	// Last page holds the remainder; total still reflects the full filter.
	records, meta, err = service.List(listParams(3, 10, ""))
	require.NoError(t, err)
	assert.Equal(t, 5, meta.Count)
	assert.EqualValues(t, 25, meta.Total)
	assert.GreaterOrEqual(t, meta.Total, int64(meta.Count))
}

func TestListSearch(t *testing.T) {
	db, admin := setupTestDB(t)
	service := NewService(db)

	for _, c := range []CreateCustomerRequest{
		{Name: "Acme Rentals", Email: "office@acme.example.com"},
		{Name: "Builders Inc", Email: "contact@builders.example.com"},
		{Name: "Cranes R Us", Email: "acme-fan@cranes.example.com"},
	} {
		_, err := service.Create(admin.ID, &c)
		require.NoError(t, err)
	}

	// Matches name OR email, case-insensitively.
	records, meta, err := service.List(listParams(1, 20, "ACME"))
	require.NoError(t, err)
	assert.Equal(t, 2, meta.Count)
	assert.EqualValues(t, 2, meta.Total)
	names := []string{records[0].Name, records[1].Name}
	assert.Contains(t, names, "Acme Rentals")
	assert.Contains(t, names, "Cranes R Us")

	// LIKE wildcards in the search term are literal text, not patterns.
	_, meta, err = service.List(listParams(1, 20, "%"))
	require.NoError(t, err)
	assert.EqualValues(t, 0, meta.Total)
}

func TestListSort(t *testing.T) {
	db, admin := setupTestDB(t)
	service := NewService(db)

	for _, name := range []string{"Bravo", "Alpha", "Charlie"} {
		_, err := service.Create(admin.ID, &CreateCustomerRequest{Name: name, Email: name + "@example.com"})
		require.NoError(t, err)
	}

	records, _, err := service.List(query.Params{Page: 1, Limit: 20, SortBy: "name", Order: "asc"})
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Alpha", records[0].Name)
	assert.Equal(t, "Charlie", records[2].Name)

	// Unknown sort fields fall back to the default ordering instead of erroring.
	_, meta, err := service.List(query.Params{Page: 1, Limit: 20, SortBy: "password; DROP TABLE customers", Order: "desc"})
	require.NoError(t, err)
	assert.EqualValues(t, 3, meta.Total)
}
