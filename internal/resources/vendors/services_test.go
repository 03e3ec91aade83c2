package vendors

import (
	"testing"

	"github.com/glebarez/sqlite"
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

	require.NoError(t, db.AutoMigrate(&models.Admin{}, &Vendor{}))

	admin := models.Admin{ID: uuid.New(), Name: "Ada", Email: "ada@example.com", Password: "hash", Role: "admin"}
	require.NoError(t, db.Create(&admin).Error)
	return db, admin
}

func intPtr(n int) *int { return &n }

func TestCreateRequiresAllFields(t *testing.T) {
	db, admin := setupTestDB(t)
	service := NewService(db)

	_, err := service.Create(admin.ID, &CreateVendorRequest{})
	var verr *resources.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3)

	_, err = service.Create(admin.ID, &CreateVendorRequest{
		Name: "Machinery Co", Email: "sales@machinery.example.com", NumberOfEquipments: intPtr(-1),
	})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "numberOfEquipments must not be negative")
}

func TestCreateNormalizesEmail(t *testing.T) {
	db, admin := setupTestDB(t)
	service := NewService(db)

	resp, err := service.Create(admin.ID, &CreateVendorRequest{
		Name: "Machinery Co", Email: " Sales@Machinery.Example.COM ", NumberOfEquipments: intPtr(12),
	})
	require.NoError(t, err)
	assert.Equal(t, "sales@machinery.example.com", resp.Email)
	assert.Equal(t, 12, resp.NumberOfEquipments)
	assert.Equal(t, admin.ID, resp.CreatedBy.ID)
}

func TestCreateDuplicateEmailIsStoreError(t *testing.T) {
	db, admin := setupTestDB(t)
	service := NewService(db)

	req := &CreateVendorRequest{Name: "Machinery Co", Email: "sales@machinery.example.com", NumberOfEquipments: intPtr(3)}
	_, err := service.Create(admin.ID, req)
	require.NoError(t, err)

	_, err = service.Create(admin.ID, req)
	require.Error(t, err)
	var verr *resources.ValidationError
	assert.NotErrorAs(t, err, &verr)
}

func TestUpdatePreservesCreator(t *testing.T) {
	db, admin := setupTestDB(t)
	service := NewService(db)

	created, err := service.Create(admin.ID, &CreateVendorRequest{
		Name: "Machinery Co", Email: "sales@machinery.example.com", NumberOfEquipments: intPtr(3),
	})
	require.NoError(t, err)

	updated, err := service.Update(created.ID, &UpdateVendorRequest{NumberOfEquipments: intPtr(7)})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.NumberOfEquipments)
	assert.Equal(t, admin.ID, updated.CreatedBy.ID)

	var stored Vendor
	require.NoError(t, db.First(&stored, "id = ?", created.ID).Error)
	assert.Equal(t, admin.ID, stored.CreatedByID)
}

func TestListSearchNameOrEmail(t *testing.T) {
	db, admin := setupTestDB(t)
	service := NewService(db)

	for _, v := range []CreateVendorRequest{
		{Name: "Heavy Lift GmbH", Email: "kontakt@heavylift.example.com", NumberOfEquipments: intPtr(5)},
		{Name: "Steel Partners", Email: "heavy@steel.example.com", NumberOfEquipments: intPtr(2)},
		{Name: "Light Tools", Email: "info@lighttools.example.com", NumberOfEquipments: intPtr(9)},
	} {
		_, err := service.Create(admin.ID, &v)
		require.NoError(t, err)
	}

	_, meta, err := service.List(query.Params{Search: "heavy", Page: 1, Limit: 20, SortBy: "createdAt", Order: "desc"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, meta.Total)
	assert.Equal(t, 2, meta.Count)
	assert.Equal(t, 1, meta.Pages)
}

func TestDeleteNotFound(t *testing.T) {
	db, _ := setupTestDB(t)
	service := NewService(db)

	assert.ErrorIs(t, service.Delete(uuid.New()), ErrVendorNotFound)
}
