package equipment

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

	require.NoError(t, db.AutoMigrate(&models.Admin{}, &Equipment{}))

	admin := models.Admin{ID: uuid.New(), Name: "Ada", Email: "ada@example.com", Password: "hash", Role: "admin"}
	require.NoError(t, db.Create(&admin).Error)
	return db, admin
}

func TestCreateRejectsMalformedTypeID(t *testing.T) {
	db, admin := setupTestDB(t)
	service := NewService(db)

	_, err := service.Create(admin.ID, &CreateEquipmentRequest{Title: "Excavator XL", Type: "not-an-id"})
	var verr *resources.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "invalid Type ID format")

	// Rejected before any write occurs.
	var count int64
	require.NoError(t, db.Model(&Equipment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateRequiresTitleAndType(t *testing.T) {
	db, admin := setupTestDB(t)
	service := NewService(db)

	_, err := service.Create(admin.ID, &CreateEquipmentRequest{Title: "   ", Type: ""})
	var verr *resources.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)
}

func TestCreateResolvesCreator(t *testing.T) {
	db, admin := setupTestDB(t)
	service := NewService(db)

	typeID := uuid.New()
	resp, err := service.Create(admin.ID, &CreateEquipmentRequest{
		Title:       " Excavator XL ",
		Type:        typeID.String(),
		Description: "20-ton tracked excavator",
		KeySpecs: []KeySpec{
			{Title: "Operating weight", Description: "20,500 kg", Weight: "20500"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Excavator XL", resp.Title)
	assert.Equal(t, typeID, resp.Type)
	assert.Equal(t, admin.ID, resp.CreatedBy.ID)
	require.Len(t, resp.KeySpecs, 1)
	assert.Equal(t, "Operating weight", resp.KeySpecs[0].Title)
}

func TestSearchTitleCaseInsensitive(t *testing.T) {
	db, admin := setupTestDB(t)
	service := NewService(db)

	for _, title := range []string{"Excavator XL", "Crane", "Bulldozer"} {
		_, err := service.Create(admin.ID, &CreateEquipmentRequest{Title: title, Type: uuid.New().String()})
		require.NoError(t, err)
	}

	for _, term := range []string{"exc", "EXC", "Exc"} {
		records, meta, err := service.List(query.Params{Search: term, Page: 1, Limit: 20, SortBy: "createdAt", Order: "desc"})
		require.NoError(t, err)
		require.Equal(t, 1, meta.Count, "search %q", term)
		assert.Equal(t, "Excavator XL", records[0].Title)
	}
}

func TestUpdateMerge(t *testing.T) {
	db, admin := setupTestDB(t)
	service := NewService(db)

	created, err := service.Create(admin.ID, &CreateEquipmentRequest{Title: "Crane", Type: uuid.New().String()})
	require.NoError(t, err)

	badType := "rental"
	_, err = service.Update(created.ID, &UpdateEquipmentRequest{Type: &badType})
	var verr *resources.ValidationError
	require.ErrorAs(t, err, &verr)

	desc := "Tower crane, 60m jib"
	specs := []KeySpec{{Title: "Max load", Description: "8 t", Weight: "8000"}}
	updated, err := service.Update(created.ID, &UpdateEquipmentRequest{Description: &desc, KeySpecs: &specs})
	require.NoError(t, err)

	assert.Equal(t, "Crane", updated.Title)
	assert.Equal(t, desc, updated.Description)
	require.Len(t, updated.KeySpecs, 1)
	assert.Equal(t, "Max load", updated.KeySpecs[0].Title)
	assert.Equal(t, admin.ID, updated.CreatedBy.ID)
}

func TestDeleteLeavesDanglingTypeRefs(t *testing.T) {
	db, admin := setupTestDB(t)
	service := NewService(db)

	typeID := uuid.New()
	created, err := service.Create(admin.ID, &CreateEquipmentRequest{Title: "Dumper", Type: typeID.String()})
	require.NoError(t, err)

	// The type reference is never existence-checked; the record survives a
	// type that was never (or is no longer) present.
	got, err := service.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, typeID, got.Type)

	require.NoError(t, service.Delete(created.ID))
	assert.ErrorIs(t, service.Delete(created.ID), ErrEquipmentNotFound)
}
