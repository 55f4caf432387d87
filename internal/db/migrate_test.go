package db

import (
	"testing"

	"mpv_backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	return gdb
}

func TestAutoMigrateAndSeed(t *testing.T) {
	gdb := newTestDB(t)

	require.NoError(t, AutoMigrate(gdb))
	require.NoError(t, Seed(gdb))

	var services []domain.Service
	require.NoError(t, gdb.Find(&services).Error)
	require.Len(t, services, 3)
	assert.Equal(t, "Music Production", services[0].Title)
	assert.Equal(t, "Mixing & Mastering", services[1].Title)
	assert.Equal(t, "Video Editing", services[2].Title)

	var admin domain.User
	require.NoError(t, gdb.First(&admin, 1).Error)
	assert.Equal(t, "admin@mpv.com", admin.Email)
	assert.Equal(t, "admin", admin.Role)
	assert.Empty(t, admin.Password)
}

func TestSeedIsIdempotent(t *testing.T) {
	gdb := newTestDB(t)

	require.NoError(t, AutoMigrate(gdb))
	require.NoError(t, Seed(gdb))
	require.NoError(t, Seed(gdb))

	var serviceCount, userCount int64
	require.NoError(t, gdb.Model(&domain.Service{}).Count(&serviceCount).Error)
	require.NoError(t, gdb.Model(&domain.User{}).Count(&userCount).Error)
	assert.EqualValues(t, 3, serviceCount)
	assert.EqualValues(t, 1, userCount)
}

func TestUniqueEmailConstraint(t *testing.T) {
	gdb := newTestDB(t)
	require.NoError(t, AutoMigrate(gdb))

	first := domain.User{Name: "A", Email: "a@b.com", Password: "x"}
	require.NoError(t, gdb.Create(&first).Error)

	second := domain.User{Name: "B", Email: "a@b.com", Password: "y"}
	assert.Error(t, gdb.Create(&second).Error)
}
