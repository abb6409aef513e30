// Package dbtest opens throwaway SQLite databases with the production schema.
package dbtest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/home-listing/internal/db"
	"github.com/BruksfildServices01/home-listing/internal/models"
)

func Open(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, dbpkg.Migrate(db))
	return db
}

func SeedUser(t *testing.T, db *gorm.DB, name string, userType models.UserType) *models.User {
	t.Helper()

	u := &models.User{
		Name:         name,
		Email:        strings.ToLower(name) + "@example.com",
		Phone:        "01012345678",
		PasswordHash: "x",
		UserType:     userType,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func SeedHome(t *testing.T, db *gorm.DB, realtorID uint, city string, price float64, images ...string) *models.Home {
	t.Helper()

	h := &models.Home{
		Address:           "1 Test St",
		City:              city,
		Price:             price,
		LandSize:          100,
		PropertyType:      models.PropertyTypeResidential,
		NumberOfBedrooms:  2,
		NumberOfBathrooms: 1,
		RealtorID:         realtorID,
	}
	require.NoError(t, db.Omit("Images", "Realtor").Create(h).Error)

	for _, url := range images {
		require.NoError(t, db.Create(&models.Image{URL: url, HomeID: h.ID}).Error)
	}
	return h
}
