package database

import (
	"shopadmin/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init opens the store handle and migrates the schema. TranslateError is
// required so driver constraint failures surface as gorm.ErrDuplicatedKey /
// gorm.ErrForeignKeyViolated instead of opaque driver errors.
func Init(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the users, products and reviews tables. Tests
// call this directly against an in-memory handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Review{},
	)
}
