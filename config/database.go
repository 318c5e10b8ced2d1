package config

import (
	"fmt"

	"food-ordering-api/models"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB opens the sqlite store, runs migrations and seeds the default admin
// account. The returned handle is injected into the handlers; there is no
// package-level singleton.
func OpenDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	if err := seedAdmin(db); err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}

	return db, nil
}

// CloseDB releases the underlying connection pool.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// seedAdmin inserts the bootstrap admin account when it is absent.
func seedAdmin(db *gorm.DB) error {
	var existing models.User
	err := db.Where("email = ?", "admin@fooddelivery.com").First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Name:         "Admin User",
		Email:        "admin@fooddelivery.com",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	return db.Create(&admin).Error
}
