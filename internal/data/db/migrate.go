package db

import (
	"gorm.io/gorm"

	"github.com/yungbote/orderdesk-backend/internal/data/models"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	)
}
