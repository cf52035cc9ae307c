package migrations

import (
	"gorm.io/gorm"

	"github.com/grabpoint/api/app/models"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderAddress{},
		&models.PrintOrder{},
		&models.PrintOrderFile{},
		&models.Rating{},
	)
}
