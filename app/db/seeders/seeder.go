package seeders

import (
	"gorm.io/gorm"

	"github.com/grabpoint/api/app/db/fakers"
)

const (
	seedCategories         = 4
	seedProductsPerCatalog = 5
	seedUsers              = 3
)

// DBSeed fills an empty development database with demo users, categories and
// products.
func DBSeed(db *gorm.DB) error {
	for i := 0; i < seedUsers; i++ {
		if err := db.Create(fakers.UserFaker()).Error; err != nil {
			return err
		}
	}

	for i := 0; i < seedCategories; i++ {
		category := fakers.CategoryFaker()
		if err := db.Create(category).Error; err != nil {
			return err
		}
		for j := 0; j < seedProductsPerCatalog; j++ {
			if err := db.Create(fakers.ProductFaker(category)).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
