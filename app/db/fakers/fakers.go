// Package fakers builds randomized demo records for local development seeding.
package fakers

import (
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/grabpoint/api/app/models"
)

func UserFaker() *models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	return &models.User{
		Username:    faker.Username(),
		Email:       faker.Email(),
		Password:    string(hash),
		FullName:    faker.Name(),
		PhoneNumber: faker.Phonenumber(),
		IsVerified:  true,
	}
}

func CategoryFaker() *models.Category {
	return &models.Category{
		Name: faker.Word() + " " + faker.Word(),
	}
}

func ProductFaker(category *models.Category) *models.Product {
	price := decimal.NewFromFloat(float64(rand.Intn(99000)+1000) / 100)

	product := &models.Product{
		Name:              faker.Name(),
		ShortDescription:  faker.Sentence(),
		FullDescription:   faker.Paragraph(),
		Price:             price,
		AvailableQuantity: rand.Intn(50) + 1,
		CategoryID:        category.ID,
	}

	// Roughly a third of products go on sale at 20% off.
	if rand.Intn(3) == 0 {
		sale := price.Mul(decimal.NewFromFloat(0.8)).Round(2)
		product.SalePrice = decimal.NewNullDecimal(sale)
	}

	return product
}
