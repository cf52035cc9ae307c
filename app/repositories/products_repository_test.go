package repositories

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/grabpoint/api/app/models"
	"github.com/grabpoint/api/app/models/migrations"
)

type ProductRepositoryTestSuite struct {
	suite.Suite
	db         *gorm.DB
	repo       ProductRepositoryImpl
	stationery *models.Category
	books      *models.Category
}

func (s *ProductRepositoryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(s.T(), err)
	require.NoError(s.T(), migrations.AutoMigrate(db))
	s.db = db
	s.repo = NewProductRepository(db)

	s.stationery = s.createCategory("Stationery")
	s.books = s.createCategory("Books")

	s.createProduct("Notebook", 50, s.stationery.ID)
	s.createProduct("Fountain Pen", 120, s.stationery.ID)
	s.createProduct("Atlas", 300, s.books.ID)
}

func (s *ProductRepositoryTestSuite) createCategory(name string) *models.Category {
	s.T().Helper()

	category := &models.Category{Name: name}
	require.NoError(s.T(), s.db.Create(category).Error)
	return category
}

func (s *ProductRepositoryTestSuite) createProduct(name string, price float64, categoryID string) *models.Product {
	s.T().Helper()

	product := &models.Product{
		Name:              name,
		ShortDescription:  name,
		FullDescription:   name,
		Price:             decimal.NewFromFloat(price),
		AvailableQuantity: 10,
		CategoryID:        categoryID,
	}
	require.NoError(s.T(), s.db.Create(product).Error)
	return product
}

func names(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func (s *ProductRepositoryTestSuite) TestSearchMatchesProductName() {
	products, err := s.repo.Search(context.Background(), ProductFilter{Search: "pen"})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"Fountain Pen"}, names(products))
}

func (s *ProductRepositoryTestSuite) TestSearchMatchesCategoryName() {
	products, err := s.repo.Search(context.Background(), ProductFilter{Search: "Books"})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"Atlas"}, names(products))
}

func (s *ProductRepositoryTestSuite) TestCategoryFilterCombinesWithOr() {
	products, err := s.repo.Search(context.Background(), ProductFilter{
		CategoryIDs: []string{s.stationery.ID, s.books.ID},
	})
	require.NoError(s.T(), err)
	require.Len(s.T(), products, 3)

	products, err = s.repo.Search(context.Background(), ProductFilter{
		CategoryIDs: []string{s.books.ID},
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"Atlas"}, names(products))
}

func (s *ProductRepositoryTestSuite) TestOrderingVariants() {
	byPrice, err := s.repo.Search(context.Background(), ProductFilter{Ordering: "price"})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"Notebook", "Fountain Pen", "Atlas"}, names(byPrice))

	byPriceDesc, err := s.repo.Search(context.Background(), ProductFilter{Ordering: "-price"})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"Atlas", "Fountain Pen", "Notebook"}, names(byPriceDesc))

	byNameDesc, err := s.repo.Search(context.Background(), ProductFilter{Ordering: "-name"})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"Notebook", "Fountain Pen", "Atlas"}, names(byNameDesc))

	defaultOrder, err := s.repo.Search(context.Background(), ProductFilter{})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"Atlas", "Fountain Pen", "Notebook"}, names(defaultOrder))
}

func (s *ProductRepositoryTestSuite) TestSearchAndFilterCombine() {
	products, err := s.repo.Search(context.Background(), ProductFilter{
		Search:      "Stationery",
		CategoryIDs: []string{s.stationery.ID},
		Ordering:    "-price",
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"Fountain Pen", "Notebook"}, names(products))
}

func (s *ProductRepositoryTestSuite) TestGetByIDPreloadsCategory() {
	product := s.createProduct("Stapler", 80, s.stationery.ID)

	found, err := s.repo.GetByID(context.Background(), product.ID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), found)
	require.Equal(s.T(), "Stationery", found.Category.Name)
}

func (s *ProductRepositoryTestSuite) TestGetByIDUnknownReturnsNil() {
	found, err := s.repo.GetByID(context.Background(), "missing")
	require.NoError(s.T(), err)
	require.Nil(s.T(), found)
}

func TestProductRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryTestSuite))
}
