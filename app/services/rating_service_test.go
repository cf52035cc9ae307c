package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/grabpoint/api/app/models"
	"github.com/grabpoint/api/app/repositories"
	"github.com/grabpoint/api/app/utils/apperrors"
)

type RatingServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	svc     *RatingService
	user    *models.User
	product *models.Product
}

func (s *RatingServiceTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.svc = NewRatingService(
		repositories.NewRatingRepository(s.db),
		repositories.NewProductRepository(s.db),
	)
	s.user = createTestUser(s.T(), s.db, "alice")
	category := createTestCategory(s.T(), s.db, "Stationery")
	s.product = createTestProduct(s.T(), s.db, "Notebook", 100, nil, category.ID)
}

func (s *RatingServiceTestSuite) TestCreateDerivesTitleFromScore() {
	rating, err := s.svc.Create(context.Background(), s.user.ID, s.product.ID, 4, "solid")
	require.NoError(s.T(), err)
	require.Equal(s.T(), "Good", rating.Title)
	require.Equal(s.T(), "solid", rating.Comment)
}

func (s *RatingServiceTestSuite) TestCreateRejectsOutOfRangeScore() {
	for _, score := range []int{0, 6, -1} {
		_, err := s.svc.Create(context.Background(), s.user.ID, s.product.ID, score, "")
		require.True(s.T(), apperrors.IsValidation(err), "score %d should be rejected", score)
	}
}

func (s *RatingServiceTestSuite) TestCreateUnknownProduct() {
	_, err := s.svc.Create(context.Background(), s.user.ID, "no-such-product", 3, "")
	require.True(s.T(), apperrors.IsNotFound(err))
}

func (s *RatingServiceTestSuite) TestDuplicateRatingsAllowed() {
	_, err := s.svc.Create(context.Background(), s.user.ID, s.product.ID, 2, "")
	require.NoError(s.T(), err)
	_, err = s.svc.Create(context.Background(), s.user.ID, s.product.ID, 4, "")
	require.NoError(s.T(), err)

	ratings, err := s.svc.ListByProduct(context.Background(), s.product.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), ratings, 2)
}

func (s *RatingServiceTestSuite) TestSummaryAveragesScores() {
	_, err := s.svc.Create(context.Background(), s.user.ID, s.product.ID, 3, "")
	require.NoError(s.T(), err)
	_, err = s.svc.Create(context.Background(), s.user.ID, s.product.ID, 5, "")
	require.NoError(s.T(), err)

	summary, err := s.svc.Summary(context.Background(), s.product.ID)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4.0, summary.Average)
	require.EqualValues(s.T(), 2, summary.Count)
}

func (s *RatingServiceTestSuite) TestSummaryRoundsToOneDecimal() {
	for _, score := range []int{5, 4, 4} {
		_, err := s.svc.Create(context.Background(), s.user.ID, s.product.ID, score, "")
		require.NoError(s.T(), err)
	}

	summary, err := s.svc.Summary(context.Background(), s.product.ID)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4.3, summary.Average)
	require.EqualValues(s.T(), 3, summary.Count)
}

func (s *RatingServiceTestSuite) TestSummaryWithoutRatings() {
	_, err := s.svc.Summary(context.Background(), s.product.ID)
	require.True(s.T(), apperrors.IsNotFound(err))
}

func TestRatingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RatingServiceTestSuite))
}
