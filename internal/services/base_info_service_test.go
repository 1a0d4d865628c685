package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servio_backend/internal/models"
)

func TestBaseInfo_EmptyPlatform(t *testing.T) {
	service := NewBaseInfoService(newFakeReviewRepo(), newFakeProfileRepo(), newFakeOfferRepo())

	info, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, int64(0), info.ReviewCount)
	assert.Equal(t, 0.0, info.AverageRating)
	assert.Equal(t, int64(0), info.BusinessProfileCount)
	assert.Equal(t, int64(0), info.OfferCount)
}

func TestBaseInfo_RoundsAverageRatingToOneDecimal(t *testing.T) {
	reviews := newFakeReviewRepo()
	profiles := newFakeProfileRepo()
	offers := newFakeOfferRepo()
	service := NewBaseInfoService(reviews, profiles, offers)

	require.NoError(t, reviews.Create(&models.Review{ReviewerID: "a", BusinessUserID: "x", Rating: 5}))
	require.NoError(t, reviews.Create(&models.Review{ReviewerID: "b", BusinessUserID: "x", Rating: 4}))
	require.NoError(t, reviews.Create(&models.Review{ReviewerID: "c", BusinessUserID: "x", Rating: 4}))

	require.NoError(t, profiles.Create(&models.Profile{UserID: "x", Type: models.ProfileTypeBusiness}))
	require.NoError(t, offers.Create(&models.Offer{UserID: "x", Title: "Angebot"}))

	info, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, int64(3), info.ReviewCount)
	assert.Equal(t, 4.3, info.AverageRating)
	assert.Equal(t, int64(1), info.BusinessProfileCount)
	assert.Equal(t, int64(1), info.OfferCount)
}
