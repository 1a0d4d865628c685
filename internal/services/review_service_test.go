package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servio_backend/internal/models"
	"servio_backend/internal/services/dto"
)

type reviewFixture struct {
	service  ReviewService
	reviews  *fakeReviewRepo
	profiles *fakeProfileRepo
	users    *fakeUserRepo

	customer  *models.User
	businessA *models.User
	businessB *models.User
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()

	reviews := newFakeReviewRepo()
	profiles := newFakeProfileRepo()
	users := newFakeUserRepo()

	f := &reviewFixture{
		service:  NewReviewService(reviews, profiles, users),
		reviews:  reviews,
		profiles: profiles,
		users:    users,
	}

	addUser := func(username string, profileType models.ProfileType) *models.User {
		user := &models.User{Username: username, Email: username + "@example.com"}
		require.NoError(t, users.Create(user))
		require.NoError(t, profiles.Create(&models.Profile{UserID: user.ID, Type: profileType}))
		return user
	}

	f.customer = addUser("kunde", models.ProfileTypeCustomer)
	f.businessA = addUser("anna", models.ProfileTypeBusiness)
	f.businessB = addUser("bernd", models.ProfileTypeBusiness)
	return f
}

func TestCreateReview_OnePerBusinessPair(t *testing.T) {
	f := newReviewFixture(t)

	_, err := f.service.Create(f.customer.ID, &dto.CreateReviewRequest{
		BusinessUserID: f.businessA.ID,
		Rating:         5,
		Description:    "Sehr gut",
	})
	require.NoError(t, err)

	_, err = f.service.Create(f.customer.ID, &dto.CreateReviewRequest{
		BusinessUserID: f.businessA.ID,
		Rating:         1,
	})
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Contains(t, appErr.Messages, "Du kannst nur eine Bewertung pro Geschäftsprofil abgeben.")

	_, err = f.service.Create(f.customer.ID, &dto.CreateReviewRequest{
		BusinessUserID: f.businessB.ID,
		Rating:         4,
	})
	require.NoError(t, err)
}

func TestCreateReview_CustomerOnly(t *testing.T) {
	f := newReviewFixture(t)

	_, err := f.service.Create(f.businessA.ID, &dto.CreateReviewRequest{
		BusinessUserID: f.businessB.ID,
		Rating:         5,
	})
	appErr := requireAppError(t, err, http.StatusForbidden)
	assert.Contains(t, appErr.Messages, "Nur Kunden haben Zugriff auf diese Funktion.")
}

func TestCreateReview_UnknownBusinessUserNotFound(t *testing.T) {
	f := newReviewFixture(t)

	_, err := f.service.Create(f.customer.ID, &dto.CreateReviewRequest{
		BusinessUserID: "missing",
		Rating:         5,
	})
	requireAppError(t, err, http.StatusNotFound)
}

func TestCreateReview_RatingUnbounded(t *testing.T) {
	f := newReviewFixture(t)

	created, err := f.service.Create(f.customer.ID, &dto.CreateReviewRequest{
		BusinessUserID: f.businessA.ID,
		Rating:         42,
	})
	require.NoError(t, err)
	assert.Equal(t, 42, created.Rating)
}

func TestUpdateReview_ReviewerOrStaffOnly(t *testing.T) {
	f := newReviewFixture(t)

	created, err := f.service.Create(f.customer.ID, &dto.CreateReviewRequest{
		BusinessUserID: f.businessA.ID,
		Rating:         5,
	})
	require.NoError(t, err)

	rating := 2
	_, err = f.service.Update(f.businessA.ID, false, created.ID, &dto.UpdateReviewRequest{Rating: &rating})
	requireAppError(t, err, http.StatusForbidden)

	updated, err := f.service.Update(f.customer.ID, false, created.ID, &dto.UpdateReviewRequest{Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Rating)

	description := "Korrigiert"
	fromStaff, err := f.service.Update(f.businessB.ID, true, created.ID, &dto.UpdateReviewRequest{Description: &description})
	require.NoError(t, err)
	assert.Equal(t, "Korrigiert", fromStaff.Description)
}

func TestDeleteReview_ReviewerOrStaffOnly(t *testing.T) {
	f := newReviewFixture(t)

	created, err := f.service.Create(f.customer.ID, &dto.CreateReviewRequest{
		BusinessUserID: f.businessA.ID,
		Rating:         5,
	})
	require.NoError(t, err)

	err = f.service.Delete(f.businessA.ID, false, created.ID)
	requireAppError(t, err, http.StatusForbidden)

	require.NoError(t, f.service.Delete(f.customer.ID, false, created.ID))

	_, err = f.service.Get(created.ID)
	requireAppError(t, err, http.StatusNotFound)
}

func TestListReviews_FilterAndOrdering(t *testing.T) {
	f := newReviewFixture(t)

	second := &models.User{Username: "claudia", Email: "claudia@example.com"}
	require.NoError(t, f.users.Create(second))
	require.NoError(t, f.profiles.Create(&models.Profile{UserID: second.ID, Type: models.ProfileTypeCustomer}))

	_, err := f.service.Create(f.customer.ID, &dto.CreateReviewRequest{BusinessUserID: f.businessA.ID, Rating: 2})
	require.NoError(t, err)
	_, err = f.service.Create(second.ID, &dto.CreateReviewRequest{BusinessUserID: f.businessA.ID, Rating: 5})
	require.NoError(t, err)
	_, err = f.service.Create(f.customer.ID, &dto.CreateReviewRequest{BusinessUserID: f.businessB.ID, Rating: 4})
	require.NoError(t, err)

	forA, err := f.service.List(dto.ListReviewsParams{BusinessUserID: f.businessA.ID, Ordering: "rating"})
	require.NoError(t, err)
	require.Len(t, forA, 2)
	assert.Equal(t, 2, forA[0].Rating)
	assert.Equal(t, 5, forA[1].Rating)

	byReviewer, err := f.service.List(dto.ListReviewsParams{ReviewerID: f.customer.ID})
	require.NoError(t, err)
	assert.Len(t, byReviewer, 2)
}
