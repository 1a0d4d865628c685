package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servio_backend/internal/models"
	"servio_backend/internal/services/dto"
)

type orderFixture struct {
	service  OrderService
	orders   *fakeOrderRepo
	offers   *fakeOfferRepo
	profiles *fakeProfileRepo
	users    *fakeUserRepo

	business *models.User
	customer *models.User
	detailID string
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	orders := newFakeOrderRepo()
	offers := newFakeOfferRepo()
	offers.orders = orders.orders
	profiles := newFakeProfileRepo()
	users := newFakeUserRepo()

	f := &orderFixture{
		service:  NewOrderService(orders, offers, profiles, users),
		orders:   orders,
		offers:   offers,
		profiles: profiles,
		users:    users,
	}

	f.business = &models.User{Username: "anna", Email: "anna@example.com"}
	require.NoError(t, users.Create(f.business))
	require.NoError(t, profiles.Create(&models.Profile{UserID: f.business.ID, Type: models.ProfileTypeBusiness}))

	f.customer = &models.User{Username: "kunde", Email: "kunde@example.com"}
	require.NoError(t, users.Create(f.customer))
	require.NoError(t, profiles.Create(&models.Profile{UserID: f.customer.ID, Type: models.ProfileTypeCustomer}))

	offer := &models.Offer{
		UserID: f.business.ID,
		Title:  "Grafikdesign",
		Details: []models.OfferDetail{
			{
				Title:              "Basic Paket",
				Price:              50,
				DeliveryTimeInDays: 3,
				Revisions:          2,
				Features:           dto.FormatFeatures([]string{"Logo Design"}),
				OfferType:          models.OfferTypeBasic,
			},
		},
	}
	require.NoError(t, offers.Create(offer))
	f.detailID = offer.Details[0].ID
	return f
}

func TestCreateOrder_SnapshotsTierFields(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.service.Create(f.customer.ID, &dto.CreateOrderRequest{OfferDetailID: f.detailID})
	require.NoError(t, err)

	assert.Equal(t, f.customer.ID, order.CustomerUser)
	assert.Equal(t, f.business.ID, order.BusinessUser)
	assert.Equal(t, "Basic Paket", order.Title)
	assert.Equal(t, 50.0, order.Price)
	assert.Equal(t, 3, order.DeliveryTimeInDays)
	assert.Equal(t, []string{"Logo Design"}, order.Features)
	assert.Equal(t, "in_progress", order.Status)
}

func TestCreateOrder_ImmuneToLaterDetailEdits(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.service.Create(f.customer.ID, &dto.CreateOrderRequest{OfferDetailID: f.detailID})
	require.NoError(t, err)

	detail := f.offers.details[f.detailID]
	detail.Price = 999
	detail.Title = "Umbenannt"

	fetched, err := f.service.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 50.0, fetched.Price)
	assert.Equal(t, "Basic Paket", fetched.Title)
}

func TestCreateOrder_CallerOverridesWinOverSnapshot(t *testing.T) {
	f := newOrderFixture(t)

	title := "Eigener Titel"
	revisions := 10
	order, err := f.service.Create(f.customer.ID, &dto.CreateOrderRequest{
		OfferDetailID: f.detailID,
		Title:         &title,
		Revisions:     &revisions,
	})
	require.NoError(t, err)

	assert.Equal(t, "Eigener Titel", order.Title)
	assert.Equal(t, 10, order.Revisions)
	assert.Equal(t, 50.0, order.Price)
}

func TestCreateOrder_NonCustomerForbidden(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.service.Create(f.business.ID, &dto.CreateOrderRequest{OfferDetailID: f.detailID})
	appErr := requireAppError(t, err, http.StatusForbidden)
	assert.Contains(t, appErr.Messages, "Nur Kunden können Aufträge erteilen")
}

func TestCreateOrder_UnknownDetailNotFound(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.service.Create(f.customer.ID, &dto.CreateOrderRequest{OfferDetailID: "missing"})
	requireAppError(t, err, http.StatusNotFound)
}

func TestPatchOrderStatus_BusinessOrStaffOnly(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.service.Create(f.customer.ID, &dto.CreateOrderRequest{OfferDetailID: f.detailID})
	require.NoError(t, err)

	_, err = f.service.PatchStatus(f.customer.ID, false, order.ID, &dto.UpdateOrderStatusRequest{Status: "completed"})
	requireAppError(t, err, http.StatusForbidden)

	updated, err := f.service.PatchStatus(f.business.ID, false, order.ID, &dto.UpdateOrderStatusRequest{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, "completed", updated.Status)

	reverted, err := f.service.PatchStatus(f.customer.ID, true, order.ID, &dto.UpdateOrderStatusRequest{Status: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", reverted.Status)
}

func TestPatchOrderStatus_RejectsUnknownStatus(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.service.Create(f.customer.ID, &dto.CreateOrderRequest{OfferDetailID: f.detailID})
	require.NoError(t, err)

	_, err = f.service.PatchStatus(f.business.ID, false, order.ID, &dto.UpdateOrderStatusRequest{Status: "done"})
	requireAppError(t, err, http.StatusBadRequest)
}

func TestDeleteOrder_StaffOnly(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.service.Create(f.customer.ID, &dto.CreateOrderRequest{OfferDetailID: f.detailID})
	require.NoError(t, err)

	err = f.service.Delete(false, order.ID)
	requireAppError(t, err, http.StatusForbidden)

	require.NoError(t, f.service.Delete(true, order.ID))

	err = f.service.Delete(true, order.ID)
	requireAppError(t, err, http.StatusNotFound)
}

func TestListOrdersFor_BothSides(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.service.Create(f.customer.ID, &dto.CreateOrderRequest{OfferDetailID: f.detailID})
	require.NoError(t, err)

	asCustomer, err := f.service.ListFor(f.customer.ID)
	require.NoError(t, err)
	assert.Len(t, asCustomer, 1)

	asBusiness, err := f.service.ListFor(f.business.ID)
	require.NoError(t, err)
	assert.Len(t, asBusiness, 1)

	anonymous, err := f.service.ListFor("")
	require.NoError(t, err)
	assert.Empty(t, anonymous)
}

func TestOrderCounts(t *testing.T) {
	f := newOrderFixture(t)

	first, err := f.service.Create(f.customer.ID, &dto.CreateOrderRequest{OfferDetailID: f.detailID})
	require.NoError(t, err)
	_, err = f.service.Create(f.customer.ID, &dto.CreateOrderRequest{OfferDetailID: f.detailID})
	require.NoError(t, err)

	_, err = f.service.PatchStatus(f.business.ID, false, first.ID, &dto.UpdateOrderStatusRequest{Status: "completed"})
	require.NoError(t, err)

	inProgress, err := f.service.CountInProgress(f.business.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), inProgress.OrderCount)

	completed, err := f.service.CountCompleted(f.business.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), completed.CompletedOrderCount)
}

func TestOrderCounts_UnknownUserNotFound(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.service.CountInProgress("missing")
	appErr := requireAppError(t, err, http.StatusNotFound)
	assert.Contains(t, appErr.Messages, "Der angegebene Nutzer existiert nicht.")

	_, err = f.service.CountCompleted("missing")
	requireAppError(t, err, http.StatusNotFound)
}
