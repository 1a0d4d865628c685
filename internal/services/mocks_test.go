package services

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"servio_backend/internal/models"
	"servio_backend/internal/repositories"
)

// In-memory repository fakes mirroring the sentinel-error contracts of the
// real implementations.

var (
	_ repositories.UserRepository    = (*fakeUserRepo)(nil)
	_ repositories.ProfileRepository = (*fakeProfileRepo)(nil)
	_ repositories.OfferRepository   = (*fakeOfferRepo)(nil)
	_ repositories.OrderRepository   = (*fakeOrderRepo)(nil)
	_ repositories.ReviewRepository  = (*fakeReviewRepo)(nil)
)

func stamp(m *models.BaseModel) {
	now := time.Now()
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	stamp(&user.BaseModel)
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByUsername(username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Exists(id string) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	user.UpdatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

type fakeProfileRepo struct {
	profiles map[string]*models.Profile // keyed by user id
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*models.Profile)}
}

func (r *fakeProfileRepo) Create(profile *models.Profile) error {
	stamp(&profile.BaseModel)
	r.profiles[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) FindByUserID(userID string) (*models.Profile, error) {
	if profile, ok := r.profiles[userID]; ok {
		return profile, nil
	}
	return nil, repositories.ErrProfileNotFound
}

func (r *fakeProfileRepo) FindByType(profileType models.ProfileType) ([]models.Profile, error) {
	var result []models.Profile
	for _, profile := range r.profiles {
		if profile.Type == profileType {
			result = append(result, *profile)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeProfileRepo) CountByType(profileType models.ProfileType) (int64, error) {
	var count int64
	for _, profile := range r.profiles {
		if profile.Type == profileType {
			count++
		}
	}
	return count, nil
}

func (r *fakeProfileRepo) Update(profile *models.Profile) error {
	if _, ok := r.profiles[profile.UserID]; !ok {
		return repositories.ErrProfileNotFound
	}
	profile.UpdatedAt = time.Now()
	r.profiles[profile.UserID] = profile
	return nil
}

type fakeOfferRepo struct {
	offers  map[string]*models.Offer
	details map[string]*models.OfferDetail
	orders  map[string]*models.Order // shared with fakeOrderRepo when wired
}

func newFakeOfferRepo() *fakeOfferRepo {
	return &fakeOfferRepo{
		offers:  make(map[string]*models.Offer),
		details: make(map[string]*models.OfferDetail),
	}
}

func (r *fakeOfferRepo) Create(offer *models.Offer) error {
	stamp(&offer.BaseModel)
	for i := range offer.Details {
		detail := &offer.Details[i]
		stamp(&detail.BaseModel)
		detail.OfferID = offer.ID
		r.details[detail.ID] = detail
	}
	r.offers[offer.ID] = offer
	return nil
}

func (r *fakeOfferRepo) FindByID(id string) (*models.Offer, error) {
	offer, ok := r.offers[id]
	if !ok {
		return nil, repositories.ErrOfferNotFound
	}
	copied := *offer
	copied.Details = nil
	for _, detail := range r.details {
		if detail.OfferID == id {
			copied.Details = append(copied.Details, *detail)
		}
	}
	sort.Slice(copied.Details, func(i, j int) bool {
		return copied.Details[i].OfferType < copied.Details[j].OfferType
	})
	return &copied, nil
}

func (r *fakeOfferRepo) FindDetailByID(id string) (*models.OfferDetail, error) {
	if detail, ok := r.details[id]; ok {
		copied := *detail
		return &copied, nil
	}
	return nil, repositories.ErrOfferDetailNotFound
}

func (r *fakeOfferRepo) List(filter repositories.OfferFilter) ([]models.Offer, error) {
	var result []models.Offer
	for id, offer := range r.offers {
		if filter.CreatorID != "" && offer.UserID != filter.CreatorID {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(offer.Title), needle) &&
				!strings.Contains(strings.ToLower(offer.Description), needle) {
				continue
			}
		}
		loaded, _ := r.FindByID(id)
		if filter.MaxDeliveryTime != nil {
			match := false
			for _, detail := range loaded.Details {
				if detail.DeliveryTimeInDays <= *filter.MaxDeliveryTime {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		result = append(result, *loaded)
	}
	return result, nil
}

func (r *fakeOfferRepo) Update(offer *models.Offer, rec *repositories.DetailReconciliation) error {
	if _, ok := r.offers[offer.ID]; !ok {
		return repositories.ErrOfferNotFound
	}
	offer.UpdatedAt = time.Now()
	stored := *offer
	stored.Details = nil
	r.offers[offer.ID] = &stored
	if rec == nil {
		return nil
	}
	for i := range rec.Update {
		detail := rec.Update[i]
		detail.UpdatedAt = time.Now()
		r.details[detail.ID] = &detail
	}
	for i := range rec.Create {
		detail := rec.Create[i]
		stamp(&detail.BaseModel)
		detail.OfferID = offer.ID
		r.details[detail.ID] = &detail
	}
	for _, id := range rec.DeleteIDs {
		r.dropOrdersForDetail(id)
		delete(r.details, id)
	}
	return nil
}

func (r *fakeOfferRepo) Delete(id string) error {
	if _, ok := r.offers[id]; !ok {
		return repositories.ErrOfferNotFound
	}
	delete(r.offers, id)
	for detailID, detail := range r.details {
		if detail.OfferID == id {
			r.dropOrdersForDetail(detailID)
			delete(r.details, detailID)
		}
	}
	return nil
}

func (r *fakeOfferRepo) dropOrdersForDetail(detailID string) {
	for orderID, order := range r.orders {
		if order.OfferDetailID == detailID {
			delete(r.orders, orderID)
		}
	}
}

func (r *fakeOfferRepo) Count() (int64, error) {
	return int64(len(r.offers)), nil
}

type fakeOrderRepo struct {
	orders map[string]*models.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*models.Order)}
}

func (r *fakeOrderRepo) Create(order *models.Order) error {
	stamp(&order.BaseModel)
	copied := *order
	r.orders[order.ID] = &copied
	return nil
}

func (r *fakeOrderRepo) FindByID(id string) (*models.Order, error) {
	if order, ok := r.orders[id]; ok {
		copied := *order
		return &copied, nil
	}
	return nil, repositories.ErrOrderNotFound
}

func (r *fakeOrderRepo) FindForUser(userID string) ([]models.Order, error) {
	var result []models.Order
	for _, order := range r.orders {
		if order.CustomerUserID == userID || order.BusinessUserID == userID {
			result = append(result, *order)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeOrderRepo) Update(order *models.Order) error {
	if _, ok := r.orders[order.ID]; !ok {
		return repositories.ErrOrderNotFound
	}
	order.UpdatedAt = time.Now()
	copied := *order
	r.orders[order.ID] = &copied
	return nil
}

func (r *fakeOrderRepo) Delete(id string) error {
	if _, ok := r.orders[id]; !ok {
		return repositories.ErrOrderNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) CountByBusinessAndStatus(businessUserID string, status models.OrderStatus) (int64, error) {
	var count int64
	for _, order := range r.orders {
		if order.BusinessUserID == businessUserID && order.Status == status {
			count++
		}
	}
	return count, nil
}

type fakeReviewRepo struct {
	reviews map[string]*models.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*models.Review)}
}

func (r *fakeReviewRepo) Create(review *models.Review) error {
	stamp(&review.BaseModel)
	copied := *review
	r.reviews[review.ID] = &copied
	return nil
}

func (r *fakeReviewRepo) FindByID(id string) (*models.Review, error) {
	if review, ok := r.reviews[id]; ok {
		copied := *review
		return &copied, nil
	}
	return nil, repositories.ErrReviewNotFound
}

func (r *fakeReviewRepo) Exists(reviewerID, businessUserID string) (bool, error) {
	for _, review := range r.reviews {
		if review.ReviewerID == reviewerID && review.BusinessUserID == businessUserID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReviewRepo) List(filter repositories.ReviewFilter) ([]models.Review, error) {
	var result []models.Review
	for _, review := range r.reviews {
		if filter.BusinessUserID != "" && review.BusinessUserID != filter.BusinessUserID {
			continue
		}
		if filter.ReviewerID != "" && review.ReviewerID != filter.ReviewerID {
			continue
		}
		result = append(result, *review)
	}
	return result, nil
}

func (r *fakeReviewRepo) Update(review *models.Review) error {
	if _, ok := r.reviews[review.ID]; !ok {
		return repositories.ErrReviewNotFound
	}
	review.UpdatedAt = time.Now()
	copied := *review
	r.reviews[review.ID] = &copied
	return nil
}

func (r *fakeReviewRepo) Delete(id string) error {
	if _, ok := r.reviews[id]; !ok {
		return repositories.ErrReviewNotFound
	}
	delete(r.reviews, id)
	return nil
}

func (r *fakeReviewRepo) Count() (int64, error) {
	return int64(len(r.reviews)), nil
}

func (r *fakeReviewRepo) AverageRating() (float64, error) {
	if len(r.reviews) == 0 {
		return 0, nil
	}
	var sum int
	for _, review := range r.reviews {
		sum += review.Rating
	}
	return float64(sum) / float64(len(r.reviews)), nil
}
