package repositories

import (
	"errors"

	"gorm.io/gorm"

	"servio_backend/internal/models"
)

var (
	ErrOfferNotFound       = errors.New("offer not found")
	ErrOfferDetailNotFound = errors.New("offer detail not found")
)

// OfferFilter holds the SQL-level listing filters. The aggregated min_price
// filter is applied in the service after the tier prices are loaded.
type OfferFilter struct {
	CreatorID       string
	MaxDeliveryTime *int
	Search          string
}

// DetailReconciliation describes the outcome of matching an incoming details
// array against the stored tier set: update by id, create the rest, delete
// everything not referenced.
type DetailReconciliation struct {
	Update    []models.OfferDetail
	Create    []models.OfferDetail
	DeleteIDs []string
}

type OfferRepository interface {
	Create(offer *models.Offer) error
	FindByID(id string) (*models.Offer, error)
	FindDetailByID(id string) (*models.OfferDetail, error)
	List(filter OfferFilter) ([]models.Offer, error)
	Update(offer *models.Offer, rec *DetailReconciliation) error
	Delete(id string) error
	Count() (int64, error)
}

type OfferRepositoryImpl struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) OfferRepository {
	return &OfferRepositoryImpl{db: db}
}

// Create stores the offer together with its details in one insert batch.
func (r *OfferRepositoryImpl) Create(offer *models.Offer) error {
	return r.db.Create(offer).Error
}

func (r *OfferRepositoryImpl) FindByID(id string) (*models.Offer, error) {
	var offer models.Offer
	err := r.db.Preload("Details").Preload("User.Profile").
		First(&offer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	return &offer, nil
}

func (r *OfferRepositoryImpl) FindDetailByID(id string) (*models.OfferDetail, error) {
	var detail models.OfferDetail
	err := r.db.First(&detail, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferDetailNotFound
		}
		return nil, err
	}
	return &detail, nil
}

func (r *OfferRepositoryImpl) List(filter OfferFilter) ([]models.Offer, error) {
	query := r.db.Preload("Details").Preload("User.Profile")

	if filter.CreatorID != "" {
		query = query.Where("user_id = ?", filter.CreatorID)
	}
	if filter.MaxDeliveryTime != nil {
		query = query.Where(
			"EXISTS (SELECT 1 FROM offer_details d WHERE d.offer_id = offers.id AND d.delivery_time_in_days <= ?)",
			*filter.MaxDeliveryTime,
		)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}

	var offers []models.Offer
	err := query.Find(&offers).Error
	return offers, err
}

// Update persists the top-level fields and reconciles the tier set in one
// transaction so a crash cannot leave an offer with a partial detail set.
func (r *OfferRepositoryImpl) Update(offer *models.Offer, rec *DetailReconciliation) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Details are written only through the reconciliation below, never as
		// a side effect of saving the parent row.
		if err := tx.Omit("Details").Save(offer).Error; err != nil {
			return err
		}
		if rec == nil {
			return nil
		}

		for i := range rec.Update {
			if err := tx.Save(&rec.Update[i]).Error; err != nil {
				return err
			}
		}
		for i := range rec.Create {
			if err := tx.Create(&rec.Create[i]).Error; err != nil {
				return err
			}
		}
		if len(rec.DeleteIDs) > 0 {
			// Orders snapshot a tier; removing the tier removes them too.
			if err := tx.Where("offer_detail_id IN ?", rec.DeleteIDs).
				Delete(&models.Order{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", rec.DeleteIDs).
				Delete(&models.OfferDetail{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the offer, all of its details, and every order that
// snapshots one of them.
func (r *OfferRepositoryImpl) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(
			"offer_detail_id IN (SELECT id FROM offer_details WHERE offer_id = ?)", id,
		).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		if err := tx.Where("offer_id = ?", id).Delete(&models.OfferDetail{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.Offer{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrOfferNotFound
		}
		return nil
	})
}

func (r *OfferRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Offer{}).Count(&count).Error
	return count, err
}
