package repositories

import (
	"errors"

	"gorm.io/gorm"

	"servio_backend/internal/models"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewFilter struct {
	BusinessUserID string
	ReviewerID     string
}

type ReviewRepository interface {
	Create(review *models.Review) error
	FindByID(id string) (*models.Review, error)
	Exists(reviewerID, businessUserID string) (bool, error)
	List(filter ReviewFilter) ([]models.Review, error)
	Update(review *models.Review) error
	Delete(id string) error
	Count() (int64, error)
	AverageRating() (float64, error)
}

type ReviewRepositoryImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

func (r *ReviewRepositoryImpl) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *ReviewRepositoryImpl) FindByID(id string) (*models.Review, error) {
	var review models.Review
	err := r.db.First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) Exists(reviewerID, businessUserID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Review{}).
		Where("reviewer_id = ? AND business_user_id = ?", reviewerID, businessUserID).
		Count(&count).Error
	return count > 0, err
}

func (r *ReviewRepositoryImpl) List(filter ReviewFilter) ([]models.Review, error) {
	query := r.db.Model(&models.Review{})
	if filter.BusinessUserID != "" {
		query = query.Where("business_user_id = ?", filter.BusinessUserID)
	}
	if filter.ReviewerID != "" {
		query = query.Where("reviewer_id = ?", filter.ReviewerID)
	}

	var reviews []models.Review
	err := query.Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) Update(review *models.Review) error {
	result := r.db.Save(review)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Review{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Review{}).Count(&count).Error
	return count, err
}

func (r *ReviewRepositoryImpl) AverageRating() (float64, error) {
	var avg float64
	err := r.db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0)").Scan(&avg).Error
	return avg, err
}
