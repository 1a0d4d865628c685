package repositories

import (
	"errors"

	"gorm.io/gorm"

	"servio_backend/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	Create(profile *models.Profile) error
	FindByUserID(userID string) (*models.Profile, error)
	FindByType(profileType models.ProfileType) ([]models.Profile, error)
	CountByType(profileType models.ProfileType) (int64, error)
	Update(profile *models.Profile) error
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindByUserID(userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Preload("User").First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindByType(profileType models.ProfileType) ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.Preload("User").
		Where("type = ?", profileType).
		Order("created_at DESC").
		Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepositoryImpl) CountByType(profileType models.ProfileType) (int64, error) {
	var count int64
	err := r.db.Model(&models.Profile{}).Where("type = ?", profileType).Count(&count).Error
	return count, err
}

func (r *ProfileRepositoryImpl) Update(profile *models.Profile) error {
	result := r.db.Save(profile)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
