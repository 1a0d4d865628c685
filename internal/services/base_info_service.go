package services

import (
	"math"

	"servio_backend/internal/models"
	"servio_backend/internal/repositories"
	"servio_backend/internal/services/dto"
	"servio_backend/pkg/apperrors"
)

type BaseInfoService interface {
	Get() (*dto.BaseInfoResponse, error)
}

type BaseInfoServiceImpl struct {
	reviewRepo  repositories.ReviewRepository
	profileRepo repositories.ProfileRepository
	offerRepo   repositories.OfferRepository
}

func NewBaseInfoService(
	reviewRepo repositories.ReviewRepository,
	profileRepo repositories.ProfileRepository,
	offerRepo repositories.OfferRepository,
) BaseInfoService {
	return &BaseInfoServiceImpl{
		reviewRepo:  reviewRepo,
		profileRepo: profileRepo,
		offerRepo:   offerRepo,
	}
}

// Get returns the platform statistics. The average rating is rounded to one
// fractional digit and reported as 0 when there are no reviews.
func (s *BaseInfoServiceImpl) Get() (*dto.BaseInfoResponse, error) {
	reviewCount, err := s.reviewRepo.Count()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	avgRating, err := s.reviewRepo.AverageRating()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	businessCount, err := s.profileRepo.CountByType(models.ProfileTypeBusiness)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	offerCount, err := s.offerRepo.Count()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.BaseInfoResponse{
		ReviewCount:          reviewCount,
		AverageRating:        math.Round(avgRating*10) / 10,
		BusinessProfileCount: businessCount,
		OfferCount:           offerCount,
	}, nil
}
