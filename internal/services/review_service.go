package services

import (
	"servio_backend/internal/auth"
	"servio_backend/internal/logger"
	"servio_backend/internal/models"
	"servio_backend/internal/ordering"
	"servio_backend/internal/repositories"
	"servio_backend/internal/services/dto"
	"servio_backend/pkg/apperrors"
)

const (
	msgReviewCustomerOnly = "Nur Kunden haben Zugriff auf diese Funktion."
	msgReviewDuplicate    = "Du kannst nur eine Bewertung pro Geschäftsprofil abgeben."
	msgReviewMutateDenied = "Nur der Verfasser oder ein Admin kann diese Bewertung bearbeiten."
	msgReviewDeleteDenied = "Nur der Verfasser oder ein Admin kann diese Bewertung entfernen."
	msgReviewNotFound     = "Die angegebene Bewertung existiert nicht."
)

type ReviewService interface {
	Create(actorID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	Get(id string) (*dto.ReviewResponse, error)
	List(params dto.ListReviewsParams) ([]dto.ReviewResponse, error)
	Update(actorID string, isStaff bool, id string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	Delete(actorID string, isStaff bool, id string) error
}

type ReviewServiceImpl struct {
	reviewRepo  repositories.ReviewRepository
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
) ReviewService {
	return &ReviewServiceImpl{
		reviewRepo:  reviewRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// Create stores a review. Customers only, one review per reviewer and
// business pair. The reviewer identity always comes from the caller.
// The existence check and the insert are two steps; two simultaneous
// creations can both pass the check.
func (s *ReviewServiceImpl) Create(actorID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	profile, err := s.profileRepo.FindByUserID(actorID)
	if err != nil && !apperrors.Is(err, repositories.ErrProfileNotFound) {
		return nil, apperrors.InternalError(err)
	}
	if !auth.IsCustomer(profile) {
		return nil, apperrors.NewForbiddenError(msgReviewCustomerOnly)
	}

	exists, err := s.userRepo.Exists(req.BusinessUserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !exists {
		return nil, apperrors.NewNotFoundError(msgUserNotFound)
	}

	taken, err := s.reviewRepo.Exists(actorID, req.BusinessUserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if taken {
		return nil, apperrors.NewDuplicateError("reviews", msgReviewDuplicate)
	}

	review := &models.Review{
		ReviewerID:     actorID,
		BusinessUserID: req.BusinessUserID,
		Rating:         req.Rating,
		Description:    req.Description,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		logger.Error("failed to create review", "reviewer_id", actorID, "error", err)
		return nil, apperrors.InternalError(err)
	}
	resp := buildReviewResponse(review)
	return &resp, nil
}

func (s *ReviewServiceImpl) Get(id string) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return nil, apperrors.NewNotFoundError(msgReviewNotFound)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := buildReviewResponse(review)
	return &resp, nil
}

// List filters by business user or reviewer and applies the requested
// ordering, newest first by default. Open to unauthenticated callers.
func (s *ReviewServiceImpl) List(params dto.ListReviewsParams) ([]dto.ReviewResponse, error) {
	reviews, err := s.reviewRepo.List(repositories.ReviewFilter{
		BusinessUserID: params.BusinessUserID,
		ReviewerID:     params.ReviewerID,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	reviews = ordering.Reviews(reviews, params.Ordering)

	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, buildReviewResponse(&reviews[i]))
	}
	return responses, nil
}

// Update patches rating and description. The one-per-business invariant is
// not re-checked here; it only guards creation.
func (s *ReviewServiceImpl) Update(actorID string, isStaff bool, id string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return nil, apperrors.NewNotFoundError(msgReviewNotFound)
		}
		return nil, apperrors.InternalError(err)
	}
	if !auth.IsOwnerOrAdmin(actorID, review.ReviewerID, isStaff) {
		return nil, apperrors.NewForbiddenError(msgReviewMutateDenied)
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Description != nil {
		review.Description = *req.Description
	}

	if err := s.reviewRepo.Update(review); err != nil {
		logger.Error("failed to update review", "review_id", id, "error", err)
		return nil, apperrors.InternalError(err)
	}
	resp := buildReviewResponse(review)
	return &resp, nil
}

func (s *ReviewServiceImpl) Delete(actorID string, isStaff bool, id string) error {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return apperrors.NewNotFoundError(msgReviewNotFound)
		}
		return apperrors.InternalError(err)
	}
	if !auth.IsOwnerOrAdmin(actorID, review.ReviewerID, isStaff) {
		return apperrors.NewForbiddenError(msgReviewDeleteDenied)
	}

	if err := s.reviewRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return apperrors.NewNotFoundError(msgReviewNotFound)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func buildReviewResponse(review *models.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:           review.ID,
		BusinessUser: review.BusinessUserID,
		Reviewer:     review.ReviewerID,
		Rating:       review.Rating,
		Description:  review.Description,
		CreatedAt:    review.CreatedAt,
		UpdatedAt:    review.UpdatedAt,
	}
}
