package services

import (
	"servio_backend/internal/auth"
	"servio_backend/internal/logger"
	"servio_backend/internal/models"
	"servio_backend/internal/repositories"
	"servio_backend/internal/services/dto"
	"servio_backend/pkg/apperrors"
)

const (
	msgProfileNotFound    = "Das angegebene Profil existiert nicht."
	msgProfilePatchDenied = "Nur der Besitzer oder ein Admin kann dieses Profil bearbeiten."
)

type ProfileService interface {
	Get(userID string) (*dto.ProfileResponse, error)
	Update(actorID string, isStaff bool, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	ListBusiness() ([]dto.ProfileResponse, error)
	ListCustomer() ([]dto.ProfileResponse, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository, userRepo repositories.UserRepository) ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo, userRepo: userRepo}
}

func (s *ProfileServiceImpl) Get(userID string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError(msgProfileNotFound)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := buildProfileResponse(profile)
	return &resp, nil
}

// Update patches the profile fields named in the request. Only the owner or
// staff may patch; an email change is written through to the user record.
func (s *ProfileServiceImpl) Update(actorID string, isStaff bool, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if !auth.IsOwnerOrAdmin(actorID, userID, isStaff) {
		return nil, apperrors.NewForbiddenError(msgProfilePatchDenied)
	}

	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError(msgProfileNotFound)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.FirstName != nil {
		profile.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		profile.LastName = *req.LastName
	}
	if req.Tel != nil {
		profile.Tel = *req.Tel
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.Description != nil {
		profile.Description = *req.Description
	}
	if req.WorkingHours != nil {
		profile.WorkingHours = *req.WorkingHours
	}
	if req.File != nil {
		profile.File = *req.File
	}

	if err := s.profileRepo.Update(profile); err != nil {
		logger.Error("failed to update profile", "user_id", userID, "error", err)
		return nil, apperrors.InternalError(err)
	}

	if req.Email != nil && *req.Email != profile.User.Email {
		if _, ferr := s.userRepo.FindByEmail(*req.Email); ferr == nil {
			return nil, apperrors.NewDuplicateError("auth", msgEmailTaken)
		} else if !apperrors.Is(ferr, repositories.ErrUserNotFound) {
			return nil, apperrors.InternalError(ferr)
		}
		profile.User.Email = *req.Email
		if err := s.userRepo.Update(&profile.User); err != nil {
			logger.Error("failed to update user email", "user_id", userID, "error", err)
			return nil, apperrors.InternalError(err)
		}
	}

	resp := buildProfileResponse(profile)
	return &resp, nil
}

func (s *ProfileServiceImpl) ListBusiness() ([]dto.ProfileResponse, error) {
	return s.listByType(models.ProfileTypeBusiness)
}

func (s *ProfileServiceImpl) ListCustomer() ([]dto.ProfileResponse, error) {
	return s.listByType(models.ProfileTypeCustomer)
}

func (s *ProfileServiceImpl) listByType(profileType models.ProfileType) ([]dto.ProfileResponse, error) {
	profiles, err := s.profileRepo.FindByType(profileType)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responses := make([]dto.ProfileResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, buildProfileResponse(&profiles[i]))
	}
	return responses, nil
}

func buildProfileResponse(profile *models.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{
		User:         profile.UserID,
		Username:     profile.User.Username,
		FirstName:    profile.FirstName,
		LastName:     profile.LastName,
		Email:        profile.User.Email,
		Type:         string(profile.Type),
		Tel:          profile.Tel,
		Location:     profile.Location,
		Description:  profile.Description,
		WorkingHours: profile.WorkingHours,
		File:         profile.File,
		CreatedAt:    profile.CreatedAt,
	}
}
