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
	msgPasswordMismatch   = "Passwörter stimmt nicht überein."
	msgEmailTaken         = "Email existiert bereits."
	msgUsernameTaken      = "Benutzername existiert bereits."
	msgInvalidCredentials = "Benutzername oder Passwort ist falsch."
)

type AuthService interface {
	Register(req *dto.RegistrationRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewAuthService(userRepo repositories.UserRepository, profileRepo repositories.ProfileRepository) AuthService {
	return &AuthServiceImpl{userRepo: userRepo, profileRepo: profileRepo}
}

// Register creates a user with its role profile and returns a signed token.
func (s *AuthServiceImpl) Register(req *dto.RegistrationRequest) (*dto.AuthResponse, error) {
	if req.Password != req.RepeatedPassword {
		return nil, apperrors.ValidationError(msgPasswordMismatch)
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, apperrors.NewDuplicateError("auth", msgEmailTaken)
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}
	if _, err := s.userRepo.FindByUsername(req.Username); err == nil {
		return nil, apperrors.NewDuplicateError("auth", msgUsernameTaken)
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(user); err != nil {
		logger.Error("failed to create user", "username", req.Username, "error", err)
		return nil, apperrors.InternalError(err)
	}

	profile := &models.Profile{
		UserID: user.ID,
		Type:   models.ProfileType(req.Type),
	}
	if err := s.profileRepo.Create(profile); err != nil {
		logger.Error("failed to create profile", "user_id", user.ID, "error", err)
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(user.ID, user.IsStaff)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		UserID:   user.ID,
	}, nil
}

// Login checks the credentials and returns a signed token.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewBadRequestError(msgInvalidCredentials)
		}
		return nil, apperrors.InternalError(err)
	}
	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.NewBadRequestError(msgInvalidCredentials)
	}

	token, err := auth.GenerateToken(user.ID, user.IsStaff)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		UserID:   user.ID,
	}, nil
}
