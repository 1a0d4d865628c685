package services

import (
	"gorm.io/gorm"

	"servio_backend/internal/repositories"
)

// ServiceContainer wires every service with its repositories over one shared
// database handle.
type ServiceContainer struct {
	Auth     AuthService
	Profile  ProfileService
	Offer    OfferService
	Order    OrderService
	Review   ReviewService
	BaseInfo BaseInfoService
}

func NewServiceContainer(db *gorm.DB) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	offerRepo := repositories.NewOfferRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)

	return &ServiceContainer{
		Auth:     NewAuthService(userRepo, profileRepo),
		Profile:  NewProfileService(profileRepo, userRepo),
		Offer:    NewOfferService(offerRepo, profileRepo),
		Order:    NewOrderService(orderRepo, offerRepo, profileRepo, userRepo),
		Review:   NewReviewService(reviewRepo, profileRepo, userRepo),
		BaseInfo: NewBaseInfoService(reviewRepo, profileRepo, offerRepo),
	}
}
