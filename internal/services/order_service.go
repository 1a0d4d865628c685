package services

import (
	"servio_backend/internal/auth"
	"servio_backend/internal/logger"
	"servio_backend/internal/models"
	"servio_backend/internal/pricing"
	"servio_backend/internal/repositories"
	"servio_backend/internal/services/dto"
	"servio_backend/pkg/apperrors"
)

const (
	msgCustomerRequired  = "Nur Kunden können Aufträge erteilen"
	msgOrderPatchDenied  = "Nur der Ersteller oder ein Admin kann diese Aufgabe bearbeiten."
	msgOrderDeleteDenied = "Nur der Anbieter oder ein Admin kann dieses löschen."
	msgOrderNotFound     = "Die angegebene Bestellung existiert nicht."
	msgUserNotFound      = "Der angegebene Nutzer existiert nicht."
	msgStatusInvalid     = "Der eingegebene Wert ist ungültig."
)

type OrderService interface {
	Create(actorID string, req *dto.CreateOrderRequest) (*dto.OrderResponse, error)
	Get(id string) (*dto.OrderResponse, error)
	ListFor(actorID string) ([]dto.OrderResponse, error)
	PatchStatus(actorID string, isStaff bool, id string, req *dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error)
	Delete(isStaff bool, id string) error
	CountInProgress(businessUserID string) (*dto.OrderCountResponse, error)
	CountCompleted(businessUserID string) (*dto.CompletedOrderCountResponse, error)
}

type OrderServiceImpl struct {
	orderRepo   repositories.OrderRepository
	offerRepo   repositories.OfferRepository
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
}

func NewOrderService(
	orderRepo repositories.OrderRepository,
	offerRepo repositories.OfferRepository,
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
) OrderService {
	return &OrderServiceImpl{
		orderRepo:   orderRepo,
		offerRepo:   offerRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// Create freezes a copy of the named tier into a new order. Snapshot fields
// come from the tier for everything the caller left unset; the business side
// is derived from the tier's parent offer and the customer side is always the
// caller, never the payload.
func (s *OrderServiceImpl) Create(actorID string, req *dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	profile, err := s.profileRepo.FindByUserID(actorID)
	if err != nil && !apperrors.Is(err, repositories.ErrProfileNotFound) {
		return nil, apperrors.InternalError(err)
	}
	if !auth.IsCustomer(profile) {
		return nil, apperrors.NewForbiddenError(msgCustomerRequired)
	}

	detail, err := s.offerRepo.FindDetailByID(req.OfferDetailID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOfferDetailNotFound) {
			return nil, apperrors.NewNotFoundError(msgDetailNotFound)
		}
		return nil, apperrors.InternalError(err)
	}
	offer, err := s.offerRepo.FindByID(detail.OfferID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOfferNotFound) {
			return nil, apperrors.NewNotFoundError(msgOfferNotFound)
		}
		return nil, apperrors.InternalError(err)
	}

	order := &models.Order{
		CustomerUserID:     actorID,
		BusinessUserID:     offer.UserID,
		OfferDetailID:      detail.ID,
		Title:              detail.Title,
		Price:              detail.Price,
		DeliveryTimeInDays: detail.DeliveryTimeInDays,
		Revisions:          detail.Revisions,
		Features:           detail.Features,
		OfferType:          detail.OfferType,
		Status:             models.OrderStatusInProgress,
	}
	if req.Title != nil {
		order.Title = *req.Title
	}
	if req.Price != nil {
		order.Price = pricing.Round2(*req.Price)
	}
	if req.DeliveryTimeInDays != nil {
		order.DeliveryTimeInDays = *req.DeliveryTimeInDays
	}
	if req.Revisions != nil {
		order.Revisions = *req.Revisions
	}
	if req.Features != nil {
		order.Features = dto.FormatFeatures(req.Features)
	}
	if req.OfferType != nil {
		order.OfferType = models.OfferType(*req.OfferType)
	}

	if err := s.orderRepo.Create(order); err != nil {
		logger.Error("failed to create order", "customer_user_id", actorID, "error", err)
		return nil, apperrors.InternalError(err)
	}
	resp := buildOrderResponse(order)
	return &resp, nil
}

func (s *OrderServiceImpl) Get(id string) (*dto.OrderResponse, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.NewNotFoundError(msgOrderNotFound)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := buildOrderResponse(order)
	return &resp, nil
}

// ListFor returns every order the user takes part in, on either side.
func (s *OrderServiceImpl) ListFor(actorID string) ([]dto.OrderResponse, error) {
	if actorID == "" {
		return []dto.OrderResponse{}, nil
	}
	orders, err := s.orderRepo.FindForUser(actorID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responses := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, buildOrderResponse(&orders[i]))
	}
	return responses, nil
}

// PatchStatus moves the order to a new status. Only the business side of the
// order or staff may do this; the snapshot fields stay untouched. No
// transition table is enforced, any of the three statuses may be set.
func (s *OrderServiceImpl) PatchStatus(actorID string, isStaff bool, id string, req *dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.NewNotFoundError(msgOrderNotFound)
		}
		return nil, apperrors.InternalError(err)
	}
	if order.BusinessUserID != actorID && !isStaff {
		return nil, apperrors.NewForbiddenError(msgOrderPatchDenied)
	}
	if !models.ValidOrderStatus(models.OrderStatus(req.Status)) {
		return nil, apperrors.ValidationError(msgStatusInvalid)
	}

	order.Status = models.OrderStatus(req.Status)
	if err := s.orderRepo.Update(order); err != nil {
		logger.Error("failed to update order status", "order_id", id, "error", err)
		return nil, apperrors.InternalError(err)
	}
	resp := buildOrderResponse(order)
	return &resp, nil
}

// Delete is restricted to staff.
func (s *OrderServiceImpl) Delete(isStaff bool, id string) error {
	if !isStaff {
		return apperrors.NewForbiddenError(msgOrderDeleteDenied)
	}
	if err := s.orderRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrOrderNotFound) {
			return apperrors.NewNotFoundError(msgOrderNotFound)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *OrderServiceImpl) CountInProgress(businessUserID string) (*dto.OrderCountResponse, error) {
	if err := s.requireUser(businessUserID); err != nil {
		return nil, err
	}
	count, err := s.orderRepo.CountByBusinessAndStatus(businessUserID, models.OrderStatusInProgress)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.OrderCountResponse{OrderCount: count}, nil
}

func (s *OrderServiceImpl) CountCompleted(businessUserID string) (*dto.CompletedOrderCountResponse, error) {
	if err := s.requireUser(businessUserID); err != nil {
		return nil, err
	}
	count, err := s.orderRepo.CountByBusinessAndStatus(businessUserID, models.OrderStatusCompleted)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.CompletedOrderCountResponse{CompletedOrderCount: count}, nil
}

func (s *OrderServiceImpl) requireUser(id string) error {
	exists, err := s.userRepo.Exists(id)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !exists {
		return apperrors.NewNotFoundError(msgUserNotFound)
	}
	return nil
}

func buildOrderResponse(order *models.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:                 order.ID,
		CustomerUser:       order.CustomerUserID,
		BusinessUser:       order.BusinessUserID,
		Title:              order.Title,
		Revisions:          order.Revisions,
		DeliveryTimeInDays: order.DeliveryTimeInDays,
		Price:              order.Price,
		Features:           dto.ParseFeatures(order.Features),
		OfferType:          string(order.OfferType),
		Status:             string(order.Status),
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
	}
}
