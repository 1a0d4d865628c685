package dto

import "time"

// CreateOrderRequest names the tier to order. The optional fields override
// the corresponding snapshot values; anything left unset is copied from the
// tier at creation time.
type CreateOrderRequest struct {
	OfferDetailID      string   `json:"offer_detail_id" validate:"required"`
	Title              *string  `json:"title"`
	Price              *float64 `json:"price"`
	DeliveryTimeInDays *int     `json:"delivery_time_in_days"`
	Revisions          *int     `json:"revisions"`
	Features           []string `json:"features"`
	OfferType          *string  `json:"offer_type"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type OrderResponse struct {
	ID                 string    `json:"id"`
	CustomerUser       string    `json:"customer_user"`
	BusinessUser       string    `json:"business_user"`
	Title              string    `json:"title"`
	Revisions          int       `json:"revisions"`
	DeliveryTimeInDays int       `json:"delivery_time_in_days"`
	Price              float64   `json:"price"`
	Features           []string  `json:"features"`
	OfferType          string    `json:"offer_type"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type OrderCountResponse struct {
	OrderCount int64 `json:"order_count"`
}

type CompletedOrderCountResponse struct {
	CompletedOrderCount int64 `json:"completed_order_count"`
}
