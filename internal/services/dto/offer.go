package dto

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// OfferDetailRequest carries one tier of an incoming offer payload. Pointer
// fields distinguish "absent" from zero values so tier validation can report
// every missing field at once.
type OfferDetailRequest struct {
	ID                 *string  `json:"id"`
	Title              string   `json:"title"`
	Price              *float64 `json:"price"`
	DeliveryTimeInDays *int     `json:"delivery_time_in_days"`
	Revisions          *int     `json:"revisions"`
	Features           []string `json:"features"`
	OfferType          string   `json:"offer_type"`
}

type CreateOfferRequest struct {
	Title       string               `json:"title" validate:"required"`
	Image       *string              `json:"image"`
	Description string               `json:"description"`
	Details     []OfferDetailRequest `json:"details"`
}

// UpdateOfferRequest is a partial update. A nil Details leaves the tier set
// untouched; a present Details reconciles it.
type UpdateOfferRequest struct {
	Title       *string               `json:"title"`
	Image       *string               `json:"image"`
	Description *string               `json:"description"`
	Details     *[]OfferDetailRequest `json:"details"`
}

type OfferDetailResponse struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Price              float64  `json:"price"`
	DeliveryTimeInDays int      `json:"delivery_time_in_days"`
	Revisions          int      `json:"revisions"`
	Features           []string `json:"features"`
	OfferType          string   `json:"offer_type"`
}

// OfferDetailLink is the compact tier reference embedded in read views.
type OfferDetailLink struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// OfferCreateView is the response shape for create and update operations:
// full inline tiers, no aggregates, no creator block.
type OfferCreateView struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Image       *string               `json:"image"`
	Description string                `json:"description"`
	Details     []OfferDetailResponse `json:"details"`
}

type OfferUserDetails struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

// OfferReadView is the response shape for list and single fetch: tier links,
// price and delivery aggregates, creator summary.
type OfferReadView struct {
	ID              string            `json:"id"`
	User            string            `json:"user"`
	Title           string            `json:"title"`
	Image           *string           `json:"image"`
	Description     string            `json:"description"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	Details         []OfferDetailLink `json:"details"`
	MinPrice        *float64          `json:"min_price"`
	MinDeliveryTime *int              `json:"min_delivery_time"`
	UserDetails     OfferUserDetails  `json:"user_details"`
}

type OfferListResponse struct {
	Count    int64           `json:"count"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
	Results  []OfferReadView `json:"results"`
}

// ListOffersParams collects the query parameters of the offer list endpoint.
type ListOffersParams struct {
	CreatorID       string
	MinPrice        *float64
	MaxDeliveryTime *int
	Search          string
	Ordering        string
	Page            int
	PageSize        int
}

// FormatFeatures packs a feature list into the stored JSON column.
func FormatFeatures(features []string) datatypes.JSON {
	if features == nil {
		features = []string{}
	}
	raw, _ := json.Marshal(features)
	return datatypes.JSON(raw)
}

// ParseFeatures unpacks the stored JSON column back into a feature list.
func ParseFeatures(raw datatypes.JSON) []string {
	var features []string
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &features)
	}
	if features == nil {
		features = []string{}
	}
	return features
}
