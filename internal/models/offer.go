package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"servio_backend/internal/pricing"
)

// OfferType names one of the three purchasable tiers of an offer.
type OfferType string

const (
	OfferTypeBasic    OfferType = "basic"
	OfferTypeStandard OfferType = "standard"
	OfferTypePremium  OfferType = "premium"
)

// OfferTypes lists the tiers every offer must carry at creation time.
var OfferTypes = []OfferType{OfferTypeBasic, OfferTypeStandard, OfferTypePremium}

type Offer struct {
	BaseModel
	UserID      string  `gorm:"not null;index"`
	Title       string  `gorm:"not null"`
	Description string  `gorm:"type:text"`
	Image       *string

	// Relations
	User    User          `gorm:"foreignKey:UserID"`
	Details []OfferDetail `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE"`
}

type OfferDetail struct {
	BaseModel
	OfferID            string         `gorm:"not null;index"`
	Title              string         `gorm:"not null"`
	Price              float64        `gorm:"not null;default:1"`
	DeliveryTimeInDays int            `gorm:"not null;default:1"`
	Revisions          int            `gorm:"not null;default:-1"`
	Features           datatypes.JSON `gorm:"type:jsonb"`
	OfferType          OfferType      `gorm:"type:varchar(10);not null"`
}

// BeforeSave keeps stored prices at two fractional digits.
func (d *OfferDetail) BeforeSave(tx *gorm.DB) error {
	d.Price = pricing.Round2(d.Price)
	return nil
}
