package models

import "gorm.io/datatypes"

type OrderStatus string

const (
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is one of the three known states.
// Any of them may be set on a status patch; no transition table is enforced.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order freezes a copy of an OfferDetail at purchase time. The snapshot
// fields are never re-synced with the detail; only Status changes afterwards.
type Order struct {
	BaseModel
	CustomerUserID     string         `gorm:"not null;index"`
	BusinessUserID     string         `gorm:"not null;index"`
	OfferDetailID      string         `gorm:"not null;index"`
	Title              string         `gorm:"not null"`
	Price              float64        `gorm:"not null"`
	DeliveryTimeInDays int            `gorm:"not null"`
	Revisions          int            `gorm:"not null"`
	Features           datatypes.JSON `gorm:"type:jsonb"`
	OfferType          OfferType      `gorm:"type:varchar(10)"`
	Status             OrderStatus    `gorm:"type:varchar(20);default:'in_progress'"`

	// Relations
	CustomerUser User        `gorm:"foreignKey:CustomerUserID"`
	BusinessUser User        `gorm:"foreignKey:BusinessUserID"`
	OfferDetail  OfferDetail `gorm:"foreignKey:OfferDetailID;constraint:OnDelete:CASCADE"`
}
