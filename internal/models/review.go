package models

// Review is a customer's rating of a business profile. At most one review
// per (reviewer, business) pair is allowed; the rule is checked on creation.
type Review struct {
	BaseModel
	ReviewerID     string `gorm:"not null;index"`
	BusinessUserID string `gorm:"not null;index"`
	Rating         int    `gorm:"not null"`
	Description    string `gorm:"type:text"`

	// Relations
	Reviewer     User `gorm:"foreignKey:ReviewerID"`
	BusinessUser User `gorm:"foreignKey:BusinessUserID"`
}
