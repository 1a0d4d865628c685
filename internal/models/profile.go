package models

// ProfileType separates the two marketplace roles.
type ProfileType string

const (
	ProfileTypeBusiness ProfileType = "business"
	ProfileTypeCustomer ProfileType = "customer"
)

type Profile struct {
	BaseModel
	UserID       string      `gorm:"not null;uniqueIndex"`
	Type         ProfileType `gorm:"type:varchar(20);not null"`
	FirstName    string      `gorm:"default:''"`
	LastName     string      `gorm:"default:''"`
	Tel          string      `gorm:"default:''"`
	Location     string      `gorm:"default:''"`
	Description  string      `gorm:"default:''"`
	WorkingHours string      `gorm:"default:''"`
	File         string      `gorm:"default:''"`

	// Relations
	User User `gorm:"foreignKey:UserID"`
}
