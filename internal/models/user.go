package models

type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	IsStaff      bool   `gorm:"default:false"`

	// Relations
	Profile *Profile `gorm:"foreignKey:UserID"`
}
