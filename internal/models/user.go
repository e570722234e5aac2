package models

type User struct {
	BaseModel
	Username     string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email        string `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:200;not null" json:"-"`
	IsEmployer   bool   `gorm:"default:false" json:"is_employer"`
	IsAdmin      bool   `gorm:"default:false" json:"is_admin"`
	IsApproved   bool   `gorm:"default:false" json:"is_approved"`
	Company      string `gorm:"size:200" json:"company,omitempty"`

	// Relations
	Jobs         []Job         `gorm:"foreignKey:PostedBy" json:"-"`
	Applications []Application `gorm:"foreignKey:UserID" json:"-"`
}
