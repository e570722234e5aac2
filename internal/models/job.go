package models

type Job struct {
	BaseModel
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Salary      string    `gorm:"size:100" json:"salary,omitempty"`
	Location    string    `gorm:"size:200" json:"location,omitempty"`
	Category    string    `gorm:"size:100" json:"category,omitempty"`
	Company     string    `gorm:"size:200" json:"company"`
	PostedBy    string    `gorm:"type:uuid;index;not null" json:"posted_by"`
	Status      JobStatus `gorm:"size:20;default:'Open'" json:"status"`

	// Relations
	Employer     *User         `gorm:"foreignKey:PostedBy" json:"-"`
	Applications []Application `gorm:"foreignKey:JobID" json:"-"`
}
