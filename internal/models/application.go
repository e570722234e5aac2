package models

import "time"

type Application struct {
	BaseModel
	UserID string `gorm:"type:uuid;not null;uniqueIndex:idx_applicant_job" json:"user_id"`
	JobID  string `gorm:"type:uuid;not null;uniqueIndex:idx_applicant_job" json:"job_id"`
	// Resume holds the sanitized filename key into the blob store, never a path.
	Resume    string            `gorm:"size:200;not null" json:"resume"`
	Status    ApplicationStatus `gorm:"size:20;default:'Under Review'" json:"status"`
	AppliedOn time.Time         `gorm:"autoCreateTime" json:"applied_on"`

	// Relations
	Applicant *User `gorm:"foreignKey:UserID" json:"applicant,omitempty"`
	Job       *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
}
