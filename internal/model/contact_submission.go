package model

import "time"

// ContactSubmission represents a public contact-form message. Submissions
// are write-once from the public site and managed from the dashboard.
type ContactSubmission struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"size:255;not null"`
	Email         string    `json:"email" gorm:"size:255;not null"`
	ContactNumber string    `json:"contactNumber" gorm:"size:50;not null"`
	Description   string    `json:"description" gorm:"type:text;not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName keeps the historical table name used by the public form.
func (ContactSubmission) TableName() string {
	return "contact_us"
}
