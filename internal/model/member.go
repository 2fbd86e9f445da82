package model

import "time"

// Member represents a registered church member. QRIdentifier is a stable
// opaque value rendered on the member's QR card; it carries no PII.
type Member struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	ChurchID      uint       `json:"church_id" gorm:"not null;index"`
	FirstName     string     `json:"first_name" gorm:"size:255;not null"`
	LastName      string     `json:"last_name" gorm:"size:255;not null"`
	MiddleName    *string    `json:"middle_name,omitempty" gorm:"size:255"`
	Gender        string     `json:"gender" gorm:"size:20;not null"`
	Birthdate     *time.Time `json:"birthdate,omitempty"`
	Email         *string    `json:"email,omitempty" gorm:"size:255"`
	ContactNumber *string    `json:"contact_number,omitempty" gorm:"size:50"`
	Address       *string    `json:"address,omitempty" gorm:"size:500"`
	Occupation    *string    `json:"occupation,omitempty" gorm:"size:255"`
	ImageURL      *string    `json:"image_url,omitempty" gorm:"size:1024"`
	QRIdentifier  string     `json:"qr_identifier" gorm:"size:64;uniqueIndex"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Church *Church `json:"church,omitempty" gorm:"foreignKey:ChurchID"`
}
