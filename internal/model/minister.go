package model

import "time"

// Minister represents an ordained or licensed worker assigned to a church.
type Minister struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	ChurchID      uint       `json:"church_id" gorm:"not null;index"`
	FirstName     string     `json:"first_name" gorm:"size:255;not null"`
	LastName      string     `json:"last_name" gorm:"size:255;not null"`
	MiddleName    *string    `json:"middle_name,omitempty" gorm:"size:255"`
	Suffix        *string    `json:"suffix,omitempty" gorm:"size:50"`
	Gender        string     `json:"gender" gorm:"size:20;not null"`
	Birthdate     *time.Time `json:"birthdate,omitempty"`
	Email         *string    `json:"email,omitempty" gorm:"size:255"`
	ContactNumber *string    `json:"contact_number,omitempty" gorm:"size:50"`
	Address       *string    `json:"address,omitempty" gorm:"size:500"`
	ImageURL      *string    `json:"image_url,omitempty" gorm:"size:1024"`
	Biography     *string    `json:"biography,omitempty" gorm:"type:text"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Church *Church `json:"church,omitempty" gorm:"foreignKey:ChurchID"`
}
