package model

import "time"

// ChurchCoverPhoto represents a hero image rotated on the public landing
// page. CoverImage holds the storage key or URL only.
type ChurchCoverPhoto struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	CoverImage  string    `json:"cover_image" gorm:"size:1024;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
