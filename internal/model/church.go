package model

import "time"

// Church represents a local congregation. Geo coordinates and the image are
// optional; the image field stores only a storage key or URL, never bytes.
type Church struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"size:255;not null;index"`
	Abbreviation  *string   `json:"abbreviation,omitempty" gorm:"size:50"`
	Description   *string   `json:"description,omitempty" gorm:"type:text"`
	Address       *string   `json:"address,omitempty" gorm:"size:500"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	Email         *string   `json:"email,omitempty" gorm:"size:255"`
	ContactNumber *string   `json:"contact_number,omitempty" gorm:"size:50"`
	ImageURL      *string   `json:"image_url,omitempty" gorm:"size:1024"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
