package model

import "time"

// ChurchEvent represents a scheduled gathering shown on the public site.
type ChurchEvent struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	Place       string    `json:"place" gorm:"size:500;not null"`
	Datetime    time.Time `json:"datetime" gorm:"not null;index"`
	ImageURL    *string   `json:"image_url,omitempty" gorm:"size:1024"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
