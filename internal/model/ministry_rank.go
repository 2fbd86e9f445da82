package model

import "time"

// MinistryRank represents a rank in the ministry hierarchy (e.g. Bishop,
// Pastor, Deacon).
type MinistryRank struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
