package model

import "time"

// Role values for User.Role. The set is closed; guards reject anything else.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a dashboard account. Users are created only by the seeder;
// there is no public registration endpoint.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         string    `json:"role" gorm:"size:50;default:'user'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
