package models

import (
	"time"
)

// User roles
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

type User struct {
	ID       string  `json:"id" gorm:"primaryKey;size:191"`
	Name     string  `json:"name" gorm:"not null;size:255"`
	Email    string  `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password string  `json:"-" gorm:"size:255"`
	Avatar   *string `json:"avatar" gorm:"size:500"`
	Role     string  `json:"role" gorm:"size:20;default:'user'"`

	// Alternate credentials. GoogleID is set for OAuth accounts,
	// SessionToken carries a legacy opaque session identifier.
	GoogleID     *string `json:"-" gorm:"size:191;index"`
	SessionToken *string `json:"-" gorm:"size:191;index"`

	// Favorited motorcycle ids, embedded on the user document
	Favorites StringSlice `json:"favorites"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
