package models

import (
	"time"
)

// Comment is threaded text on a motorcycle. ParentID is nil for root
// comments. RepliesCount and LikesCount are maintained by
// increment/decrement on create/delete/like.
type Comment struct {
	ID           string    `json:"id" gorm:"primaryKey;size:191"`
	MotorcycleID string    `json:"motorcycle_id" gorm:"not null;size:191;index"`
	UserID       string    `json:"user_id" gorm:"not null;size:191"`
	ParentID     *string   `json:"parent_id" gorm:"size:191;index"`
	Body         string    `json:"body" gorm:"type:text;not null"`
	LikesCount   int       `json:"likes_count" gorm:"default:0"`
	RepliesCount int       `json:"replies_count" gorm:"default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	User User `json:"user" gorm:"foreignKey:UserID"`
}

// CommentNode is a comment with its nested replies, returned by the
// threaded comment listing
type CommentNode struct {
	Comment
	Replies []*CommentNode `json:"replies"`
}
