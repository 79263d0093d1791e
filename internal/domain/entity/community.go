package entity

import (
	"time"

	"github.com/google/uuid"
)

// CommunityPost is an entry in the community feed
type CommunityPost struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"author_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	ImageURL  string    `gorm:"type:text" json:"image_url,omitempty"`
	Likes     int       `gorm:"not null;default:0" json:"likes"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Author   User          `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Comments []PostComment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
}

func (CommunityPost) TableName() string {
	return "community_posts"
}

// PostComment is a comment on a community post
type PostComment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;index" json:"post_id"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"author_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Author User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (PostComment) TableName() string {
	return "post_comments"
}
