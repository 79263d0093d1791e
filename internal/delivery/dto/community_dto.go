package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePostRequest struct {
	Content  string `json:"content" validate:"required,max=2000"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
}

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}

// Response DTOs

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	PostID     uuid.UUID `json:"post_id"`
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

type PostResponse struct {
	ID           uuid.UUID         `json:"id"`
	AuthorID     uuid.UUID         `json:"author_id"`
	AuthorName   string            `json:"author_name"`
	Content      string            `json:"content"`
	ImageURL     string            `json:"image_url,omitempty"`
	Likes        int               `json:"likes"`
	CommentCount int               `json:"comment_count"`
	Comments     []CommentResponse `json:"comments,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}

type PostListResponse struct {
	Posts []PostResponse `json:"posts"`
	Total int            `json:"total"`
}
