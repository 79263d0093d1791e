package repository

import (
	"vetclinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommunityRepository interface {
	CreatePost(db *gorm.DB, post *entity.CommunityPost) error
	FindPosts(db *gorm.DB, limit, offset int) ([]entity.CommunityPost, int64, error)
	FindPostByID(db *gorm.DB, id uuid.UUID) (*entity.CommunityPost, error)
	DeletePost(db *gorm.DB, id uuid.UUID) error
	IncrementLikes(db *gorm.DB, id uuid.UUID) (int64, error)
	CreateComment(db *gorm.DB, comment *entity.PostComment) error
	FindCommentsByPost(db *gorm.DB, postID uuid.UUID) ([]entity.PostComment, error)
}
