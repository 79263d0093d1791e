package repository

import (
	"errors"

	"vetclinic-backend/internal/domain/entity"
	domainRepo "vetclinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type communityRepository struct{}

func NewCommunityRepository() domainRepo.CommunityRepository {
	return &communityRepository{}
}

func (r *communityRepository) CreatePost(db *gorm.DB, post *entity.CommunityPost) error {
	return db.Create(post).Error
}

func (r *communityRepository) FindPosts(db *gorm.DB, limit, offset int) ([]entity.CommunityPost, int64, error) {
	var posts []entity.CommunityPost
	var total int64

	if err := db.Model(&entity.CommunityPost{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Author").
		Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *communityRepository) FindPostByID(db *gorm.DB, id uuid.UUID) (*entity.CommunityPost, error) {
	var post entity.CommunityPost
	err := db.Preload("Author").Where("id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *communityRepository) DeletePost(db *gorm.DB, id uuid.UUID) error {
	if err := db.Where("post_id = ?", id).Delete(&entity.PostComment{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&entity.CommunityPost{}).Error
}

func (r *communityRepository) IncrementLikes(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.CommunityPost{}).
		Where("id = ?", id).
		Update("likes", gorm.Expr("likes + 1"))
	return result.RowsAffected, result.Error
}

func (r *communityRepository) CreateComment(db *gorm.DB, comment *entity.PostComment) error {
	return db.Create(comment).Error
}

func (r *communityRepository) FindCommentsByPost(db *gorm.DB, postID uuid.UUID) ([]entity.PostComment, error) {
	var comments []entity.PostComment
	err := db.Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
