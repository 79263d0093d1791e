package usecase

import (
	"context"
	"errors"

	"vetclinic-backend/internal/converter"
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
	"vetclinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrNotPostAuthor = errors.New("only the author or an admin can delete a post")
)

type CommunityUsecase interface {
	CreatePost(ctx context.Context, authorID uuid.UUID, req *dto.CreatePostRequest) (*dto.PostResponse, error)
	ListPosts(ctx context.Context, page, pageSize int) (*dto.PostListResponse, error)
	GetPost(ctx context.Context, id uuid.UUID) (*dto.PostResponse, error)
	DeletePost(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRoleID int) error
	LikePost(ctx context.Context, id uuid.UUID) (*dto.PostResponse, error)
	CreateComment(ctx context.Context, postID uuid.UUID, authorID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
}

type communityUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	communityRepo repository.CommunityRepository
	userRepo      repository.UserRepository
}

func NewCommunityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	communityRepo repository.CommunityRepository,
	userRepo repository.UserRepository,
) CommunityUsecase {
	return &communityUsecase{
		db:            db,
		log:           log,
		communityRepo: communityRepo,
		userRepo:      userRepo,
	}
}

func (u *communityUsecase) CreatePost(ctx context.Context, authorID uuid.UUID, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	db := u.db.WithContext(ctx)

	post := &entity.CommunityPost{
		AuthorID: authorID,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	}

	if err := u.communityRepo.CreatePost(db, post); err != nil {
		u.log.Warnf("Failed to create post: %+v", err)
		return nil, err
	}

	author, err := u.userRepo.FindByID(db, authorID)
	if err == nil && author != nil {
		post.Author = *author
	}

	return converter.PostToResponse(post), nil
}

func (u *communityUsecase) ListPosts(ctx context.Context, page, pageSize int) (*dto.PostListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	posts, total, err := u.communityRepo.FindPosts(u.db.WithContext(ctx), pageSize, (page-1)*pageSize)
	if err != nil {
		u.log.Warnf("Failed to list posts: %+v", err)
		return nil, err
	}

	return &dto.PostListResponse{
		Posts: converter.PostsToResponses(posts),
		Total: int(total),
	}, nil
}

func (u *communityUsecase) GetPost(ctx context.Context, id uuid.UUID) (*dto.PostResponse, error) {
	post, err := u.communityRepo.FindPostByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find post: %+v", err)
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	return converter.PostToResponse(post), nil
}

func (u *communityUsecase) DeletePost(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRoleID int) error {
	db := u.db.WithContext(ctx)

	post, err := u.communityRepo.FindPostByID(db, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	if post.AuthorID != actorID && actorRoleID != entity.RoleIDAdmin {
		return ErrNotPostAuthor
	}

	return u.communityRepo.DeletePost(db, id)
}

func (u *communityUsecase) LikePost(ctx context.Context, id uuid.UUID) (*dto.PostResponse, error) {
	db := u.db.WithContext(ctx)

	affected, err := u.communityRepo.IncrementLikes(db, id)
	if err != nil {
		u.log.Warnf("Failed to like post: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrPostNotFound
	}

	post, err := u.communityRepo.FindPostByID(db, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	return converter.PostToResponse(post), nil
}

func (u *communityUsecase) CreateComment(ctx context.Context, postID uuid.UUID, authorID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	db := u.db.WithContext(ctx)

	post, err := u.communityRepo.FindPostByID(db, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comment := &entity.PostComment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  req.Content,
	}

	if err := u.communityRepo.CreateComment(db, comment); err != nil {
		u.log.Warnf("Failed to create comment: %+v", err)
		return nil, err
	}

	author, err := u.userRepo.FindByID(db, authorID)
	if err == nil && author != nil {
		comment.Author = *author
	}

	return converter.CommentToResponse(comment), nil
}
