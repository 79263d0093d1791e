package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/delivery/http/middleware"
	"vetclinic-backend/internal/usecase"
	"vetclinic-backend/pkg/response"
	"vetclinic-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type CommunityHandler struct {
	communityUsecase usecase.CommunityUsecase
	validator        *validator.CustomValidator
}

func NewCommunityHandler(communityUsecase usecase.CommunityUsecase, validator *validator.CustomValidator) *CommunityHandler {
	return &CommunityHandler{
		communityUsecase: communityUsecase,
		validator:        validator,
	}
}

// CreatePost publishes a new post to the community feed
func (h *CommunityHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	post, err := h.communityUsecase.CreatePost(r.Context(), userID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create post")
		return
	}

	response.Success(w, http.StatusCreated, "Post created successfully", post)
}

// ListPosts returns the feed, newest first
func (h *CommunityHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	posts, err := h.communityUsecase.ListPosts(r.Context(), page, pageSize)
	if err != nil {
		response.InternalServerError(w, "Failed to list posts")
		return
	}

	response.Success(w, http.StatusOK, "Posts retrieved successfully", posts)
}

// GetPost returns a single post with its comments
func (h *CommunityHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid post ID")
		return
	}

	post, err := h.communityUsecase.GetPost(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPostNotFound:
			response.NotFound(w, "Post not found")
		default:
			response.InternalServerError(w, "Failed to get post")
		}
		return
	}

	response.Success(w, http.StatusOK, "Post retrieved successfully", post)
}

// DeletePost removes a post; only the author or an admin may do this
func (h *CommunityHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid post ID")
		return
	}

	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	roleID, _ := middleware.GetRoleIDFromContext(r.Context())

	if err := h.communityUsecase.DeletePost(r.Context(), id, userID, roleID); err != nil {
		switch err {
		case usecase.ErrPostNotFound:
			response.NotFound(w, "Post not found")
		case usecase.ErrNotPostAuthor:
			response.Forbidden(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to delete post")
		}
		return
	}

	response.Success(w, http.StatusOK, "Post deleted successfully", nil)
}

// LikePost increments a post's like counter
func (h *CommunityHandler) LikePost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid post ID")
		return
	}

	post, err := h.communityUsecase.LikePost(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPostNotFound:
			response.NotFound(w, "Post not found")
		default:
			response.InternalServerError(w, "Failed to like post")
		}
		return
	}

	response.Success(w, http.StatusOK, "Post liked", post)
}

// CreateComment adds a comment to a post
func (h *CommunityHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid post ID")
		return
	}

	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	comment, err := h.communityUsecase.CreateComment(r.Context(), postID, userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPostNotFound:
			response.NotFound(w, "Post not found")
		default:
			response.InternalServerError(w, "Failed to create comment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Comment created successfully", comment)
}
