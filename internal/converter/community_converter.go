package converter

import (
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
)

// CommentToResponse converts a PostComment entity to CommentResponse DTO
func CommentToResponse(comment *entity.PostComment) *dto.CommentResponse {
	if comment == nil {
		return nil
	}

	return &dto.CommentResponse{
		ID:         comment.ID,
		PostID:     comment.PostID,
		AuthorID:   comment.AuthorID,
		AuthorName: comment.Author.FullName,
		Content:    comment.Content,
		CreatedAt:  comment.CreatedAt,
	}
}

// PostToResponse converts a CommunityPost entity to PostResponse DTO.
// Comments are included when preloaded.
func PostToResponse(post *entity.CommunityPost) *dto.PostResponse {
	if post == nil {
		return nil
	}

	response := &dto.PostResponse{
		ID:           post.ID,
		AuthorID:     post.AuthorID,
		AuthorName:   post.Author.FullName,
		Content:      post.Content,
		ImageURL:     post.ImageURL,
		Likes:        post.Likes,
		CommentCount: len(post.Comments),
		CreatedAt:    post.CreatedAt,
	}

	if len(post.Comments) > 0 {
		comments := make([]dto.CommentResponse, 0, len(post.Comments))
		for i := range post.Comments {
			comments = append(comments, *CommentToResponse(&post.Comments[i]))
		}
		response.Comments = comments
	}

	return response
}

// PostsToResponses converts a slice of CommunityPost entities to DTOs
func PostsToResponses(posts []entity.CommunityPost) []dto.PostResponse {
	responses := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, *PostToResponse(&posts[i]))
	}
	return responses
}
