package post

import (
	"context"

	domain "user-post-service/internal/domain/post"
)

// Usecase defines the interface for post business logic operations.
type Usecase interface {
	CreatePost(ctx context.Context, in CreatePostRequest) (*domain.Post, error)
	ListPosts(ctx context.Context) ([]domain.Post, error)
	ListPostsByUser(ctx context.Context, userID int64) ([]domain.Post, error)
	GetPost(ctx context.Context, id int64) (*domain.Post, error)
	UpdatePost(ctx context.Context, in UpdatePostRequest) (*domain.Post, error)
	DeletePost(ctx context.Context, id int64) error
}
