package memory

import (
	"context"
	"errors"

	"go.uber.org/zap"

	domain "user-post-service/internal/domain/post"
	pkgerrors "user-post-service/pkg/errors"
)

// PostRepository implements post.Repository over a Collection.
type PostRepository struct {
	posts *Collection[domain.Post]
	log   *zap.Logger
}

// NewPostRepository creates an empty in-memory post store.
func NewPostRepository(log *zap.Logger) *PostRepository {
	return &PostRepository{
		posts: NewCollection(func(p *domain.Post, id int64) { p.ID = id }),
		log:   log,
	}
}

// Create stores p under the next id.
func (r *PostRepository) Create(_ context.Context, p *domain.Post) (*domain.Post, error) {
	if p == nil {
		return nil, errors.New("post cannot be nil")
	}

	created := r.posts.Insert(*p)
	r.log.Debug("post stored", zap.Int64("id", created.ID), zap.Int64("user_id", created.UserID))
	return &created, nil
}

// List returns all posts in insertion order.
func (r *PostRepository) List(_ context.Context) ([]domain.Post, error) {
	return r.posts.All(), nil
}

// ListByUserID returns the posts whose UserID equals userID, in insertion order.
func (r *PostRepository) ListByUserID(_ context.Context, userID int64) ([]domain.Post, error) {
	return r.posts.Filter(func(p domain.Post) bool { return p.UserID == userID }), nil
}

// GetByID returns the post with id or a NotFoundError.
func (r *PostRepository) GetByID(_ context.Context, id int64) (*domain.Post, error) {
	p, ok := r.posts.Get(id)
	if !ok {
		return nil, pkgerrors.NewNotFoundError(domain.Resource, id)
	}
	return &p, nil
}

// Update merges patch into the stored post.
func (r *PostRepository) Update(_ context.Context, id int64, patch domain.Patch) (*domain.Post, error) {
	p, ok := r.posts.Modify(id, patch.Apply)
	if !ok {
		return nil, pkgerrors.NewNotFoundError(domain.Resource, id)
	}
	return &p, nil
}

// Delete removes the post.
func (r *PostRepository) Delete(_ context.Context, id int64) error {
	if !r.posts.Remove(id) {
		return pkgerrors.NewNotFoundError(domain.Resource, id)
	}
	r.log.Debug("post removed", zap.Int64("id", id))
	return nil
}
