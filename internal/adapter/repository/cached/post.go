package cached

import (
	"context"

	"go.uber.org/zap"

	"user-post-service/internal/adapter/cache"
	domain "user-post-service/internal/domain/post"
	"user-post-service/internal/usecase/post"
)

// PostRepository implements post.Repository with caching support.
type PostRepository struct {
	store post.Repository
	byID  *byID[domain.Post]
}

var _ post.Repository = (*PostRepository)(nil)

// NewPostRepository wraps store with c.
func NewPostRepository(store post.Repository, c cache.EntityCache[domain.Post], log *zap.Logger) *PostRepository {
	return &PostRepository{
		store: store,
		byID:  &byID[domain.Post]{cache: c, log: log, name: "post"},
	}
}

// Create stores the post and drops any cached entry under its new id.
func (r *PostRepository) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	created, err := r.store.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	r.byID.invalidate(ctx, created.ID)
	return created, nil
}

func (r *PostRepository) List(ctx context.Context) ([]domain.Post, error) {
	return r.store.List(ctx)
}

func (r *PostRepository) ListByUserID(ctx context.Context, userID int64) ([]domain.Post, error) {
	return r.store.ListByUserID(ctx, userID)
}

// GetByID retrieves a post using the cache-aside pattern.
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	return r.byID.get(ctx, id, r.store.GetByID)
}

// Update updates the post in the store and invalidates the cache.
func (r *PostRepository) Update(ctx context.Context, id int64, patch domain.Patch) (*domain.Post, error) {
	r.byID.invalidate(ctx, id)
	p, err := r.store.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	r.byID.invalidate(ctx, id)
	return p, nil
}

// Delete deletes the post from the store and invalidates the cache.
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	r.byID.invalidate(ctx, id)
	if err := r.store.Delete(ctx, id); err != nil {
		return err
	}
	r.byID.invalidate(ctx, id)
	return nil
}
