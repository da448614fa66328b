package cached

import (
	"context"

	"go.uber.org/zap"

	"user-post-service/internal/adapter/cache"
	domain "user-post-service/internal/domain/user"
	"user-post-service/internal/usecase/user"
)

// UserRepository implements user.Repository with caching support.
type UserRepository struct {
	store user.Repository
	byID  *byID[domain.User]
}

var _ user.Repository = (*UserRepository)(nil)

// NewUserRepository wraps store with c.
func NewUserRepository(store user.Repository, c cache.EntityCache[domain.User], log *zap.Logger) *UserRepository {
	return &UserRepository{
		store: store,
		byID:  &byID[domain.User]{cache: c, log: log, name: "user"},
	}
}

// Create stores the user and drops any cached entry under its new id.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	created, err := r.store.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	r.byID.invalidate(ctx, created.ID)
	return created, nil
}

// List delegates to the store.
func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	return r.store.List(ctx)
}

// GetByID retrieves a user using the cache-aside pattern.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.byID.get(ctx, id, r.store.GetByID)
}

// Update updates the user in the store and invalidates the cache.
func (r *UserRepository) Update(ctx context.Context, id int64, patch domain.Patch) (*domain.User, error) {
	r.byID.invalidate(ctx, id)
	u, err := r.store.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	r.byID.invalidate(ctx, id)
	return u, nil
}

// Delete deletes the user from the store and invalidates the cache.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	r.byID.invalidate(ctx, id)
	if err := r.store.Delete(ctx, id); err != nil {
		return err
	}
	r.byID.invalidate(ctx, id)
	return nil
}
