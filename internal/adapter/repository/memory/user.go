package memory

import (
	"context"
	"errors"

	"go.uber.org/zap"

	domain "user-post-service/internal/domain/user"
	pkgerrors "user-post-service/pkg/errors"
)

// UserRepository implements user.Repository over a Collection.
type UserRepository struct {
	users *Collection[domain.User]
	log   *zap.Logger
}

// NewUserRepository creates an empty in-memory user store.
func NewUserRepository(log *zap.Logger) *UserRepository {
	return &UserRepository{
		users: NewCollection(func(u *domain.User, id int64) { u.ID = id }),
		log:   log,
	}
}

// Create stores u under the next id.
func (r *UserRepository) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if u == nil {
		return nil, errors.New("user cannot be nil")
	}

	created := r.users.Insert(*u)
	r.log.Debug("user stored", zap.Int64("id", created.ID))
	return &created, nil
}

// List returns all users in insertion order.
func (r *UserRepository) List(_ context.Context) ([]domain.User, error) {
	return r.users.All(), nil
}

// GetByID returns the user with id or a NotFoundError.
func (r *UserRepository) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users.Get(id)
	if !ok {
		return nil, pkgerrors.NewNotFoundError(domain.Resource, id)
	}
	return &u, nil
}

// Update merges patch into the stored user.
func (r *UserRepository) Update(_ context.Context, id int64, patch domain.Patch) (*domain.User, error) {
	u, ok := r.users.Modify(id, patch.Apply)
	if !ok {
		return nil, pkgerrors.NewNotFoundError(domain.Resource, id)
	}
	return &u, nil
}

// Delete removes the user. Posts that reference it are left alone.
func (r *UserRepository) Delete(_ context.Context, id int64) error {
	if !r.users.Remove(id) {
		return pkgerrors.NewNotFoundError(domain.Resource, id)
	}
	r.log.Debug("user removed", zap.Int64("id", id))
	return nil
}
