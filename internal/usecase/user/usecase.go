package user

import (
	"context"

	"go.uber.org/zap"

	domain "user-post-service/internal/domain/user"
	"user-post-service/pkg/logger"
)

// Repository defines the interface for user data access operations.
// Lookups of a missing id return a *errors.NotFoundError.
type Repository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)               // Store a new user under the next id
	List(ctx context.Context) ([]domain.User, error)                                // All users, insertion order
	GetByID(ctx context.Context, id int64) (*domain.User, error)                    // Retrieve user by ID
	Update(ctx context.Context, id int64, patch domain.Patch) (*domain.User, error) // Merge patch into existing user
	Delete(ctx context.Context, id int64) error                                     // Delete user by ID
}

// Service implements the user CRUD operations on top of a Repository.
type Service struct {
	repo Repository
	log  *zap.Logger
}

var _ Usecase = (*Service)(nil)

// New creates a new Service.
func New(r Repository, log *zap.Logger) *Service {
	return &Service{repo: r, log: log}
}

// CreateUser stores a new user. Field content is not validated here; the
// client validates before submitting.
func (s *Service) CreateUser(ctx context.Context, in CreateUserRequest) (*domain.User, error) {
	log := logger.WithContext(ctx, s.log)
	log.Info("creating user", zap.String("username", in.Username))

	u, err := s.repo.Create(ctx, &domain.User{
		Name:     in.Name,
		Username: in.Username,
		Email:    in.Email,
	})
	if err != nil {
		log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	log.Info("user created", zap.Int64("id", u.ID))
	return u, nil
}

// ListUsers returns every user in insertion order.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		logger.WithContext(ctx, s.log).Error("failed to list users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

// GetUser retrieves a user by ID.
func (s *Service) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.WithContext(ctx, s.log).Warn("failed to get user", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return u, nil
}

// UpdateUser merges the provided fields into an existing user.
func (s *Service) UpdateUser(ctx context.Context, in UpdateUserRequest) (*domain.User, error) {
	log := logger.WithContext(ctx, s.log)
	log.Info("updating user", zap.Int64("id", in.ID))

	u, err := s.repo.Update(ctx, in.ID, domain.Patch{
		Name:     in.Name,
		Username: in.Username,
		Email:    in.Email,
	})
	if err != nil {
		log.Warn("failed to update user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}
	return u, nil
}

// DeleteUser removes a user. Its posts are kept.
func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	log := logger.WithContext(ctx, s.log)
	log.Info("deleting user", zap.Int64("id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Warn("failed to delete user", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}
