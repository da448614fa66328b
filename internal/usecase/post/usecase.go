package post

import (
	"context"

	"go.uber.org/zap"

	domain "user-post-service/internal/domain/post"
	"user-post-service/pkg/logger"
)

// Repository defines the interface for post data access operations.
type Repository interface {
	Create(ctx context.Context, p *domain.Post) (*domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	ListByUserID(ctx context.Context, userID int64) ([]domain.Post, error)
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	Update(ctx context.Context, id int64, patch domain.Patch) (*domain.Post, error)
	Delete(ctx context.Context, id int64) error
}

// Service implements the post CRUD operations on top of a Repository.
type Service struct {
	repo Repository
	log  *zap.Logger
}

var _ Usecase = (*Service)(nil)

// New creates a new Service.
func New(r Repository, log *zap.Logger) *Service {
	return &Service{repo: r, log: log}
}

// CreatePost stores a new post. The author id is not checked against the
// user store.
func (s *Service) CreatePost(ctx context.Context, in CreatePostRequest) (*domain.Post, error) {
	log := logger.WithContext(ctx, s.log)
	log.Info("creating post", zap.Int64("user_id", in.UserID))

	p, err := s.repo.Create(ctx, &domain.Post{UserID: in.UserID, Title: in.Title})
	if err != nil {
		log.Error("failed to create post", zap.Error(err))
		return nil, err
	}

	log.Info("post created", zap.Int64("id", p.ID))
	return p, nil
}

func (s *Service) ListPosts(ctx context.Context) ([]domain.Post, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		logger.WithContext(ctx, s.log).Error("failed to list posts", zap.Error(err))
		return nil, err
	}
	return posts, nil
}

// ListPostsByUser returns the posts authored by userID. An unknown user
// yields an empty list.
func (s *Service) ListPostsByUser(ctx context.Context, userID int64) ([]domain.Post, error) {
	posts, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		logger.WithContext(ctx, s.log).Error("failed to list posts by user",
			zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	return posts, nil
}

func (s *Service) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.WithContext(ctx, s.log).Warn("failed to get post", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (s *Service) UpdatePost(ctx context.Context, in UpdatePostRequest) (*domain.Post, error) {
	log := logger.WithContext(ctx, s.log)
	log.Info("updating post", zap.Int64("id", in.ID))

	p, err := s.repo.Update(ctx, in.ID, domain.Patch{Title: in.Title})
	if err != nil {
		log.Warn("failed to update post", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (s *Service) DeletePost(ctx context.Context, id int64) error {
	log := logger.WithContext(ctx, s.log)
	log.Info("deleting post", zap.Int64("id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Warn("failed to delete post", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}
