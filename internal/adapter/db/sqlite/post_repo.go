package sqlite

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domain "user-post-service/internal/domain/post"
	pkgerrors "user-post-service/pkg/errors"
)

// PostRepo implements post.Repository using GORM over SQLite.
type PostRepo struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewPostRepo creates a new instance of PostRepo.
func NewPostRepo(db *gorm.DB, log *zap.Logger) *PostRepo {
	return &PostRepo{db: db, log: log}
}

// PostSchema represents the database schema for the posts table.
// UserID carries no foreign key; posts outlive their author.
type PostSchema struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	UserID int64  `gorm:"not null;index"`
	Title  string `gorm:"not null"`
}

func (PostSchema) TableName() string {
	return "posts"
}

func (m PostSchema) toDomain() domain.Post {
	return domain.Post{ID: m.ID, UserID: m.UserID, Title: m.Title}
}

func (r *PostRepo) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	if p == nil {
		return nil, errors.New("post cannot be nil")
	}

	model := PostSchema{UserID: p.UserID, Title: p.Title}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create post in db", zap.Error(err))
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	created := model.toDomain()
	return &created, nil
}

func (r *PostRepo) List(ctx context.Context) ([]domain.Post, error) {
	return r.find(ctx, r.db.WithContext(ctx))
}

// ListByUserID returns the posts of one author ordered by id.
func (r *PostRepo) ListByUserID(ctx context.Context, userID int64) ([]domain.Post, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (r *PostRepo) find(_ context.Context, q *gorm.DB) ([]domain.Post, error) {
	var models []PostSchema
	if err := q.Order("id").Find(&models).Error; err != nil {
		r.log.Error("failed to list posts from db", zap.Error(err))
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	posts := make([]domain.Post, len(models))
	for i, model := range models {
		posts[i] = model.toDomain()
	}
	return posts, nil
}

func (r *PostRepo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	var model PostSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		return nil, r.lookupError(err, id)
	}

	p := model.toDomain()
	return &p, nil
}

// Update changes the title only; user_id is never written after creation.
func (r *PostRepo) Update(ctx context.Context, id int64, patch domain.Patch) (*domain.Post, error) {
	var updated domain.Post
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model PostSchema
		if err := tx.First(&model, id).Error; err != nil {
			return r.lookupError(err, id)
		}

		updated = patch.Apply(model.toDomain())
		return tx.Model(&model).Update("title", updated.Title).Error
	})
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, err
		}
		r.log.Error("failed to update post in db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return &updated, nil
}

func (r *PostRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&PostSchema{}, id)
	if res.Error != nil {
		r.log.Error("failed to delete post in db", zap.Error(res.Error), zap.Int64("id", id))
		return fmt.Errorf("failed to delete post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return pkgerrors.NewNotFoundError(domain.Resource, id)
	}
	return nil
}

func (r *PostRepo) lookupError(err error, id int64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.NewNotFoundError(domain.Resource, id)
	}
	r.log.Error("failed to get post from db", zap.Error(err), zap.Int64("id", id))
	return fmt.Errorf("failed to get post: %w", err)
}
