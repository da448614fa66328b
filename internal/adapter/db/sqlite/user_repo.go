package sqlite

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domain "user-post-service/internal/domain/user"
	pkgerrors "user-post-service/pkg/errors"
)

// UserRepo implements user.Repository using GORM over SQLite.
type UserRepo struct {
	db  *gorm.DB    // GORM database connection
	log *zap.Logger // Structured logger for database operations
}

// NewUserRepo creates a new instance of UserRepo.
func NewUserRepo(db *gorm.DB, log *zap.Logger) *UserRepo {
	return &UserRepo{db: db, log: log}
}

// UserSchema represents the database schema for the users table.
// AUTOINCREMENT keeps ids of deleted rows from being handed out again.
type UserSchema struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"not null"`
	Username string `gorm:"not null"`
	Email    string `gorm:"not null"`
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "users"
}

func (m UserSchema) toDomain() domain.User {
	return domain.User{ID: m.ID, Name: m.Name, Username: m.Username, Email: m.Email}
}

// Create inserts a new user into the database.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if u == nil {
		return nil, errors.New("user cannot be nil")
	}

	model := UserSchema{Name: u.Name, Username: u.Username, Email: u.Email}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create user in db", zap.Error(err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	r.log.Debug("user created in db", zap.Int64("id", model.ID))
	created := model.toDomain()
	return &created, nil
}

// List returns all users ordered by id, which is insertion order.
func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	var models []UserSchema
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		r.log.Error("failed to list users from db", zap.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]domain.User, len(models))
	for i, model := range models {
		users[i] = model.toDomain()
	}
	return users, nil
}

// GetByID retrieves a user from the database by their unique ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		return nil, r.lookupError(err, id)
	}

	u := model.toDomain()
	return &u, nil
}

// Update merges patch into the stored row inside a transaction.
func (r *UserRepo) Update(ctx context.Context, id int64, patch domain.Patch) (*domain.User, error) {
	var updated domain.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model UserSchema
		if err := tx.First(&model, id).Error; err != nil {
			return r.lookupError(err, id)
		}

		updated = patch.Apply(model.toDomain())
		model.Name, model.Username, model.Email = updated.Name, updated.Username, updated.Email
		return tx.Save(&model).Error
	})
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, err
		}
		r.log.Error("failed to update user in db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &updated, nil
}

// Delete removes a user from the database by ID.
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&UserSchema{}, id)
	if res.Error != nil {
		r.log.Error("failed to delete user in db", zap.Error(res.Error), zap.Int64("id", id))
		return fmt.Errorf("failed to delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return pkgerrors.NewNotFoundError(domain.Resource, id)
	}

	r.log.Debug("user deleted in db", zap.Int64("id", id))
	return nil
}

func (r *UserRepo) lookupError(err error, id int64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.NewNotFoundError(domain.Resource, id)
	}
	r.log.Error("failed to get user from db", zap.Error(err), zap.Int64("id", id))
	return fmt.Errorf("failed to get user: %w", err)
}
