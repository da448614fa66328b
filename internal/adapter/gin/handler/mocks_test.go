package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	postdomain "user-post-service/internal/domain/post"
	userdomain "user-post-service/internal/domain/user"
	"user-post-service/internal/usecase/post"
	"user-post-service/internal/usecase/user"
)

// MockUserUsecase is a mock implementation of user.Usecase
type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) CreateUser(ctx context.Context, req user.CreateUserRequest) (*userdomain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userdomain.User), args.Error(1)
}

func (m *MockUserUsecase) ListUsers(ctx context.Context) ([]userdomain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]userdomain.User), args.Error(1)
}

func (m *MockUserUsecase) GetUser(ctx context.Context, id int64) (*userdomain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userdomain.User), args.Error(1)
}

func (m *MockUserUsecase) UpdateUser(ctx context.Context, req user.UpdateUserRequest) (*userdomain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userdomain.User), args.Error(1)
}

func (m *MockUserUsecase) DeleteUser(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockPostUsecase is a mock implementation of post.Usecase
type MockPostUsecase struct {
	mock.Mock
}

func (m *MockPostUsecase) CreatePost(ctx context.Context, req post.CreatePostRequest) (*postdomain.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*postdomain.Post), args.Error(1)
}

func (m *MockPostUsecase) ListPosts(ctx context.Context) ([]postdomain.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]postdomain.Post), args.Error(1)
}

func (m *MockPostUsecase) ListPostsByUser(ctx context.Context, userID int64) ([]postdomain.Post, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]postdomain.Post), args.Error(1)
}

func (m *MockPostUsecase) GetPost(ctx context.Context, id int64) (*postdomain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*postdomain.Post), args.Error(1)
}

func (m *MockPostUsecase) UpdatePost(ctx context.Context, req post.UpdatePostRequest) (*postdomain.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*postdomain.Post), args.Error(1)
}

func (m *MockPostUsecase) DeletePost(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
