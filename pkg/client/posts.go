package client

import (
	"context"
	"fmt"
	"net/http"
)

// PostsAPI wraps the /posts endpoints.
type PostsAPI struct {
	c *Client
}

func (a *PostsAPI) List(ctx context.Context) ([]Post, error) {
	return a.list(ctx, "/posts")
}

// ListByUser returns the posts whose author is userID.
func (a *PostsAPI) ListByUser(ctx context.Context, userID int64) ([]Post, error) {
	return a.list(ctx, fmt.Sprintf("/posts?userId=%d", userID))
}

func (a *PostsAPI) list(ctx context.Context, path string) ([]Post, error) {
	var posts []Post
	if err := a.c.do(ctx, http.MethodGet, path, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (a *PostsAPI) Get(ctx context.Context, id int64) (*Post, error) {
	var p Post
	if err := a.c.do(ctx, http.MethodGet, fmt.Sprintf("/posts/%d", id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (a *PostsAPI) Create(ctx context.Context, data CreatePostData) (*Post, error) {
	var p Post
	err := a.c.mutate(ctx, http.MethodPost, "/posts", data, &p,
		"Post created successfully", "Failed to create post")
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (a *PostsAPI) Update(ctx context.Context, id int64, data UpdatePostData) (*Post, error) {
	var p Post
	err := a.c.mutate(ctx, http.MethodPatch, fmt.Sprintf("/posts/%d", id), data, &p,
		"Post updated successfully", "Failed to update post")
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (a *PostsAPI) Delete(ctx context.Context, id int64) error {
	return a.c.mutate(ctx, http.MethodDelete, fmt.Sprintf("/posts/%d", id), nil, nil,
		"Post deleted successfully", "Failed to delete post")
}
