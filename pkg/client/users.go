package client

import (
	"context"
	"fmt"
	"net/http"
)

// UsersAPI wraps the /users endpoints.
type UsersAPI struct {
	c *Client
}

func (a *UsersAPI) List(ctx context.Context) ([]User, error) {
	var users []User
	if err := a.c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (a *UsersAPI) Get(ctx context.Context, id int64) (*User, error) {
	var u User
	if err := a.c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (a *UsersAPI) Create(ctx context.Context, data CreateUserData) (*User, error) {
	var u User
	err := a.c.mutate(ctx, http.MethodPost, "/users", data, &u,
		"User created successfully", "Failed to create user")
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (a *UsersAPI) Update(ctx context.Context, id int64, data UpdateUserData) (*User, error) {
	var u User
	err := a.c.mutate(ctx, http.MethodPatch, fmt.Sprintf("/users/%d", id), data, &u,
		"User updated successfully", "Failed to update user")
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (a *UsersAPI) Delete(ctx context.Context, id int64) error {
	return a.c.mutate(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil,
		"User deleted successfully", "Failed to delete user")
}
