package state

import (
	"context"

	"user-post-service/pkg/client"
)

// Users is the view state of the users collection.
type Users = Collection[client.User, client.CreateUserData, client.UpdateUserData]

// NewUsers mirrors remote, usually a *client.UsersAPI.
func NewUsers(remote Remote[client.User, client.CreateUserData, client.UpdateUserData]) *Users {
	return NewCollection(remote, func(u client.User) int64 { return u.ID })
}

// PostsRemote adds the per-author listing to the posts API.
type PostsRemote interface {
	Remote[client.Post, client.CreatePostData, client.UpdatePostData]
	ListByUser(ctx context.Context, userID int64) ([]client.Post, error)
}

// Posts is the view state of the posts collection.
type Posts struct {
	*Collection[client.Post, client.CreatePostData, client.UpdatePostData]
	remote PostsRemote
}

// NewPosts mirrors remote, usually a *client.PostsAPI.
func NewPosts(remote PostsRemote) *Posts {
	return &Posts{
		Collection: NewCollection[client.Post, client.CreatePostData, client.UpdatePostData](
			remote, func(p client.Post) int64 { return p.ID }),
		remote: remote,
	}
}

// FilterByUser replaces the items with the posts of one author.
func (p *Posts) FilterByUser(ctx context.Context, userID int64) {
	p.load(ctx, func(ctx context.Context) ([]client.Post, error) {
		return p.remote.ListByUser(ctx, userID)
	})
}
