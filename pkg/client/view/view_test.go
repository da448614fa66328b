package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"user-post-service/pkg/client"
	"user-post-service/pkg/client/state"
)

var users = []client.User{
	{ID: 1, Name: "ada", Username: "ada", Email: "ada@x.com"},
	{ID: 2, Name: "Bob", Username: "bob", Email: "bob@x.com"},
}

func TestUsers_States(t *testing.T) {
	loading := Users(state.State[client.User]{Loading: true})
	assert.Contains(t, loading, "Loading users...")

	empty := Users(state.State[client.User]{})
	assert.Contains(t, empty, "No users found")
	assert.Contains(t, empty, "Get started by creating a new user.")

	full := Users(state.State[client.User]{Items: users, Loading: true})
	assert.NotContains(t, full, "Loading users...")
	assert.Contains(t, full, "@bob • bob@x.com")
	assert.Contains(t, full, "A ada")
}

func TestUsers_ErrorAlert(t *testing.T) {
	out := Users(state.State[client.User]{Error: client.MsgNoResponse})
	assert.Contains(t, out, client.MsgNoResponse)
}

func TestPosts_EmptyHints(t *testing.T) {
	assert.Contains(t, Posts(state.State[client.Post]{}, users, 0), "Get started by creating a new post.")

	filtered := Posts(state.State[client.Post]{}, users, 2)
	assert.Contains(t, filtered, "No posts found")
	assert.Contains(t, filtered, "This user has no posts yet.")
	assert.Contains(t, filtered, "Bob (@bob)")

	assert.Contains(t, Posts(state.State[client.Post]{Loading: true}, nil, 0), "Loading posts...")
}

func TestPosts_Author(t *testing.T) {
	out := Posts(state.State[client.Post]{Items: []client.Post{
		{ID: 1, UserID: 2, Title: "Hi"},
		{ID: 2, UserID: 42, Title: "Orphan"},
	}}, users, 0)

	assert.Contains(t, out, "Bob (@bob)")
	assert.Contains(t, out, "User #42")
}

func TestActions(t *testing.T) {
	assert.Equal(t, RowActions{Edit: true, Delete: true}, Actions(state.State[client.User]{}))
	assert.Equal(t, RowActions{Edit: false, Delete: true}, Actions(state.State[client.User]{Updating: true}))
	assert.Equal(t, RowActions{Edit: true, Delete: false}, Actions(state.State[client.Post]{Deleting: true}))
}

func TestStatus(t *testing.T) {
	ok := Status(state.State[client.User]{Items: users}, state.State[client.Post]{})
	assert.Contains(t, ok, "API is Ready")
	assert.Contains(t, ok, "2 Users, 0 Posts")

	bad := Status(state.State[client.User]{}, state.State[client.Post]{Error: "boom"})
	assert.Contains(t, bad, "API is Not Ready")
}

func TestCreatePostLabel(t *testing.T) {
	assert.Equal(t, "Create users first", CreatePostLabel(nil))
	assert.Equal(t, "Create new post", CreatePostLabel(users))
}

func TestInitial(t *testing.T) {
	assert.Equal(t, "É", Initial("éa"))
	assert.Equal(t, "?", Initial(""))
}
