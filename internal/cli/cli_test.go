package cli

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"user-post-service/internal/adapter/gin/handler"
	"user-post-service/internal/adapter/gin/router"
	"user-post-service/internal/adapter/repository/memory"
	"user-post-service/internal/usecase/post"
	"user-post-service/internal/usecase/user"
	"user-post-service/pkg/client"
	"user-post-service/pkg/client/form"
)

// fakePrompter fills forms with canned values.
type fakePrompter struct {
	user    form.User
	title   string
	confirm bool
	calls   int
}

func (p *fakePrompter) User(f *form.User) error {
	p.calls++
	f.Name, f.Username, f.Email = p.user.Name, p.user.Username, p.user.Email
	return nil
}

func (p *fakePrompter) Post(f *form.Post, _ []client.User) error {
	p.calls++
	f.Title = p.title
	return nil
}

func (p *fakePrompter) Confirm(string) (bool, error) {
	p.calls++
	return p.confirm, nil
}

func newTestServer(t *testing.T) string {
	log := zaptest.NewLogger(t)
	r := router.SetupRouter(
		handler.NewUserHandler(user.New(memory.NewUserRepository(log), log), log),
		handler.NewPostHandler(post.New(memory.NewPostRepository(log), log), log),
		nil,
		log,
	)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv.URL
}

type harness struct {
	t      *testing.T
	server string
	prompt *fakePrompter
}

func newHarness(t *testing.T) *harness {
	return &harness{t: t, server: newTestServer(t), prompt: &fakePrompter{}}
}

func (h *harness) run(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd(&out, h.prompt, zaptest.NewLogger(h.t))
	cmd.SetArgs(append([]string{"--server", h.server}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (h *harness) mustRun(args ...string) string {
	out, err := h.run(args...)
	require.NoError(h.t, err, out)
	return out
}

func TestUsers_EmptyList(t *testing.T) {
	h := newHarness(t)
	out := h.mustRun("users", "list")
	assert.Contains(t, out, "No users found")
	assert.Contains(t, out, "Get started by creating a new user.")
}

func TestUsers_CreateEditDelete(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("users", "create", "--name", "Ada", "--username", "ada", "--email", "ada@x.com")
	assert.Contains(t, out, "User created successfully")
	assert.Contains(t, out, "@ada • ada@x.com")

	out = h.mustRun("users", "edit", "1", "--email", "ada@y.com")
	assert.Contains(t, out, "User updated successfully")
	assert.Contains(t, out, "@ada • ada@y.com")

	out = h.mustRun("users", "delete", "1", "--yes")
	assert.Contains(t, out, "User deleted successfully")
	assert.Contains(t, out, "No users found")
	assert.Zero(t, h.prompt.calls)
}

func TestUsers_CreateInteractive(t *testing.T) {
	h := newHarness(t)
	h.prompt.user = form.User{Name: "Bob", Username: "bob", Email: "bob@x.com"}

	out := h.mustRun("users", "create")
	assert.Equal(t, 1, h.prompt.calls)
	assert.Contains(t, out, "@bob • bob@x.com")
}

func TestUsers_CreateInvalid(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("users", "create", "--name", "Ada", "--username", "ada", "--email", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Please enter a valid email address")

	out := h.mustRun("users", "list")
	assert.Contains(t, out, "No users found")
}

func TestUsers_EditMissing(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("users", "edit", "9", "--name", "x")
	require.Error(t, err)
	assert.EqualError(t, err, "User with ID 9 not found")
}

func TestUsers_DeleteMissingReportsToast(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("users", "delete", "9", "--yes")
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, out, "Failed to delete user")
}

func TestUsers_DeleteDeclined(t *testing.T) {
	h := newHarness(t)
	h.mustRun("users", "create", "--name", "Ada", "--username", "ada", "--email", "ada@x.com")

	out := h.mustRun("users", "delete", "1")
	assert.Equal(t, 1, h.prompt.calls)
	assert.NotContains(t, out, "User deleted successfully")
	assert.Contains(t, h.mustRun("users", "list"), "@ada")
}

func TestInvalidID(t *testing.T) {
	h := newHarness(t)
	_, err := h.run("users", "delete", "abc", "--yes")
	assert.EqualError(t, err, `invalid id "abc"`)
}

func TestPosts_CreateNeedsUsers(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("posts", "create", "--title", "Hello")
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, out, "Create users first")
}

func TestPosts_Flow(t *testing.T) {
	h := newHarness(t)
	h.mustRun("users", "create", "--name", "Ada", "--username", "ada", "--email", "ada@x.com")
	h.mustRun("users", "create", "--name", "Bob", "--username", "bob", "--email", "bob@x.com")

	out := h.mustRun("posts", "create", "--title", "First")
	assert.Contains(t, out, "Post created successfully")
	assert.Contains(t, out, "Ada (@ada)")

	h.mustRun("posts", "create", "--title", "Second", "--user", "2")

	out = h.mustRun("posts", "list", "--user", "2")
	assert.Contains(t, out, "Second")
	assert.NotContains(t, out, "First")

	out = h.mustRun("posts", "edit", "1", "--title", "Renamed")
	assert.Contains(t, out, "Post updated successfully")
	assert.Contains(t, out, "Renamed")

	h.mustRun("users", "delete", "1", "--yes")
	out = h.mustRun("posts", "list")
	assert.Contains(t, out, "User #1")

	out = h.mustRun("posts", "delete", "2", "--yes")
	assert.Contains(t, out, "Post deleted successfully")
	assert.NotContains(t, out, "Second")
}

func TestPosts_EmptyFiltered(t *testing.T) {
	h := newHarness(t)
	h.mustRun("users", "create", "--name", "Ada", "--username", "ada", "--email", "ada@x.com")

	out := h.mustRun("posts", "list", "--user", "1")
	assert.Contains(t, out, "No posts found")
	assert.Contains(t, out, "This user has no posts yet.")
}

func TestPosts_EditInteractive(t *testing.T) {
	h := newHarness(t)
	h.mustRun("users", "create", "--name", "Ada", "--username", "ada", "--email", "ada@x.com")
	h.mustRun("posts", "create", "--title", "First")
	h.prompt.title = "   "

	_, err := h.run("posts", "edit", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Title is required")
}

func TestStatus(t *testing.T) {
	h := newHarness(t)
	h.mustRun("users", "create", "--name", "Ada", "--username", "ada", "--email", "ada@x.com")

	out := h.mustRun("status")
	assert.Contains(t, out, "API is Ready")
	assert.Contains(t, out, "1 Users, 0 Posts")
}

func TestStatus_Unreachable(t *testing.T) {
	srv := httptest.NewServer(nil)
	srv.Close()
	h := &harness{t: t, server: srv.URL, prompt: &fakePrompter{}}

	out := h.mustRun("status")
	assert.Contains(t, out, "API is Not Ready")
	assert.Contains(t, out, client.MsgNoResponse)
}
