package client

// User is a user as returned by the API.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// CreateUserData is the body of POST /users.
type CreateUserData struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UpdateUserData is the body of PATCH /users/:id. Nil fields are omitted
// and left unchanged by the server.
type UpdateUserData struct {
	Name     *string `json:"name,omitempty"`
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// Post is a post as returned by the API.
type Post struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	Title  string `json:"title"`
}

// CreatePostData is the body of POST /posts.
type CreatePostData struct {
	UserID int64  `json:"userId"`
	Title  string `json:"title"`
}

// UpdatePostData is the body of PATCH /posts/:id.
type UpdatePostData struct {
	Title *string `json:"title,omitempty"`
}
