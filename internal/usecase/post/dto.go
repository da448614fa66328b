package post

// CreatePostRequest represents the request payload for creating a new post.
type CreatePostRequest struct {
	UserID int64
	Title  string
}

// UpdatePostRequest changes the title of a post when Title is non-nil.
// The author cannot be changed.
type UpdatePostRequest struct {
	ID    int64
	Title *string
}
