package post

// Resource is the name used for posts in errors and logs.
const Resource = "Post"

// Post represents a post written by a user.
// UserID references a user by id; it is neither validated nor kept consistent
// when that user is deleted.
type Post struct {
	ID     int64
	UserID int64
	Title  string
}

// Patch is a partial update of a Post. The author is fixed at creation,
// so only the title can change.
type Patch struct {
	Title *string
}

// Apply returns p with the patch written over it.
func (pt Patch) Apply(p Post) Post {
	if pt.Title != nil {
		p.Title = *pt.Title
	}
	return p
}
