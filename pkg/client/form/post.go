package form

import (
	"errors"

	"user-post-service/pkg/client"
)

// Post is the create/edit post form.
type Post struct {
	Title  string `form:"title" validate:"notblank"`
	UserID int64  `form:"userId" validate:"required"`

	editing bool
}

var postMessages = map[string]map[string]string{
	"title":  {"notblank": "Title is required"},
	"userId": {"required": "Please select a user"},
}

// NewPost returns a form prefilled from p for editing, or a blank one whose
// author defaults to the first of users.
func NewPost(p *client.Post, users []client.User) *Post {
	if p != nil {
		return &Post{Title: p.Title, UserID: p.UserID, editing: true}
	}
	f := &Post{}
	if len(users) > 0 {
		f.UserID = users[0].ID
	}
	return f
}

// Editing reports whether the form edits an existing post.
func (f *Post) Editing() bool { return f.editing }

// Validate returns nil when the form can be submitted.
func (f *Post) Validate() Errors {
	return check(f, postMessages)
}

// CreateData submits the title and the author.
func (f *Post) CreateData() client.CreatePostData {
	return client.CreatePostData{UserID: f.UserID, Title: f.Title}
}

// UpdateData submits only the title; the author cannot change.
func (f *Post) UpdateData() client.UpdatePostData {
	title := f.Title
	return client.UpdatePostData{Title: &title}
}

// ValidateTitle checks the title alone, for inline feedback.
func (f *Post) ValidateTitle(value string) error {
	probe := *f
	probe.Title = value
	if msg, ok := probe.Validate()["title"]; ok {
		return fieldError(msg)
	}
	return nil
}

func fieldError(msg string) error { return errors.New(msg) }
