package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"

	"user-post-service/pkg/client"
	"user-post-service/pkg/client/form"
)

var errNotInteractive = errors.New("interactive input needs a terminal; pass the values as flags")

// prompter fills forms interactively.
type prompter interface {
	User(f *form.User) error
	Post(f *form.Post, users []client.User) error
	Confirm(title string) (bool, error)
}

// huhPrompter renders forms in the terminal.
type huhPrompter struct{}

func (huhPrompter) User(f *form.User) error {
	if !isTerminal() {
		return errNotInteractive
	}
	title := "Create new user"
	if f.Editing() {
		title = "Edit user"
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(title),
			huh.NewInput().
				Title("Name").
				Placeholder("Enter full name").
				Value(&f.Name).
				Validate(func(s string) error { return f.ValidateField("name", s) }),
			huh.NewInput().
				Title("Username").
				Placeholder("Enter username").
				Value(&f.Username).
				Validate(func(s string) error { return f.ValidateField("username", s) }),
			huh.NewInput().
				Title("Email").
				Placeholder("Enter email address").
				Value(&f.Email).
				Validate(func(s string) error { return f.ValidateField("email", s) }),
		),
	).Run()
}

func (huhPrompter) Post(f *form.Post, users []client.User) error {
	if !isTerminal() {
		return errNotInteractive
	}
	fields := []huh.Field{
		huh.NewInput().
			Title("Title").
			Placeholder("Enter post title").
			Value(&f.Title).
			Validate(f.ValidateTitle),
	}
	title := "Edit post"
	if !f.Editing() {
		title = "Create new post"
		opts := make([]huh.Option[int64], 0, len(users))
		for _, u := range users {
			opts = append(opts, huh.NewOption(fmt.Sprintf("%s (@%s)", u.Name, u.Username), u.ID))
		}
		fields = append(fields, huh.NewSelect[int64]().
			Title("Author").
			Options(opts...).
			Value(&f.UserID))
	}
	fields = append([]huh.Field{huh.NewNote().Title(title)}, fields...)
	return huh.NewForm(huh.NewGroup(fields...)).Run()
}

func (huhPrompter) Confirm(title string) (bool, error) {
	if !isTerminal() {
		return false, errNotInteractive
	}
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Delete").
		Negative("Cancel").
		Value(&ok).
		Run()
	return ok, err
}

// isTerminal checks if stdin is a terminal.
func isTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

func formatID(id int64) string { return strconv.FormatInt(id, 10) }
