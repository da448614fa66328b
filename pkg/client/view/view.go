package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"user-post-service/pkg/client"
	"user-post-service/pkg/client/state"
)

// RowActions says which per-row actions are available.
type RowActions struct {
	Edit   bool
	Delete bool
}

// Actions gates row actions on the busy flags: no edit while an update is
// in flight, no delete while a delete is.
func Actions[T any](s state.State[T]) RowActions {
	return RowActions{Edit: !s.Updating, Delete: !s.Deleting}
}

func (a RowActions) String() string {
	edit, del := "edit", "delete"
	if !a.Edit {
		edit = mutedStyle.Render("(updating)")
	}
	if !a.Delete {
		del = mutedStyle.Render("(deleting)")
	}
	return edit + " " + del
}

// Author names the author of a post, falling back to the bare id when the
// user is not known locally.
func Author(userID int64, users []client.User) string {
	for _, u := range users {
		if u.ID == userID {
			return fmt.Sprintf("%s (@%s)", u.Name, u.Username)
		}
	}
	return fmt.Sprintf("User #%d", userID)
}

// Initial is the avatar letter of a user.
func Initial(name string) string {
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return "?"
}

// Alert renders an error banner, or "" when msg is empty.
func Alert(msg string) string {
	if msg == "" {
		return ""
	}
	return alertStyle.Render(msg)
}

// Toast renders a one-line notification.
func Toast(success bool, msg string) string {
	if success {
		return successStyle.Render("✓ " + msg)
	}
	return failStyle.Render("✗ " + msg)
}

// Status renders the header line: API readiness and collection sizes.
// Any error in either collection marks the API as not ready.
func Status(users state.State[client.User], posts state.State[client.Post]) string {
	ready := okStyle.Render("●") + " API is Ready"
	if users.Error != "" || posts.Error != "" {
		ready = badStyle.Render("●") + " API is Not Ready"
	}
	return fmt.Sprintf("%s %s %d Users, %d Posts", ready, mutedStyle.Render("•"), len(users.Items), len(posts.Items))
}

// Users renders the users view.
func Users(s state.State[client.User]) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Users"))
	b.WriteString("\n")
	writeAlert(&b, s.Error)

	switch {
	case s.Loading && len(s.Items) == 0:
		b.WriteString("Loading users...\n")
	case len(s.Items) == 0:
		b.WriteString(empty("No users found", "Get started by creating a new user."))
	default:
		actions := Actions(s).String()
		rows := make([][]string, len(s.Items))
		for i, u := range s.Items {
			rows[i] = []string{
				strconv.FormatInt(u.ID, 10),
				Initial(u.Name) + " " + u.Name,
				fmt.Sprintf("@%s • %s", u.Username, u.Email),
				actions,
			}
		}
		b.WriteString(render([]string{"ID", "NAME", "CONTACT", "ACTIONS"}, rows))
	}
	return b.String()
}

// Posts renders the posts view. filterUserID is the selected author, or 0
// for all posts.
func Posts(s state.State[client.Post], users []client.User, filterUserID int64) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Posts"))
	if filterUserID > 0 {
		b.WriteString(mutedStyle.Render(" by " + Author(filterUserID, users)))
	}
	b.WriteString("\n")
	writeAlert(&b, s.Error)

	switch {
	case s.Loading && len(s.Items) == 0:
		b.WriteString("Loading posts...\n")
	case len(s.Items) == 0:
		hint := "Get started by creating a new post."
		if filterUserID > 0 {
			hint = "This user has no posts yet."
		}
		b.WriteString(empty("No posts found", hint))
	default:
		actions := Actions(s).String()
		rows := make([][]string, len(s.Items))
		for i, p := range s.Items {
			rows[i] = []string{
				strconv.FormatInt(p.ID, 10),
				p.Title,
				Author(p.UserID, users),
				actions,
			}
		}
		b.WriteString(render([]string{"ID", "TITLE", "AUTHOR", "ACTIONS"}, rows))
	}
	return b.String()
}

// CreatePostLabel is the create action label; posts need an author.
func CreatePostLabel(users []client.User) string {
	if len(users) == 0 {
		return "Create users first"
	}
	return "Create new post"
}

func writeAlert(b *strings.Builder, msg string) {
	if a := Alert(msg); a != "" {
		b.WriteString(a)
		b.WriteString("\n")
	}
}

func empty(title, hint string) string {
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), mutedStyle.Render(hint)) + "\n"
}

func render(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.Render() + "\n"
}
