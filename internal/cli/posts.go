package cli

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"user-post-service/pkg/client"
	"user-post-service/pkg/client/form"
	"user-post-service/pkg/client/state"
	"user-post-service/pkg/client/view"
)

func newPostsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Manage posts",
	}
	cmd.AddCommand(
		newPostsListCmd(e),
		newPostsCreateCmd(e),
		newPostsEditCmd(e),
		newPostsDeleteCmd(e),
	)
	return cmd
}

// loadAll fetches users and posts concurrently. userID > 0 limits the posts
// to one author. Failures end up in the returned states.
func (e *env) loadAll(ctx context.Context, userID int64) (state.State[client.User], state.State[client.Post]) {
	var (
		users state.State[client.User]
		posts state.State[client.Post]
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		users = e.users.Snapshot(ctx)
		return nil
	})
	g.Go(func() error {
		if userID > 0 {
			e.posts.FilterByUser(ctx, userID)
		}
		posts = e.posts.Snapshot(ctx)
		return nil
	})
	_ = g.Wait()

	if users.Error != "" {
		e.log.Warn("failed to load users", zap.String("error", users.Error))
	}
	if posts.Error != "" {
		e.log.Warn("failed to load posts", zap.String("error", posts.Error))
	}
	return users, posts
}

func newPostsListCmd(e *env) *cobra.Command {
	var userID int64
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posts, optionally of one user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			users, posts := e.loadAll(cmd.Context(), userID)
			e.println(view.Posts(posts, users.Items, userID))
			if posts.Error != "" {
				return reported(posts.Error)
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "Only show posts of this user id")
	return cmd
}

func newPostsCreateCmd(e *env) *cobra.Command {
	var (
		title  string
		userID int64
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			users := e.users.Snapshot(ctx)
			if users.Error != "" {
				return reported(users.Error)
			}
			if len(users.Items) == 0 {
				e.println(view.CreatePostLabel(users.Items))
				return reported("no users")
			}

			pf := form.NewPost(nil, users.Items)
			titleSet, userSet := cmd.Flags().Changed("title"), cmd.Flags().Changed("user")
			if titleSet {
				pf.Title = title
			}
			if userSet {
				pf.UserID = userID
			}
			if !titleSet && !userSet {
				if err := e.prompt.Post(pf, users.Items); err != nil {
					return err
				}
			}
			if errs := pf.Validate(); errs != nil {
				return errs
			}

			if _, ok := e.posts.Create(ctx, pf.CreateData()); !ok {
				return reported(e.posts.Snapshot(ctx).Error)
			}
			e.println(view.Posts(e.posts.Snapshot(ctx), users.Items, 0))
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Post title")
	cmd.Flags().Int64Var(&userID, "user", 0, "Author user id (defaults to the first user)")
	return cmd
}

func newPostsEditCmd(e *env) *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a post's title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			p, err := e.client.Posts().Get(ctx, id)
			if err != nil {
				return err
			}

			pf := form.NewPost(p, nil)
			if cmd.Flags().Changed("title") {
				pf.Title = title
			} else if err := e.prompt.Post(pf, nil); err != nil {
				return err
			}
			if errs := pf.Validate(); errs != nil {
				return errs
			}

			if _, ok := e.posts.Update(ctx, id, pf.UpdateData()); !ok {
				return reported(e.posts.Snapshot(ctx).Error)
			}
			users, posts := e.loadAll(ctx, 0)
			e.println(view.Posts(posts, users.Items, 0))
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "New title")
	return cmd
}

func newPostsDeleteCmd(e *env) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !yes {
				ok, err := e.prompt.Confirm("Delete post #" + formatID(id) + "?")
				if err != nil || !ok {
					return err
				}
			}

			ctx := cmd.Context()
			if !e.posts.Delete(ctx, id) {
				return reported(e.posts.Snapshot(ctx).Error)
			}
			users, posts := e.loadAll(ctx, 0)
			e.println(view.Posts(posts, users.Items, 0))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}
