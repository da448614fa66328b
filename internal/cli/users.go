package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"user-post-service/pkg/client/form"
	"user-post-service/pkg/client/view"
)

func newUsersCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
	}
	cmd.AddCommand(
		newUsersListCmd(e),
		newUsersCreateCmd(e),
		newUsersEditCmd(e),
		newUsersDeleteCmd(e),
	)
	return cmd
}

func newUsersListCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := e.users.Snapshot(cmd.Context())
			e.println(view.Users(s))
			if s.Error != "" {
				e.log.Warn("failed to load users", zap.String("error", s.Error))
				return reported(s.Error)
			}
			return nil
		},
	}
}

type userFlags struct {
	name, username, email string
}

func (f *userFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Full name")
	cmd.Flags().StringVar(&f.username, "username", "", "Username")
	cmd.Flags().StringVar(&f.email, "email", "", "Email address")
}

// apply copies the flags that were set onto the form and reports whether
// any were.
func (f *userFlags) apply(cmd *cobra.Command, uf *form.User) bool {
	changed := false
	if cmd.Flags().Changed("name") {
		uf.Name, changed = f.name, true
	}
	if cmd.Flags().Changed("username") {
		uf.Username, changed = f.username, true
	}
	if cmd.Flags().Changed("email") {
		uf.Email, changed = f.email, true
	}
	return changed
}

func newUsersCreateCmd(e *env) *cobra.Command {
	var flags userFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uf := form.NewUser(nil)
			if !flags.apply(cmd, uf) {
				if err := e.prompt.User(uf); err != nil {
					return err
				}
			}
			if errs := uf.Validate(); errs != nil {
				return errs
			}

			ctx := cmd.Context()
			if _, ok := e.users.Create(ctx, uf.CreateData()); !ok {
				return reported(e.users.Snapshot(ctx).Error)
			}
			e.println(view.Users(e.users.Snapshot(ctx)))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newUsersEditCmd(e *env) *cobra.Command {
	var flags userFlags
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			u, err := e.client.Users().Get(ctx, id)
			if err != nil {
				return err
			}

			uf := form.NewUser(u)
			if !flags.apply(cmd, uf) {
				if err := e.prompt.User(uf); err != nil {
					return err
				}
			}
			if errs := uf.Validate(); errs != nil {
				return errs
			}

			if _, ok := e.users.Update(ctx, id, uf.UpdateData()); !ok {
				return reported(e.users.Snapshot(ctx).Error)
			}
			e.println(view.Users(e.users.Snapshot(ctx)))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newUsersDeleteCmd(e *env) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user",
		Long:  "Delete a user. The user's posts are kept.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !yes {
				ok, err := e.prompt.Confirm("Delete user #" + formatID(id) + "?")
				if err != nil || !ok {
					return err
				}
			}

			ctx := cmd.Context()
			if !e.users.Delete(ctx, id) {
				return reported(e.users.Snapshot(ctx).Error)
			}
			e.println(view.Users(e.users.Snapshot(ctx)))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}
