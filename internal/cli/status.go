package cli

import (
	"github.com/spf13/cobra"

	"user-post-service/pkg/client/view"
)

func newStatusCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show API readiness and collection sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			users, posts := e.loadAll(cmd.Context(), 0)
			e.println(view.Status(users, posts))
			if a := view.Alert(users.Error); a != "" {
				e.println(a)
			}
			if a := view.Alert(posts.Error); a != "" {
				e.println(a)
			}
			return nil
		},
	}
}
