// Package cli implements the interactive terminal front end of the service.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"user-post-service/pkg/client"
	"user-post-service/pkg/client/state"
	"user-post-service/pkg/logger"
)

// errReported marks failures whose message was already shown to the user.
var errReported = errors.New("reported")

func reported(msg string) error {
	return fmt.Errorf("%w: %s", errReported, msg)
}

// env is the per-invocation wiring shared by all subcommands.
type env struct {
	out     io.Writer
	prompt  prompter
	log     *zap.Logger
	server  string
	verbose bool
	client  *client.Client
	users   *state.Users
	posts   *state.Posts
}

// NewRootCmd builds the command tree. Output goes to out; logs go to stderr.
func NewRootCmd(out io.Writer) *cobra.Command {
	return newRootCmd(out, huhPrompter{}, nil)
}

func newRootCmd(out io.Writer, p prompter, log *zap.Logger) *cobra.Command {
	e := &env{out: out, prompt: p, log: log}

	root := &cobra.Command{
		Use:   "upctl",
		Short: "Manage users and posts on a user-post-service server",
		Long: `upctl lists, creates, edits and deletes users and posts.

Commands that need input open an interactive form when the matching flags
are not given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.init()
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&e.server, "server", client.DefaultBaseURL, "Server base URL")
	root.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "Log debug output to stderr")

	root.AddCommand(newUsersCmd(e), newPostsCmd(e), newStatusCmd(e))
	return root
}

func (e *env) init() error {
	if e.log == nil {
		level := "warn"
		if e.verbose {
			level = "debug"
		}
		log, err := logger.NewWithConfig(logger.Config{Level: level, Format: "console", OutputPath: "stderr"})
		if err != nil {
			return fmt.Errorf("failed to init logger: %w", err)
		}
		e.log = log
	}

	e.client = client.New(e.server, client.WithNotifier(newToastNotifier(e.out)))
	e.users = state.NewUsers(e.client.Users())
	e.posts = state.NewPosts(e.client.Posts())
	e.log.Debug("using server", zap.String("url", e.client.BaseURL()))
	return nil
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := NewRootCmd(os.Stdout).Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		return 1
	}
	return 0
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func (e *env) println(s string) {
	fmt.Fprintln(e.out, s)
}
