package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/henri123lemoine/gitsy/internal/app"
	"github.com/henri123lemoine/gitsy/internal/config"
	"github.com/henri123lemoine/gitsy/internal/debug"
	"github.com/henri123lemoine/gitsy/internal/git"
)

func newRootCommand() *cobra.Command {
	var debugLog string

	root := &cobra.Command{
		Use:           "gitsy",
		Short:         "Interactive Git worktree manager",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if debugLog != "" {
				return debug.Enable(debugLog)
			}
			return debug.EnableFromEnv()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&debugLog, "debug-log", "", "Append debug output to this file (or set "+debug.EnvVar+")")

	root.AddCommand(newListCommand())
	return root
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print branches with worktrees in the workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

// openWorkspace discovers the repository around the working directory.
func openWorkspace() (*git.Repo, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cannot determine working directory: %w", err)
	}
	repo, err := git.Discover(cwd)
	if err != nil {
		return nil, err
	}
	debug.Logf("repository root %s", repo.Root)
	return repo, nil
}

// errNoTerminal is returned when the interactive UI is started without a terminal.
var errNoTerminal = errors.New("interactive mode needs a terminal (use gitsy list for scripts)")

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func runInteractive(ctx context.Context) error {
	if !isTerminal(os.Stdin) {
		return errNoTerminal
	}

	repo, err := openWorkspace()
	if err != nil {
		return err
	}

	cfg, created, err := config.LoadOrCreate(repo.Root, func() (string, error) {
		return app.RunSetup(repo.Root, tea.WithAltScreen())
	})
	if err != nil {
		return err
	}
	if created {
		debug.Logf("created %s with worktree_path %q", config.Path(repo.Root), cfg.WorktreePath)
	}

	worktrees := git.NewWorktrees(repo.Root, cfg.WorkspaceRoot(repo.Root))
	model := app.New(ctx, worktrees, worktrees.WorkspaceRoot())

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	}
	return nil
}

func runList(ctx context.Context, out io.Writer) error {
	repo, err := openWorkspace()
	if err != nil {
		return err
	}

	cfg, err := config.Load(repo.Root)
	if err != nil {
		if errors.Is(err, config.ErrNotFound) {
			return fmt.Errorf("%w (run gitsy once to set it up)", err)
		}
		return err
	}

	worktrees := git.NewWorktrees(repo.Root, cfg.WorkspaceRoot(repo.Root))
	branches, err := worktrees.ListWorkspaceBranches(ctx)
	if err != nil {
		return err
	}
	for _, b := range branches {
		fmt.Fprintln(out, b)
	}
	return nil
}
