package git

import (
	"errors"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
)

// Repo holds repository information.
type Repo struct {
	// Root is the working tree root directory; every git command runs here.
	Root string
}

// Discover walks upward from dir to the enclosing repository and returns
// its working tree root.
func Discover(dir string) (*Repo, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	repo, err := openRepository(abs)
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		// A bare repository has no .git directory for the upward walk to
		// find, so dir itself may be the repository.
		repo, err = gogit.PlainOpen(abs)
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, ErrNotARepository
		}
	}
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, gogit.ErrIsBareRepository) {
			return nil, ErrNoWorkingDirectory
		}
		return nil, err
	}

	root := wt.Filesystem.Root()
	// Resolve symlinks (macOS /var -> /private/var) so paths compare
	// equal to the ones git prints.
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}
	return &Repo{Root: root}, nil
}

// openRepository opens the repository enclosing path, following the .git
// file of linked worktrees to the shared object store.
func openRepository(path string) (*gogit.Repository, error) {
	return gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
}
