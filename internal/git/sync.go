package git

import (
	"context"
	"errors"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/henri123lemoine/gitsy/internal/debug"
)

// IsInSync reports whether a local branch points at the same commit as
// its upstream. A branch without an upstream, or whose upstream has never
// been fetched, has nothing to compare against and counts as in sync.
func (w *Worktrees) IsInSync(ctx context.Context, branch string) (bool, error) {
	defer debug.Timed("sync check " + branch)()

	if err := ctx.Err(); err != nil {
		return false, err
	}

	repo, err := openRepository(w.repoRoot)
	if err != nil {
		return false, &ResolutionError{Ref: w.repoRoot, Err: err}
	}
	return isInSync(repo, branch)
}

func isInSync(repo *gogit.Repository, branch string) (bool, error) {
	localName := plumbing.NewBranchReferenceName(branch)
	local, err := repo.Reference(localName, true)
	if err != nil {
		return false, &ResolutionError{Ref: localName.String(), Err: err}
	}

	upstreamName, err := upstreamReferenceName(repo, branch)
	if err != nil {
		return false, err
	}
	if upstreamName == "" {
		debug.Logf("%s has no upstream", branch)
		return true, nil
	}

	upstream, err := repo.Reference(upstreamName, true)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		debug.Logf("%s tracks %s, which does not exist locally", branch, upstreamName)
		return true, nil
	}
	if err != nil {
		return false, &ResolutionError{Ref: upstreamName.String(), Err: err}
	}

	debug.Logf("%s at %s, %s at %s", branch, local.Hash(), upstreamName, upstream.Hash())
	return local.Hash() == upstream.Hash(), nil
}

// upstreamReferenceName maps the branch.<name>.remote/merge config of a
// branch to the ref holding its upstream commit. It returns "" when no
// upstream is configured.
func upstreamReferenceName(repo *gogit.Repository, branch string) (plumbing.ReferenceName, error) {
	cfg, err := repo.Branch(branch)
	if errors.Is(err, gogit.ErrBranchNotFound) {
		return "", nil
	}
	if err != nil {
		return "", &ResolutionError{Ref: "branch." + branch, Err: err}
	}

	if cfg.Remote == "" || cfg.Merge == "" {
		return "", nil
	}
	// "." tracks another local branch.
	if cfg.Remote == "." {
		return cfg.Merge, nil
	}
	return remoteTrackingName(repo, cfg.Remote, cfg.Merge)
}

// remoteTrackingName maps a ref on a remote to the local ref it is fetched
// into, following the remote's fetch refspecs. It returns "" when no
// refspec fetches merge. A remote missing from the config falls back to
// the default refs/remotes/<remote>/ layout.
func remoteTrackingName(repo *gogit.Repository, remoteName string, merge plumbing.ReferenceName) (plumbing.ReferenceName, error) {
	remote, err := repo.Remote(remoteName)
	if errors.Is(err, gogit.ErrRemoteNotFound) {
		return plumbing.NewRemoteReferenceName(remoteName, merge.Short()), nil
	}
	if err != nil {
		return "", &ResolutionError{Ref: "remote." + remoteName, Err: err}
	}

	for _, spec := range remote.Config().Fetch {
		if spec.Match(merge) {
			return spec.Dst(merge), nil
		}
	}
	debug.Logf("no fetch refspec of %s matches %s", remoteName, merge)
	return "", nil
}
