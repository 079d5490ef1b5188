package gitinfo

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrNoCommits is returned for a repository whose HEAD is unborn.
var ErrNoCommits = errors.New("repository has no commits")

// Resolver stamps reports with the commit their bundle was evaluated at.
// Bundles sit below the repository root, so the lookup walks up from the
// bundle directory until it finds a .git.
type Resolver struct{}

func New() *Resolver {
	return &Resolver{}
}

func (r *Resolver) CommitHash(bundlePath string) (string, error) {
	repo, err := git.PlainOpenWithOptions(bundlePath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("no repository above %s: %w", bundlePath, err)
	}

	ref, err := repo.Head()
	switch {
	case errors.Is(err, plumbing.ErrReferenceNotFound):
		return "", fmt.Errorf("%s: %w", bundlePath, ErrNoCommits)
	case err != nil:
		return "", fmt.Errorf("resolving HEAD above %s: %w", bundlePath, err)
	}
	return ref.Hash().String(), nil
}
