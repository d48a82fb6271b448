// Package git reads repository metadata with go-git so forms can start from
// the checkout the user is standing in.
package git

import (
	"strings"

	"emperror.dev/errors"
	"github.com/go-git/go-git/v5"
)

const DEFAULT_REMOTE_NAME = "origin"

// Origin identifies a GitHub repository by owner and name.
type Origin struct {
	Owner string
	Repo  string
}

// Slug is the owner/repo form the stats script expects.
func (o Origin) Slug() string {
	return o.Owner + "/" + o.Repo
}

// DetectOrigin finds the repository enclosing dir and returns the owner/repo
// of its origin remote.
func DetectOrigin(dir string) (Origin, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return Origin{}, errors.Wrap(err, "failed to open git repo")
	}

	remote, err := repo.Remote(DEFAULT_REMOTE_NAME)
	if err != nil {
		return Origin{}, errors.Wrapf(err, "failed to read remote %s", DEFAULT_REMOTE_NAME)
	}

	for _, url := range remote.Config().URLs {
		if origin, ok := ParseRemoteURL(url); ok {
			return origin, nil
		}
	}
	return Origin{}, errors.Errorf("remote %s has no owner/repo URL", DEFAULT_REMOTE_NAME)
}

// ParseRemoteURL extracts owner and repo from HTTPS, ssh:// and scp-style
// remote URLs.
func ParseRemoteURL(url string) (Origin, bool) {
	path := strings.TrimSpace(url)

	switch {
	case strings.Contains(path, "://"):
		_, rest, _ := strings.Cut(path, "://")
		_, path, _ = strings.Cut(rest, "/")
	case strings.Contains(path, ":"):
		// git@github.com:owner/repo.git
		_, path, _ = strings.Cut(path, ":")
	default:
		return Origin{}, false
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Origin{}, false
	}
	return Origin{Owner: parts[0], Repo: parts[1]}, true
}
