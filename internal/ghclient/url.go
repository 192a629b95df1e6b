package ghclient

import (
	"fmt"
	"strings"
)

const repoURLPrefix = "https://api.github.com/repos/"

// ParseRepoURL extracts owner and repository name from a GitHub API
// repository URL of the canonical shape
// https://api.github.com/repos/{owner}/{repo}. Anything else is an error;
// callers decide whether to treat that as fatal or fall back to a
// sentinel.
func ParseRepoURL(url string) (owner, repo string, err error) {
	trimmed := strings.TrimPrefix(url, repoURLPrefix)
	if trimmed == url {
		return "", "", fmt.Errorf("not a repository URL: %q", url)
	}

	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("malformed repository URL: %q", url)
	}
	return parts[0], parts[1], nil
}
