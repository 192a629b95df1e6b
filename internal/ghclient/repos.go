package ghclient

import (
	"context"

	"github.com/Biki-dev/Contrib-Aura-Farming/internal/log"
)

// RepoDetails is the subset of repository metadata the enrichment step
// needs for display.
type RepoDetails struct {
	HTMLURL     string
	Description string
	Stars       int
}

// GetRepoDetails fetches metadata for a single repository.
func (c *Client) GetRepoDetails(ctx context.Context, owner, repo string) (*RepoDetails, error) {
	r, _, err := c.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		log.Debug("repository lookup failed", "repo", owner+"/"+repo, "error", err)
		return nil, mapError(err)
	}

	return &RepoDetails{
		HTMLURL:     r.GetHTMLURL(),
		Description: r.GetDescription(),
		Stars:       r.GetStargazersCount(),
	}, nil
}
