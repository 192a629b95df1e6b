package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/Biki-dev/Contrib-Aura-Farming/internal/ghclient"
	"github.com/Biki-dev/Contrib-Aura-Farming/internal/log"
	"github.com/Biki-dev/Contrib-Aura-Farming/internal/model"
)

// FallbackDescription marks a repository whose metadata lookup failed.
const FallbackDescription = "(unable to fetch description)"

// RepoFetcher is the slice of the GitHub client the enrichment fan-out
// needs. The interface enables mocking in unit tests.
type RepoFetcher interface {
	GetRepoDetails(ctx context.Context, owner, repo string) (*ghclient.RepoDetails, error)
}

// Enrich fetches metadata for every aggregated repository concurrently
// and merges it with the grouped pull requests. Lookups are fault
// isolated per repository: a failed lookup produces a fallback summary
// instead of dropping the repository, so the output cardinality always
// equals the input cardinality. Enrich waits for every lookup to settle
// before returning; results are positioned by first-seen group order.
func Enrich(ctx context.Context, fetcher RepoFetcher, groups *RepoGroups) []model.RepoSummary {
	keys := groups.Keys()
	summaries := make([]model.RepoSummary, len(keys))

	var wg sync.WaitGroup
	for i, key := range keys {
		group := groups.Get(key)

		wg.Add(1)
		go func(i int, group *RepoGroup) {
			defer wg.Done()
			summaries[i] = enrichOne(ctx, fetcher, group)
		}(i, group)
	}
	wg.Wait()

	return summaries
}

// enrichOne merges one group with its metadata lookup result, or a
// fallback stub when the lookup fails.
func enrichOne(ctx context.Context, fetcher RepoFetcher, group *RepoGroup) model.RepoSummary {
	details, err := fetcher.GetRepoDetails(ctx, group.Owner, group.Repo)
	if err != nil {
		log.Debug("using fallback for repository", "repo", group.Key(), "error", err)
		return model.RepoSummary{
			FullName:     group.Key(),
			HTMLURL:      fmt.Sprintf("https://github.com/%s/%s", group.Owner, group.Repo),
			Description:  FallbackDescription,
			Stars:        0,
			PullRequests: group.PullRequests,
			Fallback:     true,
		}
	}

	return model.RepoSummary{
		FullName:     group.Key(),
		HTMLURL:      details.HTMLURL,
		Description:  details.Description,
		Stars:        details.Stars,
		PullRequests: group.PullRequests,
	}
}
