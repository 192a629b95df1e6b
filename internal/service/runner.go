package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Biki-dev/Contrib-Aura-Farming/internal/ghclient"
	"github.com/Biki-dev/Contrib-Aura-Farming/internal/log"
	"github.com/Biki-dev/Contrib-Aura-Farming/internal/model"
)

// Stage identifies a pipeline phase for progress reporting.
type Stage int

const (
	StageSearch Stage = iota // fetching merged PRs
	StageProfile             // fetching the user profile
	StageEnrich              // fetching repository metadata
	StageRank                // ordering the final list
)

// ProgressFunc is called as pipeline stages complete. The count carries
// stage-specific cardinality (records fetched, repos enriched).
type ProgressFunc func(stage Stage, count int)

// GitHubClient is the full client surface the runner depends on.
type GitHubClient interface {
	SearchMergedPRs(ctx context.Context, user string) ([]model.PullRequest, error)
	GetRepoDetails(ctx context.Context, owner, repo string) (*ghclient.RepoDetails, error)
	GetProfile(ctx context.Context, user string) (*model.Profile, error)
}

// Result is one complete pipeline run. A nil Profile means the profile
// lookup failed; that is a valid, degraded state and not an error.
type Result struct {
	Profile     *model.Profile      `json:"profile,omitempty"`
	MergedCount int                 `json:"mergedCount"`
	Repos       []model.RepoSummary `json:"repos"`
}

// Runner sequences the pipeline: merged-PR search and best-effort
// profile lookup run concurrently, then aggregation, enrichment, and
// ranking. Runners are stateless between runs; every Run re-fetches from
// scratch.
type Runner struct {
	client       GitHubClient
	onProgress   ProgressFunc
	excludeRepos map[string]bool
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithProgress sets a progress callback.
func WithProgress(fn ProgressFunc) RunnerOption {
	return func(r *Runner) {
		r.onProgress = fn
	}
}

// WithExcludedRepos drops the named "owner/repo" keys from the run.
func WithExcludedRepos(repos []string) RunnerOption {
	return func(r *Runner) {
		for _, repo := range repos {
			r.excludeRepos[repo] = true
		}
	}
}

// NewRunner creates a Runner backed by the given client.
func NewRunner(client GitHubClient, opts ...RunnerOption) *Runner {
	r := &Runner{
		client:       client,
		excludeRepos: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Runner) report(stage Stage, count int) {
	if r.onProgress != nil {
		r.onProgress(stage, count)
	}
}

// Run executes one pipeline run for a user. A search failure aborts the
// run; a profile failure is logged and swallowed, leaving Result.Profile
// nil.
func (r *Runner) Run(ctx context.Context, user string) (*Result, error) {
	var (
		prs     []model.PullRequest
		profile *model.Profile
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		prs, err = r.client.SearchMergedPRs(gctx, user)
		if err != nil {
			return err
		}
		r.report(StageSearch, len(prs))
		return nil
	})

	g.Go(func() error {
		p, err := r.client.GetProfile(gctx, user)
		if err != nil {
			// Best effort: the repository list does not depend on it.
			log.Warn("profile fetch failed", "user", user, "error", err)
			return nil
		}
		profile = p
		r.report(StageProfile, 1)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	mergedCount := len(prs)
	prs = r.filterExcluded(prs)

	groups := GroupByRepo(prs)
	summaries := Enrich(ctx, r.client, groups)
	r.report(StageEnrich, len(summaries))

	ranked := Rank(summaries)
	r.report(StageRank, len(ranked))

	return &Result{
		Profile:     profile,
		MergedCount: mergedCount,
		Repos:       ranked,
	}, nil
}

// filterExcluded drops records for repositories the config excludes.
func (r *Runner) filterExcluded(prs []model.PullRequest) []model.PullRequest {
	if len(r.excludeRepos) == 0 {
		return prs
	}

	kept := prs[:0]
	for _, pr := range prs {
		if r.excludeRepos[pr.RepoKey()] {
			continue
		}
		kept = append(kept, pr)
	}
	return kept
}
