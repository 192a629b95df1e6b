package ghclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v57/github"

	"github.com/Biki-dev/Contrib-Aura-Farming/internal/log"
	"github.com/Biki-dev/Contrib-Aura-Farming/internal/model"
)

const (
	// searchPageSize is the fixed page size for merged-PR search requests.
	searchPageSize = 100
	// searchPageCap bounds worst-case request volume for high-activity
	// accounts: at most 5 pages (500 records) per run, never configurable.
	searchPageCap = 5
)

// SearchMergedPRs fetches merged pull requests authored by user, page by
// page, until a short page signals the end of results or the page cap is
// reached. A failure on any page aborts the whole fetch; no partial
// results are returned.
func (c *Client) SearchMergedPRs(ctx context.Context, user string) ([]model.PullRequest, error) {
	query := fmt.Sprintf("type:pr author:%s is:merged", user)

	opts := &gh.SearchOptions{
		ListOptions: gh.ListOptions{
			PerPage: searchPageSize,
			Page:    1,
		},
	}

	var prs []model.PullRequest

	for opts.Page <= searchPageCap {
		log.Debug("searching merged PRs", "user", user, "page", opts.Page)

		result, _, err := c.client.Search.Issues(ctx, query, opts)
		if err != nil {
			return nil, mapError(err)
		}

		for _, issue := range result.Issues {
			prs = append(prs, issueToPullRequest(issue))
		}

		if len(result.Issues) < searchPageSize {
			break
		}
		opts.Page++
	}

	log.Info("merged PR search complete", "user", user, "count", len(prs))
	return prs, nil
}

// issueToPullRequest converts a search result item to a pull request
// record. An unparsable repository URL yields the unknown/unknown
// sentinel rather than dropping the record.
func issueToPullRequest(issue *gh.Issue) model.PullRequest {
	owner, repo, err := ParseRepoURL(issue.GetRepositoryURL())
	if err != nil {
		log.Warn("unparsable repository URL", "url", issue.GetRepositoryURL(), "error", err)
		owner, repo = "unknown", "unknown"
	}

	return model.PullRequest{
		Title:  issue.GetTitle(),
		URL:    issue.GetHTMLURL(),
		Number: issue.GetNumber(),
		Owner:  owner,
		Repo:   repo,
	}
}

// mapError normalizes go-github errors into the typed taxonomy: rate
// limited or forbidden responses become AuthError, rejected queries
// become QueryError, anything else a NetworkError with the status code.
func mapError(err error) error {
	if errors.Is(err, ErrRateLimited) {
		return &AuthError{Status: http.StatusForbidden, Err: err}
	}

	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return &AuthError{Status: http.StatusForbidden, Err: err}
	}
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return &AuthError{Status: http.StatusForbidden, Err: err}
	}

	var respErr *gh.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		switch respErr.Response.StatusCode {
		case http.StatusForbidden, http.StatusTooManyRequests:
			return &AuthError{Status: respErr.Response.StatusCode, Err: err}
		case http.StatusUnprocessableEntity:
			return &QueryError{Err: err}
		default:
			return &NetworkError{Status: respErr.Response.StatusCode, Err: err}
		}
	}

	return &NetworkError{Err: err}
}
