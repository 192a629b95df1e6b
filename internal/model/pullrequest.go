// Package model contains the core data structures shared across the
// aggregation pipeline and its consumers.
package model

// PullRequest is a single merged pull request authored by the user.
// Records are immutable once produced by the search pagination driver.
type PullRequest struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Number int    `json:"number"`
	Owner  string `json:"owner"`
	Repo   string `json:"repo"`
}

// RepoKey returns the "owner/repo" key used to group pull requests.
func (p PullRequest) RepoKey() string {
	return p.Owner + "/" + p.Repo
}

// RepoSummary is a repository with the merged pull requests the user
// contributed to it, enriched with metadata from the repository lookup.
// When the lookup fails the summary carries fallback values instead of
// being dropped (see the enrichment fan-out).
type RepoSummary struct {
	FullName     string        `json:"fullName"`
	HTMLURL      string        `json:"htmlUrl"`
	Description  string        `json:"description"`
	Stars        int           `json:"stars"`
	PullRequests []PullRequest `json:"pullRequests"`

	// Fallback is true when repository metadata could not be fetched and
	// the summary holds synthesized values.
	Fallback bool `json:"fallback,omitempty"`
}
