// Package service contains the aggregation pipeline: grouping merged
// pull requests by repository, enriching the repositories concurrently,
// ranking them for display, and orchestrating a run.
package service

import (
	"github.com/Biki-dev/Contrib-Aura-Farming/internal/model"
)

// RepoGroup is the set of pull requests a user merged into one
// repository, in the order the paginated search returned them.
type RepoGroup struct {
	Owner        string
	Repo         string
	PullRequests []model.PullRequest
}

// Key returns the "owner/repo" grouping key.
func (g *RepoGroup) Key() string {
	return g.Owner + "/" + g.Repo
}

// RepoGroups maps "owner/repo" keys to groups while remembering the
// order in which repositories were first seen.
type RepoGroups struct {
	keys   []string
	groups map[string]*RepoGroup
}

// GroupByRepo groups pull request records by owning repository. It is a
// total function: every record lands in exactly one group, groups keep
// first-seen order, and records keep their relative order within a group.
func GroupByRepo(prs []model.PullRequest) *RepoGroups {
	rg := &RepoGroups{groups: make(map[string]*RepoGroup)}

	for _, pr := range prs {
		key := pr.RepoKey()
		group, ok := rg.groups[key]
		if !ok {
			group = &RepoGroup{Owner: pr.Owner, Repo: pr.Repo}
			rg.groups[key] = group
			rg.keys = append(rg.keys, key)
		}
		group.PullRequests = append(group.PullRequests, pr)
	}

	return rg
}

// Len returns the number of distinct repositories.
func (rg *RepoGroups) Len() int {
	return len(rg.keys)
}

// Keys returns the repository keys in first-seen order.
func (rg *RepoGroups) Keys() []string {
	return rg.keys
}

// Get returns the group for a repository key, or nil.
func (rg *RepoGroups) Get(key string) *RepoGroup {
	return rg.groups[key]
}
