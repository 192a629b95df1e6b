package service

import (
	"sort"

	"github.com/Biki-dev/Contrib-Aura-Farming/internal/model"
)

// Rank orders repository summaries descending by star count. The sort is
// stable, so repositories with equal stars keep their relative order;
// ranking an already ranked list is a no-op.
func Rank(repos []model.RepoSummary) []model.RepoSummary {
	ranked := make([]model.RepoSummary, len(repos))
	copy(ranked, repos)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Stars > ranked[j].Stars
	})

	return ranked
}
