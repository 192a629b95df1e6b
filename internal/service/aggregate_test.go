package service

import (
	"testing"

	"github.com/Biki-dev/Contrib-Aura-Farming/internal/model"
)

func pr(owner, repo string, number int) model.PullRequest {
	return model.PullRequest{
		Title:  "change",
		Number: number,
		Owner:  owner,
		Repo:   repo,
	}
}

func TestGroupByRepo(t *testing.T) {
	tests := []struct {
		name      string
		input     []model.PullRequest
		wantKeys  []string
		wantSizes map[string]int
	}{
		{
			name:      "empty input yields no groups",
			input:     nil,
			wantKeys:  nil,
			wantSizes: map[string]int{},
		},
		{
			name:      "duplicate repos collapse into one group",
			input:     []model.PullRequest{pr("x", "a", 1), pr("x", "a", 2), pr("y", "b", 3)},
			wantKeys:  []string{"x/a", "y/b"},
			wantSizes: map[string]int{"x/a": 2, "y/b": 1},
		},
		{
			name:      "first occurrence fixes repo order",
			input:     []model.PullRequest{pr("y", "b", 1), pr("x", "a", 2), pr("y", "b", 3)},
			wantKeys:  []string{"y/b", "x/a"},
			wantSizes: map[string]int{"y/b": 2, "x/a": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := GroupByRepo(tt.input)

			if groups.Len() != len(tt.wantKeys) {
				t.Fatalf("expected %d groups, got %d", len(tt.wantKeys), groups.Len())
			}
			for i, key := range groups.Keys() {
				if key != tt.wantKeys[i] {
					t.Errorf("key %d: expected %s, got %s", i, tt.wantKeys[i], key)
				}
			}
			for key, size := range tt.wantSizes {
				group := groups.Get(key)
				if group == nil {
					t.Errorf("missing group %s", key)
					continue
				}
				if len(group.PullRequests) != size {
					t.Errorf("group %s: expected %d records, got %d", key, size, len(group.PullRequests))
				}
			}
		})
	}
}

func TestGroupByRepoPreservesRecordOrder(t *testing.T) {
	input := []model.PullRequest{
		pr("x", "a", 10),
		pr("y", "b", 20),
		pr("x", "a", 11),
		pr("x", "a", 12),
	}

	groups := GroupByRepo(input)

	got := groups.Get("x/a").PullRequests
	want := []int{10, 11, 12}
	if len(got) != len(want) {
		t.Fatalf("expected %d records for x/a, got %d", len(want), len(got))
	}
	for i, number := range want {
		if got[i].Number != number {
			t.Errorf("record %d: expected number %d, got %d", i, number, got[i].Number)
		}
	}
}

func TestGroupByRepoEveryRecordInExactlyOneGroup(t *testing.T) {
	input := []model.PullRequest{
		pr("x", "a", 1), pr("y", "b", 2), pr("z", "c", 3), pr("x", "a", 4), pr("z", "c", 5),
	}

	groups := GroupByRepo(input)

	total := 0
	for _, key := range groups.Keys() {
		total += len(groups.Get(key).PullRequests)
	}
	if total != len(input) {
		t.Errorf("expected %d records across groups, got %d", len(input), total)
	}
}
