package ghclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	gh "github.com/google/go-github/v57/github"
)

// newTestClient returns a Client pointed at a test server.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	ghc := gh.NewClient(server.Client())
	baseURL, err := url.Parse(server.URL + "/")
	if err != nil {
		t.Fatalf("failed to parse test server URL: %v", err)
	}
	ghc.BaseURL = baseURL

	return &Client{client: ghc}, server
}

// searchPage builds a search response with n items referencing repo
// "x/a" starting at the given PR number.
func searchPage(n, startNumber int) []byte {
	type item struct {
		Title         string `json:"title"`
		HTMLURL       string `json:"html_url"`
		Number        int    `json:"number"`
		RepositoryURL string `json:"repository_url"`
	}
	items := make([]item, 0, n)
	for i := 0; i < n; i++ {
		num := startNumber + i
		items = append(items, item{
			Title:         fmt.Sprintf("change %d", num),
			HTMLURL:       fmt.Sprintf("https://github.com/x/a/pull/%d", num),
			Number:        num,
			RepositoryURL: "https://api.github.com/repos/x/a",
		})
	}
	body, _ := json.Marshal(map[string]any{
		"total_count":        n,
		"incomplete_results": false,
		"items":              items,
	})
	return body
}

func TestSearchMergedPRsStopsOnShortPage(t *testing.T) {
	pageSizes := []int{100, 100, 37}
	var requests int

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page == 0 {
			page = 1
		}
		if page > len(pageSizes) {
			t.Errorf("unexpected request for page %d", page)
			http.Error(w, "no such page", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(searchPage(pageSizes[page-1], (page-1)*100+1))
	}))

	prs, err := client.SearchMergedPRs(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prs) != 237 {
		t.Errorf("expected 237 records, got %d", len(prs))
	}
	if requests != 3 {
		t.Errorf("expected 3 page requests, got %d", requests)
	}
}

func TestSearchMergedPRsStopsAtPageCap(t *testing.T) {
	var requests int

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page == 0 {
			page = 1
		}
		// Every page is full; a 6th page would exist if asked for.
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(searchPage(100, (page-1)*100+1))
	}))

	prs, err := client.SearchMergedPRs(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prs) != 500 {
		t.Errorf("expected 500 records at the safety cap, got %d", len(prs))
	}
	if requests != 5 {
		t.Errorf("expected exactly 5 page requests, got %d", requests)
	}
}

func TestSearchMergedPRsPreservesOrder(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(searchPage(3, 1))
	}))

	prs, err := client.SearchMergedPRs(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, pr := range prs {
		if pr.Number != i+1 {
			t.Errorf("record %d: expected number %d, got %d", i, i+1, pr.Number)
		}
		if pr.Owner != "x" || pr.Repo != "a" {
			t.Errorf("record %d: expected repo x/a, got %s/%s", i, pr.Owner, pr.Repo)
		}
	}
}

func TestSearchMergedPRsErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		headers map[string]string
		check   func(t *testing.T, err error)
	}{
		{
			name:   "forbidden maps to AuthError",
			status: http.StatusForbidden,
			check: func(t *testing.T, err error) {
				var authErr *AuthError
				if !errors.As(err, &authErr) {
					t.Errorf("expected AuthError, got %T: %v", err, err)
				}
			},
		},
		{
			name:    "rate limited maps to AuthError",
			status:  http.StatusForbidden,
			headers: map[string]string{"X-RateLimit-Remaining": "0", "X-RateLimit-Limit": "60", "X-RateLimit-Reset": "9999999999"},
			check: func(t *testing.T, err error) {
				var authErr *AuthError
				if !errors.As(err, &authErr) {
					t.Errorf("expected AuthError, got %T: %v", err, err)
				}
			},
		},
		{
			name:   "unprocessable query maps to QueryError",
			status: http.StatusUnprocessableEntity,
			check: func(t *testing.T, err error) {
				var queryErr *QueryError
				if !errors.As(err, &queryErr) {
					t.Errorf("expected QueryError, got %T: %v", err, err)
				}
			},
		},
		{
			name:   "server error maps to NetworkError",
			status: http.StatusBadGateway,
			check: func(t *testing.T, err error) {
				var netErr *NetworkError
				if !errors.As(err, &netErr) {
					t.Errorf("expected NetworkError, got %T: %v", err, err)
					return
				}
				if netErr.Status != http.StatusBadGateway {
					t.Errorf("expected status 502, got %d", netErr.Status)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset global state so a prior rate-limit test can't bleed over.
			globalRateLimitState.SetLimited(false, time.Time{})

			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tt.headers {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"message":"nope"}`))
			}))

			_, err := client.SearchMergedPRs(context.Background(), "alice")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			tt.check(t, err)
		})
	}
}

func TestIssueToPullRequestSentinel(t *testing.T) {
	issue := &gh.Issue{
		Title:         gh.String("mystery change"),
		Number:        gh.Int(7),
		RepositoryURL: gh.String("https://example.com/not-a-repo"),
	}

	pr := issueToPullRequest(issue)
	if pr.Owner != "unknown" || pr.Repo != "unknown" {
		t.Errorf("expected unknown/unknown sentinel, got %s/%s", pr.Owner, pr.Repo)
	}
	if pr.Title != "mystery change" || pr.Number != 7 {
		t.Errorf("record fields not carried over: %+v", pr)
	}
}
