package ghclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/Biki-dev/Contrib-Aura-Farming/internal/log"
	"github.com/Biki-dev/Contrib-Aura-Farming/internal/model"
)

// CalendarClient fetches contribution calendars over the GitHub GraphQL
// API. Unlike the REST queries, GraphQL rejects anonymous access, so a
// token is required.
type CalendarClient struct {
	gql *githubv4.Client
}

// NewCalendarClient creates a calendar client from a personal access
// token.
func NewCalendarClient(token string) (*CalendarClient, error) {
	if token == "" {
		return nil, &CalendarError{Reason: "a personal access token is required for contribution data"}
	}

	waiter, err := github_ratelimit.NewRateLimitWaiter(nil)
	if err != nil {
		return nil, &CalendarError{Reason: "rate limit waiter setup failed", Err: err}
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   waiter,
			Source: ts,
		},
	}

	return &CalendarClient{gql: githubv4.NewClient(httpClient)}, nil
}

// newCalendarClientForEndpoint targets a non-default GraphQL endpoint.
// Used by tests with an httptest server.
func newCalendarClientForEndpoint(url string, httpClient *http.Client) *CalendarClient {
	return &CalendarClient{gql: githubv4.NewEnterpriseClient(url, httpClient)}
}

// contributionsQuery mirrors the contributionsCollection GraphQL shape.
type contributionsQuery struct {
	User struct {
		ContributionsCollection struct {
			ContributionCalendar struct {
				TotalContributions int
				Weeks              []struct {
					ContributionDays []struct {
						ContributionCount int
						Date              string
					}
				}
			}
		} `graphql:"contributionsCollection(from: $from, to: $to)"`
	} `graphql:"user(login: $login)"`
}

// FetchContributionCalendar resolves the contribution calendar of user
// for a calendar year. An empty or missing payload is reported as a
// distinct "no data" CalendarError so callers can tell it apart from a
// transport failure; a user with zero contributions still yields a valid
// calendar with all-zero days.
func (c *CalendarClient) FetchContributionCalendar(ctx context.Context, user string, year int) (*model.ContributionCalendar, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)

	variables := map[string]interface{}{
		"login": githubv4.String(user),
		"from":  githubv4.DateTime{Time: from},
		"to":    githubv4.DateTime{Time: to},
	}

	var q contributionsQuery
	if err := c.gql.Query(ctx, &q, variables); err != nil {
		return nil, &CalendarError{Err: fmt.Errorf("query for %s/%d: %w", user, year, err)}
	}

	calendar := q.User.ContributionsCollection.ContributionCalendar
	if len(calendar.Weeks) == 0 {
		return nil, &CalendarError{Reason: "no data"}
	}

	// Flatten week by week; the API returns days in chronological order
	// and every day must be preserved as-is.
	var days []model.ContributionDay
	for _, week := range calendar.Weeks {
		for _, day := range week.ContributionDays {
			days = append(days, model.ContributionDay{
				Date:  day.Date,
				Count: day.ContributionCount,
			})
		}
	}

	log.Debug("contribution calendar fetched", "user", user, "year", year, "days", len(days), "total", calendar.TotalContributions)

	return &model.ContributionCalendar{
		Year:  year,
		Total: calendar.TotalContributions,
		Days:  days,
	}, nil
}
