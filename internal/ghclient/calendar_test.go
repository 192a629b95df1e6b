package ghclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestCalendarClient(t *testing.T, handler http.Handler) *CalendarClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return newCalendarClientForEndpoint(server.URL, server.Client())
}

func TestFetchContributionCalendar(t *testing.T) {
	client := newTestCalendarClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": {
				"user": {
					"contributionsCollection": {
						"contributionCalendar": {
							"totalContributions": 6,
							"weeks": [
								{"contributionDays": [
									{"contributionCount": 0, "date": "2024-01-01"},
									{"contributionCount": 2, "date": "2024-01-02"}
								]},
								{"contributionDays": [
									{"contributionCount": 4, "date": "2024-01-08"}
								]}
							]
						}
					}
				}
			}
		}`))
	}))

	cal, err := client.FetchContributionCalendar(context.Background(), "alice", 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cal.Year != 2024 {
		t.Errorf("expected year 2024, got %d", cal.Year)
	}
	if cal.Total != 6 {
		t.Errorf("expected total 6, got %d", cal.Total)
	}
	if len(cal.Days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(cal.Days))
	}

	// Days must stay flattened in week order.
	wantDates := []string{"2024-01-01", "2024-01-02", "2024-01-08"}
	for i, want := range wantDates {
		if cal.Days[i].Date != want {
			t.Errorf("day %d: expected date %s, got %s", i, want, cal.Days[i].Date)
		}
	}
	if cal.Days[2].Count != 4 {
		t.Errorf("expected count 4 on last day, got %d", cal.Days[2].Count)
	}
}

func TestFetchContributionCalendarNoData(t *testing.T) {
	client := newTestCalendarClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": {
				"user": {
					"contributionsCollection": {
						"contributionCalendar": {
							"totalContributions": 0,
							"weeks": []
						}
					}
				}
			}
		}`))
	}))

	_, err := client.FetchContributionCalendar(context.Background(), "ghost", 2024)
	var calErr *CalendarError
	if !errors.As(err, &calErr) {
		t.Fatalf("expected CalendarError, got %T: %v", err, err)
	}
	if !calErr.NoData() {
		t.Errorf("expected no-data error, got %v", calErr)
	}
}

func TestFetchContributionCalendarTransportFailure(t *testing.T) {
	client := newTestCalendarClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := client.FetchContributionCalendar(context.Background(), "alice", 2024)
	var calErr *CalendarError
	if !errors.As(err, &calErr) {
		t.Fatalf("expected CalendarError, got %T: %v", err, err)
	}
	if calErr.NoData() {
		t.Error("transport failure must not be reported as no-data")
	}
	if calErr.Unwrap() == nil {
		t.Error("transport failure should carry the underlying cause")
	}
}

func TestNewCalendarClientRequiresToken(t *testing.T) {
	_, err := NewCalendarClient("")
	var calErr *CalendarError
	if !errors.As(err, &calErr) {
		t.Fatalf("expected CalendarError without token, got %T: %v", err, err)
	}
}
