package ghclient

import (
	"errors"
	"fmt"
)

// ErrRateLimited is returned by the transport when the GitHub API rate
// limit has been exhausted before a request is even attempted.
var ErrRateLimited = errors.New("rate limited")

// AuthError indicates a rate-limited or forbidden response. It is
// user-actionable: supplying a personal access token raises the limit.
type AuthError struct {
	Status int
	Err    error
}

func (e *AuthError) Error() string {
	return "GitHub API rate limit reached. Try adding a personal access token"
}

func (e *AuthError) Unwrap() error { return e.Err }

// QueryError indicates the search query itself was rejected, usually
// because the username is malformed.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string {
	return "invalid search query. Check the username"
}

func (e *QueryError) Unwrap() error { return e.Err }

// NetworkError is any other non-success transport response.
type NetworkError struct {
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("GitHub request failed: %d", e.Status)
	}
	return "GitHub request failed"
}

func (e *NetworkError) Unwrap() error { return e.Err }

// CalendarError is a contribution-calendar failure. Reason distinguishes
// "no data" (the calendar payload was empty or missing) from a transport
// failure, which carries the underlying cause.
type CalendarError struct {
	Reason string
	Err    error
}

func (e *CalendarError) Error() string {
	if e.Reason != "" {
		return "contribution calendar: " + e.Reason
	}
	return "contribution calendar fetch failed"
}

func (e *CalendarError) Unwrap() error { return e.Err }

// NoData reports whether the calendar resolved but carried no payload,
// as opposed to failing in transit.
func (e *CalendarError) NoData() bool { return e.Reason == "no data" }
