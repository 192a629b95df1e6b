package service

import (
	"context"
	"sync"

	"github.com/Biki-dev/Contrib-Aura-Farming/internal/log"
	"github.com/Biki-dev/Contrib-Aura-Farming/internal/model"
)

// CalendarFetcher resolves a year of contribution activity for a user.
type CalendarFetcher interface {
	FetchContributionCalendar(ctx context.Context, user string, year int) (*model.ContributionCalendar, error)
}

// CalendarState is the current calendar view: loading, failed, or
// resolved.
type CalendarState struct {
	Loading  bool
	Err      error
	Calendar *model.ContributionCalendar
}

// CalendarSession serializes calendar fetches for changing (user, year)
// parameters. Each Fetch bumps a generation; when a fetch completes it
// applies its result only if no newer fetch has been issued since, so a
// stale in-flight response can never overwrite state for newer
// parameters.
type CalendarSession struct {
	fetcher CalendarFetcher

	mu         sync.Mutex
	generation uint64
	state      CalendarState
}

// NewCalendarSession creates a session backed by the given fetcher.
func NewCalendarSession(fetcher CalendarFetcher) *CalendarSession {
	return &CalendarSession{fetcher: fetcher}
}

// Fetch resolves the calendar for (user, year) and returns the session
// state after this fetch settled. If the parameters changed while the
// fetch was in flight the stale result is dropped and the state of the
// newer fetch is returned instead.
func (s *CalendarSession) Fetch(ctx context.Context, user string, year int) CalendarState {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.state = CalendarState{Loading: true}
	s.mu.Unlock()

	calendar, err := s.fetcher.FetchContributionCalendar(ctx, user, year)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		// A newer fetch superseded this one; suppress the stale result.
		log.Debug("dropping stale calendar response", "user", user, "year", year)
		return s.state
	}

	s.state = CalendarState{Calendar: calendar, Err: err}
	return s.state
}

// State returns the current calendar state.
func (s *CalendarSession) State() CalendarState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
