package tui

import "time"

// TaskID identifies a task in the TUI progress display.
type TaskID int

const (
	TaskSearch   TaskID = iota // Searching merged pull requests
	TaskProfile                // Fetching the user profile
	TaskEnrich                 // Enriching repositories with metadata
	TaskRank                   // Ranking results by stars
	TaskCalendar               // Fetching the contribution calendar
)

// TaskStatus represents the current status of a task.
type TaskStatus int

const (
	StatusPending TaskStatus = iota
	StatusRunning
	StatusComplete
	StatusError
	StatusSkipped
)

// Event is the interface for all TUI events.
type Event interface {
	isEvent()
}

// TaskEvent represents an update to a task's status.
type TaskEvent struct {
	Task    TaskID
	Status  TaskStatus
	Message string // Optional message (e.g., "octocat")
	Count   int    // Count of items (e.g., pull requests found)
	Error   error  // Error if status is StatusError
}

func (TaskEvent) isEvent() {}

// RateLimitEvent reports a change in GitHub API rate limit state.
type RateLimitEvent struct {
	Limited bool
	ResetAt time.Time
}

func (RateLimitEvent) isEvent() {}

// DoneEvent signals that all work is complete.
type DoneEvent struct{}

func (DoneEvent) isEvent() {}
