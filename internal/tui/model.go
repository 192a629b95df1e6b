package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the Bubble Tea model for the TUI progress display.
type Model struct {
	tasks          []Task
	spinner        spinner.Model
	events         <-chan Event
	done           bool
	login          string
	windowWidth    int
	windowHeight   int
	rateLimited    bool
	rateLimitReset time.Time
}

// doneMsg signals that all events have been processed.
type doneMsg struct{}

// ModelOption is a functional option for configuring a Model.
type ModelOption func(*Model)

// WithTasks sets the tasks to display in the TUI.
func WithTasks(tasks []Task) ModelOption {
	return func(m *Model) {
		m.tasks = tasks
	}
}

// SummaryTasks returns the task list for the main summary command.
func SummaryTasks() []Task {
	return []Task{
		NewTask(TaskSearch, "Searching merged pull requests"),
		NewTask(TaskProfile, "Fetching profile"),
		NewTask(TaskEnrich, "Enriching repositories"),
		NewTask(TaskRank, "Ranking by stars"),
	}
}

// CalendarTasks returns the task list for the calendar command.
func CalendarTasks() []Task {
	return []Task{
		NewTask(TaskCalendar, "Fetching contribution calendar"),
	}
}

// NewModel creates a new TUI model.
func NewModel(events <-chan Event, opts ...ModelOption) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		tasks:   SummaryTasks(),
		spinner: s,
		events:  events,
	}

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		waitForEvent(m.events),
	)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case TaskEvent:
		m = m.updateTask(msg)
		return m, waitForEvent(m.events)

	case DoneEvent:
		m.done = true
		return m, tea.Quit

	case RateLimitEvent:
		m.rateLimited = msg.Limited
		m.rateLimitReset = msg.ResetAt
		return m, waitForEvent(m.events)

	case doneMsg:
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// updateTask updates a task based on a TaskEvent.
func (m Model) updateTask(e TaskEvent) Model {
	for i := range m.tasks {
		if m.tasks[i].ID == e.Task {
			m.tasks[i].Status = e.Status
			if e.Message != "" {
				m.tasks[i].Message = e.Message
			}
			if e.Count > 0 {
				m.tasks[i].Count = e.Count
			}
			if e.Error != nil {
				m.tasks[i].Error = e.Error
			}
			// Capture login from profile complete event
			if e.Task == TaskProfile && e.Status == StatusComplete && e.Message != "" {
				m.login = e.Message
			}
			break
		}
	}
	return m
}

// View renders the model.
func (m Model) View() string {
	var s string

	// Render all tasks
	for _, task := range m.tasks {
		// Special handling for profile task to show the resolved login
		if task.ID == TaskProfile && task.Status == StatusComplete && m.login != "" {
			s += fmt.Sprintf("  %s Profile loaded for %s\n", iconComplete, userStyle.Render(m.login))
			continue
		}
		s += task.View(m.spinner.View()) + "\n"
	}

	// Show rate limit warning if applicable
	if m.rateLimited {
		duration := time.Until(m.rateLimitReset).Round(time.Second)
		if duration > 0 {
			s += warnStyle.Render(fmt.Sprintf("\n  Rate limited (resets in %s)\n", duration))
		}
	}

	// Only show cancel hint while running
	if !m.done {
		s += footerStyle.Render("\n  Press Ctrl+C to cancel")
	}
	s += "\n"

	return s
}

// waitForEvent creates a command that waits for the next event.
func waitForEvent(events <-chan Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return doneMsg{}
		}
		return event
	}
}
